package main

import (
	"regexp"
	"strings"
)

// ContactDraft is the in-progress contact form submission.
type ContactDraft struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Loose on purpose: anything shaped like local@domain.tld passes,
// the backend does its own verification.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateDraft checks the draft field by field and returns a map of
// field name to error message. An empty map means the draft is valid.
func validateDraft(draft ContactDraft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(draft.Name) == "" {
		errs["name"] = "Name is required"
	}

	email := strings.TrimSpace(draft.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}

	if strings.TrimSpace(draft.Message) == "" {
		errs["message"] = "Message is required"
	}

	return errs
}
