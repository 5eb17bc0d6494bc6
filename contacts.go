package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Contact is a previously submitted message as the backend returns it.
// Read-only on this side; the admin inbox only displays and filters.
type Contact struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

var errFetchContacts = errors.New("Failed to fetch contacts")

// ContactsClient fetches the submitted-message list from the external
// backend. No explicit timeout; the transport's defaults apply.
type ContactsClient struct {
	endpoint string
	client   *http.Client
}

func NewContactsClient(cfg *Config) *ContactsClient {
	return &ContactsClient{
		endpoint: cfg.MessagesEndpoint,
		client:   &http.Client{},
	}
}

// Fetch GETs the full message list. On any failure it returns
// errFetchContacts and no partial list, so callers keep whatever they
// were already showing.
func (c *ContactsClient) Fetch(ctx context.Context) ([]Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errFetchContacts
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", c.endpoint).Msg("Fetching contacts failed")
		return nil, errFetchContacts
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("endpoint", c.endpoint).Msg("Contacts endpoint returned an error")
		return nil, errFetchContacts
	}

	var contacts []Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		log.Warn().Err(err).Msg("Decoding contacts list failed")
		return nil, errFetchContacts
	}
	return contacts, nil
}

// filterContacts keeps contacts whose name, email or message contains
// the term, case-insensitively. An empty term matches everything.
// Source order is preserved.
func filterContacts(contacts []Contact, term string) []Contact {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return contacts
	}
	return lo.Filter(contacts, func(c Contact, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.Message), term)
	})
}
