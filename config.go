package main

import (
	"os"
	"time"
)

// Config holds everything read from the environment at startup.
// The contact backend is external: this site only relays submissions
// to it and reads the message list back for the admin inbox.
type Config struct {
	Port string

	// ContactProvider selects the provider contract for the submit
	// endpoint: "api" (success/message/errors envelope) or "formspree".
	ContactProvider string
	ContactEndpoint string
	// ContactSubject is sent as _subject when the provider is formspree.
	ContactSubject string
	SubmitTimeout  time.Duration

	// MessagesEndpoint returns the JSON array of submitted messages
	// for the admin inbox.
	MessagesEndpoint string

	AdminUsername string
	AdminPassword string

	DBPath string
}

func loadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		ContactProvider:  getEnv("CONTACT_PROVIDER", "api"),
		ContactEndpoint:  getEnv("CONTACT_ENDPOINT", "http://localhost:3001/api/contact"),
		ContactSubject:   getEnv("CONTACT_SUBJECT", "New portfolio contact"),
		SubmitTimeout:    15 * time.Second,
		MessagesEndpoint: getEnv("CONTACTS_ENDPOINT", "http://localhost:3001/api/contacts"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin123"),
		DBPath:           getEnv("DB_PATH", "./portfolio.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
