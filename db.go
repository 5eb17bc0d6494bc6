package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var db *sql.DB

// initDB opens the sqlite database used for visitor metrics. Contact
// messages never land here; they live in the external backend.
func initDB(path string) {
	var err error
	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open database")
	}

	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := db.Exec(createVisitorTable); err != nil {
		log.Fatal().Err(err).Msg("Failed to create visitors table")
	}

	// Clean up old visitor data for privacy compliance (run in background)
	go cleanupOldVisitorData()
}
