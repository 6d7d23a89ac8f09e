package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// Seed populates the database with initial development data: one demo brand
// using the documented default colors and fonts, so the UI and the export
// API have something to work with on a fresh install.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM brands").Scan(&count); err != nil {
		return fmt.Errorf("seed check brands: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	demo := &models.Brand{Name: "Demo Marke"}
	demo.Voice.Tone = models.ToneFriendly
	demo.Voice.Formality = models.FormalitySie
	demo.Voice.Tagline = "Ihre Marke. Auf den Punkt."
	demo.Normalize()

	colors, err := json.Marshal(demo.Colors)
	if err != nil {
		return fmt.Errorf("seed encode colors: %w", err)
	}
	fonts, err := json.Marshal(demo.Fonts)
	if err != nil {
		return fmt.Errorf("seed encode fonts: %w", err)
	}
	voice, err := json.Marshal(demo.Voice)
	if err != nil {
		return fmt.Errorf("seed encode voice: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO brands (name, colors, fonts, voice)
		VALUES ($1, $2, $3, $4)
	`, demo.Name, colors, fonts, voice)
	if err != nil {
		return fmt.Errorf("seed insert brand: %w", err)
	}

	slog.Info("database seeded with demo brand", "name", demo.Name)
	return nil
}
