// Package hero manages the landing page banner text. Settings live in
// a single row per user; reads take the first row found and fall back
// to defaults when the table is empty.
package hero

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	ID           uuid.UUID `json:"id"`
	HeadingLine1 string    `json:"heading_line1"`
	HeadingLine2 string    `json:"heading_line2"`
	Paragraph    string    `json:"paragraph"`
	UserID       uuid.UUID `json:"user_id"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSettings is served whenever no row exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		HeadingLine1: "Star Wars",
		HeadingLine2: "Memorabilia",
		Paragraph: "Your ultimate collection management system for a galaxy far, " +
			"far away. Organize, catalog, and treasure your Star Wars collectibles.",
	}
}
