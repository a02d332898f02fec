// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Notification is a user-scoped message produced by lifecycle and feed actions.
type Notification struct {
	ID        string    `json:"id"`        // Time-ordered identifier.
	UserID    string    `json:"userId"`    // The recipient.
	Message   string    `json:"message"`   // Human readable text.
	Timestamp time.Time `json:"timestamp"` // When the notification was emitted.
	Read      bool      `json:"read"`      // Flipped only by mark-all-read.
}

// NewsArticle is a legal news item summarised by the assistant.
type NewsArticle struct {
	Headline  string `json:"headline"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"imageUrl"`
	SourceURL string `json:"sourceUrl"`
	Category  string `json:"category"`
}

// Recommendation ranks a lawyer against a client's case template. Rank is 1..3.
type Recommendation struct {
	LawyerID string `json:"lawyerId"`
	Rank     int    `json:"rank"`
}
