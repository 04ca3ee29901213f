package domain

import "time"

// Note is a plain user note. SummaryID references the summary record created
// alongside the note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SummaryID string    `json:"summary_id"`
	CreatedAt time.Time `json:"created_at"`
}
