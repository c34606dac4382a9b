package entities

import (
	"time"
)

// SearchEvent represents a single provider search interaction for analytics.
type SearchEvent struct {
	ID          string    `json:"id"`
	SearchTerm  string    `json:"search_term"`
	Category    string    `json:"category,omitempty"`
	MinRating   float64   `json:"min_rating"`
	SortKey     string    `json:"sort_key"`
	ResultCount int       `json:"result_count"`
	LatencyMs   int       `json:"latency_ms"`
	SessionID   string    `json:"session_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
