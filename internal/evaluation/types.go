// Package evaluation scores provider search against a labeled set of golden
// queries so ranking regressions show up before they ship.
package evaluation

import (
	"time"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// Kind is the query feature a golden query exercises.
type Kind string

const (
	KindText     Kind = "text"     // e.g., "pet", "lawn"
	KindCategory Kind = "category" // e.g., "Cleaning"
	KindRating   Kind = "rating"   // e.g., minRating 4.75
	KindSort     Kind = "sort"     // e.g., sort by name
)

// ValidKinds returns all valid kind values.
func ValidKinds() []Kind {
	return []Kind{KindText, KindCategory, KindRating, KindSort}
}

// IsValid checks if the kind value is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindCategory, KindRating, KindSort:
		return true
	}
	return false
}

// GoldenQuery is a labeled query with the provider IDs it must return, best first.
type GoldenQuery struct {
	ID          string                 `json:"id" yaml:"id"`
	Kind        Kind                   `json:"kind" yaml:"kind"`
	Query       entities.ProviderQuery `json:"query" yaml:"query"`
	ExpectedIDs []int                  `json:"expected_ids" yaml:"expected_ids"`
	// StrictOrder requires the result to equal ExpectedIDs exactly
	StrictOrder bool   `json:"strict_order" yaml:"strict_order"`
	Difficulty  string `json:"difficulty" yaml:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single query.
type EvalResult struct {
	QueryID      string        `json:"query_id"`
	Kind         Kind          `json:"kind"`
	RecallAt10   float64       `json:"recall_at_10"`
	MRRAt10      float64       `json:"mrr_at_10"`
	OrderMatch   bool          `json:"order_match"`
	ResultCount  int           `json:"result_count"`
	RetrievedIDs []int         `json:"retrieved_ids"`
	Latency      time.Duration `json:"latency"`
	Err          string        `json:"error,omitempty"`
}

// EvalSummary holds aggregate metrics across all golden queries.
type EvalSummary struct {
	TotalQueries    int                   `json:"total_queries"`
	AvgRecallAt10   float64               `json:"avg_recall_at_10"`
	AvgMRRAt10      float64               `json:"avg_mrr_at_10"`
	AvgLatency      time.Duration         `json:"avg_latency"`
	QueriesWithHits int                   `json:"queries_with_hits"` // queries that returned at least 1 result
	OrderFailures   []string              `json:"order_failures"`    // strict-order queries whose ranking differed
	Errors          int                   `json:"errors"`
	ByKind          map[Kind]*KindSummary `json:"by_kind"`
	Results         []EvalResult          `json:"results"`
}

// KindSummary holds metrics grouped by kind.
type KindSummary struct {
	Count         int     `json:"count"`
	AvgRecallAt10 float64 `json:"avg_recall_at_10"`
	AvgMRRAt10    float64 `json:"avg_mrr_at_10"`
}
