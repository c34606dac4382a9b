package entities

// AllCategories is the category option that disables category filtering
const AllCategories = "All Categories"

// SortKey selects the ordering applied to a provider query result
type SortKey string

const (
	SortByRating  SortKey = "rating"
	SortByPrice   SortKey = "price"
	SortByName    SortKey = "name"
	SortByReviews SortKey = "reviews"
)

// ProviderQuery holds the search, filter and sort parameters for a catalog lookup
type ProviderQuery struct {
	SearchTerm string  `json:"searchTerm" yaml:"searchTerm" validate:"max=200"`
	Category   string  `json:"category" yaml:"category" validate:"max=100"`
	MinRating  float64 `json:"minRating" yaml:"minRating"`
	SortKey    SortKey `json:"sortKey" yaml:"sortKey"`
}

// DefaultProviderQuery returns the query the search page starts with
func DefaultProviderQuery() ProviderQuery {
	return ProviderQuery{SortKey: SortByRating}
}

// ProviderQueryResult is an ordered query result together with its size
type ProviderQueryResult struct {
	Providers []*Provider `json:"providers"`
	Count     int         `json:"count"`
}
