package services

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// FilterAndSort returns the providers of catalog that match query, ordered by
// query.SortKey. The catalog slice is never reordered. Sorting is stable, and an
// unrecognised sort key keeps catalog order.
func FilterAndSort(catalog []*entities.Provider, query entities.ProviderQuery) []*entities.Provider {
	term := strings.ToLower(query.SearchTerm)

	result := make([]*entities.Provider, 0, len(catalog))
	for _, p := range catalog {
		if matchesText(p, term) && matchesCategory(p, query.Category) && p.Rating >= query.MinRating {
			result = append(result, p)
		}
	}

	if less := comparatorFor(query.SortKey); less != nil {
		slices.SortStableFunc(result, less)
	}
	return result
}

// term must already be lower-cased
func matchesText(p *entities.Provider, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.BusinessType), term) {
		return true
	}
	for _, s := range p.Services {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

func matchesCategory(p *entities.Provider, category string) bool {
	if category == "" || category == entities.AllCategories {
		return true
	}
	return p.HasCategory(category)
}

func comparatorFor(key entities.SortKey) func(a, b *entities.Provider) int {
	switch key {
	case entities.SortByRating:
		return func(a, b *entities.Provider) int { return cmp.Compare(b.Rating, a.Rating) }
	case entities.SortByReviews:
		return func(a, b *entities.Provider) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case entities.SortByPrice:
		// Raw string order, so "$100-500/project" sorts before "$25-40/hour".
		return func(a, b *entities.Provider) int { return strings.Compare(a.PriceRange, b.PriceRange) }
	case entities.SortByName:
		// Collators keep scratch buffers and are not safe to share across goroutines.
		c := collate.New(language.English)
		return func(a, b *entities.Provider) int { return c.CompareString(a.Name, b.Name) }
	default:
		return nil
	}
}
