package entities

// Provider represents a service provider listed in the marketplace catalog
type Provider struct {
	ID           int         `json:"id" yaml:"id" db:"id"`
	Name         string      `json:"name" yaml:"name" db:"name"`
	BusinessType string      `json:"businessType" yaml:"businessType" db:"business_type"`
	Categories   []string    `json:"categories" yaml:"categories" db:"-"`
	Rating       float64     `json:"rating" yaml:"rating" db:"rating"`
	ReviewCount  int         `json:"reviewCount" yaml:"reviewCount" db:"review_count"`
	Location     string      `json:"location" yaml:"location" db:"location"`
	PriceRange   string      `json:"priceRange" yaml:"priceRange" db:"price_range"`
	Experience   string      `json:"experience" yaml:"experience" db:"experience"`
	Availability string      `json:"availability" yaml:"availability" db:"availability"`
	Description  string      `json:"description" yaml:"description" db:"description"`
	Services     []string    `json:"services" yaml:"services" db:"-"`
	Coordinates  Coordinates `json:"coordinates" yaml:"coordinates" db:"-"`
}

// Coordinates is a latitude/longitude pair. It is only used for display.
type Coordinates struct {
	Latitude  float64 `json:"lat" yaml:"lat" db:"latitude"`
	Longitude float64 `json:"lng" yaml:"lng" db:"longitude"`
}

// HasCategory reports whether the provider is listed under the given category label
func (p *Provider) HasCategory(category string) bool {
	if p.BusinessType == category {
		return true
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
