package entities

// MapMarker is a labelled point handed to the map collaborator
type MapMarker struct {
	ProviderID  int         `json:"providerId"`
	Label       string      `json:"label"`
	Coordinates Coordinates `json:"coordinates"`
}

// MapBounds is the smallest box containing a set of markers
type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// MapView is what a map renderer produces for a set of markers
type MapView struct {
	Markers     []MapMarker  `json:"markers"`
	Bounds      *MapBounds   `json:"bounds,omitempty"`
	Center      *Coordinates `json:"center,omitempty"`
	Placeholder bool         `json:"placeholder"`
	Message     string       `json:"message,omitempty"`
}
