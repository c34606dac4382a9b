// Package appstate models the view state of one client session as a single
// serializable value. Every user action is a pure transition from one State
// to the next.
package appstate

import (
	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/roles"
)

// State is the complete view state of a session
type State struct {
	IsAuthenticated bool                   `json:"isAuthenticated"`
	Role            roles.Role             `json:"role"`
	Page            roles.Page             `json:"page"`
	SelectedJobID   int                    `json:"selectedJobId"`
	ShowMap         bool                   `json:"showMap"`
	Query           entities.ProviderQuery `json:"query"`
}

// Initial returns the state of a fresh, signed-out session
func Initial() State {
	return State{
		Page:  roles.PageLanding,
		Query: entities.DefaultProviderQuery(),
	}
}

// Capability returns the view strategy for the session's role
func (s State) Capability() roles.Capability {
	if !s.IsAuthenticated {
		return roles.GuestCapability{}
	}
	return roles.For(s.Role)
}
