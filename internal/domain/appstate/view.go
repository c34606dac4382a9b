package appstate

import (
	"github.com/winnipegconnect/backend/internal/domain/roles"
)

// View is the role-specific presentation of a session state
type View struct {
	State             State           `json:"state"`
	Role              roles.Role      `json:"role"`
	NavItems          []roles.NavItem `json:"navItems"`
	DashboardTitle    string          `json:"dashboardTitle"`
	DashboardSections []string        `json:"dashboardSections"`
	ProfileFields     []string        `json:"profileFields"`
	CanPostJobs       bool            `json:"canPostJobs"`
	CanApplyToJobs    bool            `json:"canApplyToJobs"`
}

// ViewFor resolves the capability of s once and builds its view
func ViewFor(s State) View {
	c := s.Capability()
	return View{
		State:             s,
		Role:              c.Role(),
		NavItems:          c.NavItems(),
		DashboardTitle:    c.DashboardTitle(),
		DashboardSections: c.DashboardSections(),
		ProfileFields:     c.ProfileFields(),
		CanPostJobs:       c.CanPostJobs(),
		CanApplyToJobs:    c.CanApplyToJobs(),
	}
}
