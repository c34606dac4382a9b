// Package roles describes what each kind of marketplace user can see and do.
// Views ask a Capability instead of comparing role strings.
package roles

// Role identifies the kind of marketplace user a session acts as
type Role string

const (
	RoleNone     Role = ""
	RoleSeeker   Role = "seeker"
	RoleProvider Role = "provider"
)

// Page names a screen of the marketplace front end
type Page string

const (
	PageLanding    Page = "landing"
	PageLogin      Page = "login"
	PageRoleSelect Page = "role-select"
	PageDashboard  Page = "dashboard"
	PageSearch     Page = "search"
	PagePostJob    Page = "post-job"
	PageJobs       Page = "jobs"
	PageJobDetail  Page = "job-detail"
	PageProfile    Page = "profile"
	PageMessages   Page = "messages"
)

// NavItem is an entry of the navigation bar
type NavItem struct {
	Label string `json:"label"`
	Page  Page   `json:"page"`
}

// Capability is the view contract shared by every role
type Capability interface {
	Role() Role
	NavItems() []NavItem
	DashboardTitle() string
	DashboardSections() []string
	ProfileFields() []string
	AllowsPage(page Page) bool
	CanPostJobs() bool
	CanApplyToJobs() bool
}

// For returns the capability of role. Anything other than seeker or provider
// gets the guest capability.
func For(role Role) Capability {
	switch role {
	case RoleSeeker:
		return SeekerCapability{}
	case RoleProvider:
		return ProviderCapability{}
	default:
		return GuestCapability{}
	}
}

// Valid reports whether role is one a user can pick
func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleProvider
}

// Public reports whether page can be shown without signing in
func (p Page) Public() bool {
	return p == PageLanding || p == PageLogin
}

// Known reports whether p names an existing page
func (p Page) Known() bool {
	switch p {
	case PageLanding, PageLogin, PageRoleSelect, PageDashboard, PageSearch,
		PagePostJob, PageJobs, PageJobDetail, PageProfile, PageMessages:
		return true
	}
	return false
}
