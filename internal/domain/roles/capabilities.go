package roles

// SeekerCapability is the view strategy for users looking to hire
type SeekerCapability struct{}

func (SeekerCapability) Role() Role { return RoleSeeker }

func (SeekerCapability) NavItems() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Page: PageDashboard},
		{Label: "Find Providers", Page: PageSearch},
		{Label: "Post a Job", Page: PagePostJob},
		{Label: "My Jobs", Page: PageJobs},
		{Label: "Messages", Page: PageMessages},
		{Label: "Profile", Page: PageProfile},
	}
}

func (SeekerCapability) DashboardTitle() string { return "Welcome back! Ready to get things done?" }

func (SeekerCapability) DashboardSections() []string {
	return []string{"Active Jobs", "Recommended Providers", "Recent Messages"}
}

func (SeekerCapability) ProfileFields() []string {
	return []string{"Full Name", "Email", "Phone", "Neighbourhood"}
}

func (SeekerCapability) AllowsPage(page Page) bool {
	return page != PageRoleSelect
}

func (SeekerCapability) CanPostJobs() bool    { return true }
func (SeekerCapability) CanApplyToJobs() bool { return false }

// ProviderCapability is the view strategy for users offering services
type ProviderCapability struct{}

func (ProviderCapability) Role() Role { return RoleProvider }

func (ProviderCapability) NavItems() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Page: PageDashboard},
		{Label: "Browse Jobs", Page: PageJobs},
		{Label: "Providers", Page: PageSearch},
		{Label: "Messages", Page: PageMessages},
		{Label: "Business Profile", Page: PageProfile},
	}
}

func (ProviderCapability) DashboardTitle() string { return "Your business at a glance" }

func (ProviderCapability) DashboardSections() []string {
	return []string{"New Job Matches", "Active Bids", "Reviews", "Recent Messages"}
}

func (ProviderCapability) ProfileFields() []string {
	return []string{"Business Name", "Business Type", "Services", "Price Range", "Service Area", "Availability"}
}

func (ProviderCapability) AllowsPage(page Page) bool {
	return page != PageRoleSelect && page != PagePostJob
}

func (ProviderCapability) CanPostJobs() bool    { return false }
func (ProviderCapability) CanApplyToJobs() bool { return true }

// GuestCapability is used before a role is chosen
type GuestCapability struct{}

func (GuestCapability) Role() Role { return RoleNone }

func (GuestCapability) NavItems() []NavItem {
	return []NavItem{
		{Label: "Home", Page: PageLanding},
		{Label: "Sign In", Page: PageLogin},
	}
}

func (GuestCapability) DashboardTitle() string { return "Winnipeg Connect" }

func (GuestCapability) DashboardSections() []string { return nil }

func (GuestCapability) ProfileFields() []string { return nil }

func (GuestCapability) AllowsPage(page Page) bool {
	return page.Public() || page == PageRoleSelect
}

func (GuestCapability) CanPostJobs() bool    { return false }
func (GuestCapability) CanApplyToJobs() bool { return false }
