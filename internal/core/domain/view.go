package domain

// View identifies one of the fixed navigable screens of the console.
// The declaration order is the navigation order; it is never re-sorted.
type View int

const (
	ViewAuth View = iota
	ViewShorten
	ViewLinks
	ViewDashboard
	ViewAccount
)

// ViewSpec is the static access requirement and display metadata of a view.
type ViewSpec struct {
	Label           string
	Title           string
	Subtitle        string
	RequiresSession bool
	RequiredRole    Role // empty means any authenticated role
}

var viewSpecs = [...]ViewSpec{
	ViewAuth: {
		Label:    "Sign in",
		Title:    "Sign in",
		Subtitle: "Authenticate to unlock project tools.",
	},
	ViewShorten: {
		Label:           "Shorten URLs",
		Title:           "Shorten URLs",
		Subtitle:        "Authenticated workspace",
		RequiresSession: true,
	},
	ViewLinks: {
		Label:           "My Links",
		Title:           "Your links",
		Subtitle:        "Analytics-ready list of active codes",
		RequiresSession: true,
	},
	ViewDashboard: {
		Label:           "Admin Dashboard",
		Title:           "Admin Dashboard",
		Subtitle:        "Platform analytics and metrics",
		RequiresSession: true,
		RequiredRole:    RoleAdmin,
	},
	ViewAccount: {
		Label:           "Account",
		Title:           "Account settings",
		Subtitle:        "Manage access tokens and profile",
		RequiresSession: true,
	},
}

// Views returns every view in navigation order.
func Views() []View {
	return []View{ViewAuth, ViewShorten, ViewLinks, ViewDashboard, ViewAccount}
}

// Spec returns the static requirements and metadata of the view.
func (v View) Spec() ViewSpec {
	return viewSpecs[v]
}

func (v View) String() string {
	switch v {
	case ViewAuth:
		return "auth"
	case ViewShorten:
		return "shorten"
	case ViewLinks:
		return "links"
	case ViewDashboard:
		return "dashboard"
	case ViewAccount:
		return "account"
	}
	return "unknown"
}
