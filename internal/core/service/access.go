package service

import "github.com/myurl/console/internal/core/domain"

// ResolveView maps a navigation request to the view that is actually
// allowed to become active. It fails closed: any unmet requirement lands on
// the sign-in view, never on a partially accessible one.
func ResolveView(s *domain.Session, requested domain.View) domain.View {
	spec := requested.Spec()
	if spec.RequiresSession && !s.Valid() {
		return domain.ViewAuth
	}
	if spec.RequiredRole != "" && (!s.Valid() || s.Profile.Role != spec.RequiredRole) {
		return domain.ViewAuth
	}
	return requested
}

// NavEntry is one navigation item as the UI should render it. Protected
// entries stay visible but disabled while signed out, mirroring the greyed
// out sidebar of the console.
type NavEntry struct {
	View    domain.View
	Label   string
	Enabled bool
}

// VisibleEntries returns the navigation entries for the given session, in
// declaration order. The sign-in entry disappears once a session exists and
// role-gated entries disappear for non-matching roles.
func VisibleEntries(s *domain.Session) []NavEntry {
	entries := make([]NavEntry, 0, len(domain.Views()))
	for _, v := range domain.Views() {
		spec := v.Spec()
		if v == domain.ViewAuth && s.Valid() {
			continue
		}
		if spec.RequiredRole != "" && (!s.Valid() || s.Profile.Role != spec.RequiredRole) {
			continue
		}
		entries = append(entries, NavEntry{
			View:    v,
			Label:   spec.Label,
			Enabled: !spec.RequiresSession || s.Valid(),
		})
	}
	return entries
}
