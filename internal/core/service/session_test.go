package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/myurl/console/internal/core/domain"
)

type stubStore struct {
	session *domain.Session
	setErr  error
}

func (s *stubStore) Get() *domain.Session {
	return s.session
}

func (s *stubStore) Set(sess *domain.Session) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.session = sess
	return nil
}

func (s *stubStore) Clear() error {
	s.session = nil
	return nil
}

func newTestController(store *stubStore) *SessionController {
	return NewSessionController(store, zerolog.Nop())
}

func TestController_StartsUnauthenticated(t *testing.T) {
	c := newTestController(&stubStore{})

	if c.Authenticated() {
		t.Fatalf("expected unauthenticated start")
	}
	if c.ActiveView() != domain.ViewAuth {
		t.Fatalf("expected auth view, got %s", c.ActiveView())
	}
}

func TestController_RestoresPersistedSession(t *testing.T) {
	c := newTestController(&stubStore{session: userSession(domain.RoleUser)})

	if !c.Authenticated() {
		t.Fatalf("expected restored session")
	}
	if c.ActiveView() != domain.ViewShorten {
		t.Fatalf("expected shorten view after restore, got %s", c.ActiveView())
	}
}

func TestController_LoginStoresSessionAndActivatesShorten(t *testing.T) {
	store := &stubStore{}
	c := newTestController(store)

	profile := domain.Profile{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser}
	if err := c.Login("t1", profile); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if store.session == nil || store.session.Token != "t1" || store.session.Profile != profile {
		t.Fatalf("persisted session mismatch: %+v", store.session)
	}
	if c.ActiveView() != domain.ViewShorten {
		t.Fatalf("expected shorten view, got %s", c.ActiveView())
	}
}

func TestController_LoginRejectsIncompletePair(t *testing.T) {
	c := newTestController(&stubStore{})

	if err := c.Login("", domain.Profile{ID: "u1"}); err != domain.ErrIncompleteSession {
		t.Fatalf("expected ErrIncompleteSession, got %v", err)
	}
	if c.Authenticated() {
		t.Fatalf("controller should stay signed out")
	}
}

func TestController_LoginStoreFailureLeavesStateUntouched(t *testing.T) {
	store := &stubStore{setErr: errors.New("disk full")}
	c := newTestController(store)

	err := c.Login("t1", domain.Profile{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser})
	if err == nil {
		t.Fatalf("expected store error to propagate")
	}
	if c.Authenticated() || c.ActiveView() != domain.ViewAuth {
		t.Fatalf("failed login must not change controller state")
	}
}

func TestController_LogoutClearsEverything(t *testing.T) {
	store := &stubStore{session: userSession(domain.RoleAdmin)}
	c := newTestController(store)

	purged := 0
	c.RegisterPurger(func() { purged++ })
	c.RegisterPurger(func() { purged++ })

	if err := c.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.session != nil {
		t.Fatalf("expected store cleared, got %+v", store.session)
	}
	if c.ActiveView() != domain.ViewAuth {
		t.Fatalf("expected auth view after logout, got %s", c.ActiveView())
	}
	if purged != 2 {
		t.Fatalf("expected both purgers to run, got %d", purged)
	}
}

func TestController_NavigateAfterLogoutAlwaysLandsOnAuth(t *testing.T) {
	c := newTestController(&stubStore{session: userSession(domain.RoleAdmin)})
	if err := c.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	for _, v := range []domain.View{domain.ViewShorten, domain.ViewLinks, domain.ViewDashboard, domain.ViewAccount} {
		if got := c.Navigate(v); got != domain.ViewAuth {
			t.Fatalf("Navigate(%s) after logout = %s, want auth", v, got)
		}
	}
}

func TestController_NavigateEnforcesRoleGate(t *testing.T) {
	c := newTestController(&stubStore{session: userSession(domain.RoleUser)})

	if got := c.Navigate(domain.ViewDashboard); got != domain.ViewAuth {
		t.Fatalf("non-admin Navigate(dashboard) = %s, want auth", got)
	}
	if got := c.Navigate(domain.ViewLinks); got != domain.ViewLinks {
		t.Fatalf("Navigate(links) = %s", got)
	}
}

func TestController_NotifiesSubscribersOnTransitions(t *testing.T) {
	c := newTestController(&stubStore{})

	var events int
	c.Subscribe(func() { events++ })

	profile := domain.Profile{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser}
	if err := c.Login("t1", profile); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	c.Navigate(domain.ViewLinks)
	c.Navigate(domain.ViewLinks) // no change, no notification
	if err := c.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	if events != 3 {
		t.Fatalf("expected 3 notifications (login, navigate, logout), got %d", events)
	}
}
