package service

import (
	"github.com/rs/zerolog"

	"github.com/myurl/console/internal/core/domain"
	"github.com/myurl/console/internal/core/ports"
	"github.com/myurl/console/internal/metrics"
)

// SessionController owns the in-memory session and the active view. It is
// the single mutator of session state: transitions are triggered by discrete
// user actions, one at a time, so no internal locking is needed. Subscribe
// and RegisterPurger must be called during setup, before transitions begin.
type SessionController struct {
	store   ports.SessionStore
	log     zerolog.Logger
	session *domain.Session
	view    domain.View

	listeners []func()
	purgers   []func()
}

// NewSessionController derives the initial state from the store: a persisted
// session restores the authenticated workspace, anything else (including
// corrupted data, which the store reports as absent) starts signed out.
func NewSessionController(store ports.SessionStore, log zerolog.Logger) *SessionController {
	c := &SessionController{store: store, log: log, view: domain.ViewAuth}
	if s := store.Get(); s.Valid() {
		c.session = s
		c.view = domain.ViewShorten
		metrics.SessionTransitionsTotal.WithLabelValues("restore").Inc()
		log.Debug().Str("user", s.Profile.Email).Msg("session restored from store")
	}
	return c
}

// Session returns the current session, or nil when signed out.
func (c *SessionController) Session() *domain.Session {
	return c.session
}

// ActiveView returns the view currently satisfying its own requirements.
func (c *SessionController) ActiveView() domain.View {
	return c.view
}

// Authenticated reports whether the controller holds a session.
func (c *SessionController) Authenticated() bool {
	return c.session.Valid()
}

// Subscribe registers a listener fired after every state transition.
func (c *SessionController) Subscribe(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// RegisterPurger registers a cache-clearing hook run on logout, so no view
// keeps authenticated data in memory after the session is gone.
func (c *SessionController) RegisterPurger(fn func()) {
	c.purgers = append(c.purgers, fn)
}

// Login stores the session delivered by a successful register or login call
// and activates the shorten view. Token and profile are persisted as one
// document; a failed write leaves the in-memory state untouched.
func (c *SessionController) Login(token string, profile domain.Profile) error {
	s := &domain.Session{Token: token, Profile: profile}
	if !s.Valid() {
		return domain.ErrIncompleteSession
	}
	if err := c.store.Set(s); err != nil {
		return err
	}
	c.session = s
	c.view = ResolveView(s, domain.ViewShorten)
	metrics.SessionTransitionsTotal.WithLabelValues("login").Inc()
	c.log.Info().Str("user", profile.Email).Str("role", string(profile.Role)).Msg("signed in")
	c.notify()
	return nil
}

// Logout clears the persisted session, purges every registered view cache,
// and resets the active view to sign-in. The purge replaces the original
// console's full reload as the stale-data guarantee.
func (c *SessionController) Logout() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.session = nil
	c.view = domain.ViewAuth
	for _, purge := range c.purgers {
		purge()
	}
	metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	c.log.Info().Msg("signed out")
	c.notify()
	return nil
}

// Navigate re-resolves the active view for a navigation request. A request
// whose requirements are unmet lands on the sign-in view. The effective view
// is returned so callers can tell whether the request was honored.
func (c *SessionController) Navigate(requested domain.View) domain.View {
	effective := ResolveView(c.session, requested)
	if effective != requested {
		c.log.Debug().
			Str("requested", requested.String()).
			Str("effective", effective.String()).
			Msg("navigation rejected")
	}
	if effective != c.view {
		c.view = effective
		c.notify()
	}
	return effective
}

// VisibleEntries returns the navigation entries for the current session.
func (c *SessionController) VisibleEntries() []NavEntry {
	return VisibleEntries(c.session)
}

func (c *SessionController) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}
