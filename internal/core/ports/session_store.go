package ports

import "github.com/myurl/console/internal/core/domain"

// SessionStore is durable key/value persistence for the session pair.
//
// Get never fails: unreadable or corrupted persisted data is reported as an
// absent session so the application degrades to signed-out instead of
// crashing. Set and Clear are atomic with respect to the token/profile pair.
type SessionStore interface {
	Get() *domain.Session
	Set(s *domain.Session) error
	Clear() error
}
