package ports

import (
	"context"

	"github.com/myurl/console/internal/core/domain"
)

// Backend is the fixed REST contract of the myURL API as consumed by the
// console. Implementations attach credentials and normalize errors; callers
// only ever see parsed domain values or an error with a short human-readable
// message.
type Backend interface {
	Register(ctx context.Context, name, email, password string) (string, domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, domain.Profile, error)
	Shorten(ctx context.Context, url string, ttlSeconds int64) (code, shortURL string, err error)
	Links(ctx context.Context) ([]domain.Link, error)
	DeleteLink(ctx context.Context, code string) error
	AnalyticsSummary(ctx context.Context) (domain.AnalyticsSummary, error)
	AdminUsers(ctx context.Context) ([]domain.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
}
