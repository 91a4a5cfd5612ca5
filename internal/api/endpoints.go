package api

import (
	"context"
	"net/http"

	"github.com/myurl/console/internal/core/domain"
	"github.com/myurl/console/internal/core/ports"
)

var _ ports.Backend = (*Client)(nil)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the flat body returned by /register and /login.
type authResponse struct {
	Token  string      `json:"token"`
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

func (r authResponse) profile() domain.Profile {
	return domain.Profile{ID: r.UserID, Name: r.Name, Email: r.Email, Role: r.Role}
}

type shortenRequest struct {
	URL string `json:"url"`
	TTL int64  `json:"ttl,omitempty"`
}

type shortenResponse struct {
	Code     string `json:"code"`
	ShortURL string `json:"short_url"`
}

// Register creates an account and returns the freshly minted credentials.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, domain.Profile, error) {
	var resp authResponse
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/register", "/api/v1/register", req, &resp); err != nil {
		return "", domain.Profile{}, err
	}
	return resp.Token, resp.profile(), nil
}

// Login exchanges credentials for a bearer token and the user's profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, domain.Profile, error) {
	var resp authResponse
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/login", "/api/v1/login", req, &resp); err != nil {
		return "", domain.Profile{}, err
	}
	return resp.Token, resp.profile(), nil
}

// Shorten creates a short link. ttlSeconds of 0 means the link never expires.
func (c *Client) Shorten(ctx context.Context, url string, ttlSeconds int64) (string, string, error) {
	var resp shortenResponse
	req := shortenRequest{URL: url, TTL: ttlSeconds}
	if err := c.do(ctx, http.MethodPost, "/api/v1/shorten", "/api/v1/shorten", req, &resp); err != nil {
		return "", "", err
	}
	return resp.Code, resp.ShortURL, nil
}

// Links lists the signed-in user's short links.
func (c *Client) Links(ctx context.Context) ([]domain.Link, error) {
	var links []domain.Link
	if err := c.do(ctx, http.MethodGet, "/api/v1/urls", "/api/v1/urls", nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteLink removes one short link by code.
func (c *Client) DeleteLink(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/urls/"+code, "/api/v1/urls/{code}", nil, nil)
}

// AnalyticsSummary fetches the platform-wide click analytics.
func (c *Client) AnalyticsSummary(ctx context.Context) (domain.AnalyticsSummary, error) {
	var summary domain.AnalyticsSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/analytics/summary", "/api/v1/analytics/summary", nil, &summary); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	return summary, nil
}

// AdminUsers lists every registered account. Requires the ADMIN role.
func (c *Client) AdminUsers(ctx context.Context) ([]domain.AdminUser, error) {
	var users []domain.AdminUser
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/users", "/api/v1/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account by id. Requires the ADMIN role.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/users/"+id, "/api/v1/admin/users/{id}", nil, nil)
}
