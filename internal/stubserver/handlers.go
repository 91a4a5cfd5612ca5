package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/myurl/console/internal/core/domain"
)

// adminEmail is promoted to the ADMIN role at registration, matching the
// backend's development seeding rule.
const adminEmail = "admin@example.com"

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type shortenRequest struct {
	URL string `json:"url" validate:"required,url"`
	TTL int64  `json:"ttl" validate:"omitempty,gt=0"`
}

type authResponse struct {
	Token  string      `json:"token"`
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

type linkResponse struct {
	Code      string `json:"code"`
	URL       string `json:"url"`
	Short     string `json:"short"`
	Clicks    int64  `json:"clicks"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
	TTLActive bool   `json:"ttl_active"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(req.Email)
	role := domain.RoleUser
	if email == adminEmail {
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := s.data.createUser(req.Name, email, string(hash), role)
	if err != nil {
		return err
	}

	return s.respondAuth(c, http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.data.userByEmail(strings.ToLower(req.Email))
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return errInvalidCredentials
	}

	return s.respondAuth(c, http.StatusOK, user)
}

func (s *Server) respondAuth(c echo.Context, status int, user *userRecord) error {
	token, err := s.mintToken(user)
	if err != nil {
		return err
	}
	return c.JSON(status, authResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
}

func (s *Server) mintToken(user *userRecord) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *Server) handleShorten(c echo.Context) error {
	var req shortenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link := s.data.createLink(userID(c), req.URL, time.Duration(req.TTL)*time.Second)
	return c.JSON(http.StatusCreated, map[string]string{
		"code":      link.Code,
		"short_url": s.publicBase + "/" + link.Code,
	})
}

func (s *Server) handleListLinks(c echo.Context) error {
	links := s.data.linksByOwner(userID(c))
	out := make([]linkResponse, 0, len(links))
	for _, l := range links {
		resp := linkResponse{
			Code:      l.Code,
			URL:       l.URL,
			Short:     s.publicBase + "/" + l.Code,
			Clicks:    l.Clicks,
			CreatedAt: l.CreatedAt.Unix(),
		}
		if !l.ExpiresAt.IsZero() {
			resp.ExpiresAt = l.ExpiresAt.Unix()
			resp.TTLActive = time.Now().Before(l.ExpiresAt)
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleDeleteLink(c echo.Context) error {
	if err := s.data.deleteLink(userID(c), c.Param("code")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleAnalyticsSummary(c echo.Context) error {
	total, top := s.data.analytics()
	return c.JSON(http.StatusOK, domain.AnalyticsSummary{TotalClicks: total, TopURLs: top})
}

func (s *Server) handleListUsers(c echo.Context) error {
	users := s.data.listUsers()
	out := make([]domain.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, domain.AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt.Unix(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleDeleteUser(c echo.Context) error {
	if err := s.data.deleteUser(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
