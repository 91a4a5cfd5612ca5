// Package stubserver is a local, in-memory double of the myURL backend REST
// contract. It exists so the client can be exercised end to end without the
// real platform: integration tests run the console against it, and
// `console mock-api` serves it for interactive development.
//
// It implements the documented contract only; it is not a backend design.
package stubserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/myurl/console/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Server hosts the stubbed API on an echo instance.
type Server struct {
	echo       *echo.Echo
	data       *memoryData
	secret     string
	publicBase string
	tokenTTL   time.Duration
	log        zerolog.Logger
}

// New builds the stub server. secret signs the HS256 tokens it mints;
// publicBase is the origin embedded in generated short URLs.
func New(secret, publicBase string, log zerolog.Logger) *Server {
	s := &Server{
		echo:       echo.New(),
		data:       newMemoryData(),
		secret:     secret,
		publicBase: publicBase,
		tokenTTL:   defaultTokenTTL,
		log:        log,
	}

	e := s.echo
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("myurl_stub"))

	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")
	v1.POST("/register", s.handleRegister)
	v1.POST("/login", s.handleLogin)

	authed := v1.Group("", auth(secret))
	authed.POST("/shorten", s.handleShorten)
	authed.GET("/urls", s.handleListLinks)
	authed.DELETE("/urls/:code", s.handleDeleteLink)

	admin := authed.Group("", requireRole(domain.RoleAdmin))
	admin.GET("/analytics/summary", s.handleAnalyticsSummary)
	admin.GET("/admin/users", s.handleListUsers)
	admin.DELETE("/admin/users/:id", s.handleDeleteUser)

	return s
}

// Handler exposes the server as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until the process exits.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("mock API listening")
	return s.echo.Start(addr)
}

// SeedClicks bumps a short code's click counter so analytics have data.
func (s *Server) SeedClicks(code string, n int64) {
	s.data.recordClicks(code, n)
}

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// errorHandler renders every failure as the {"error": "<message>"} envelope
// the console expects, mapping known sentinels to deterministic status codes
// and hiding unexpected errors behind a generic message.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := s.resolveError(err, c)
	_ = c.JSON(code, errorResponse{Error: msg})
}

func (s *Server) resolveError(err error, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, errUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errLinkNotFound):
		return http.StatusNotFound, err.Error()
	}

	s.log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
