package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/myurl/console/internal/core/domain"
)

type stubStore struct {
	session *domain.Session
}

func (s *stubStore) Get() *domain.Session      { return s.session }
func (s *stubStore) Set(*domain.Session) error { return nil }
func (s *stubStore) Clear() error              { return nil }

func signedIn() *stubStore {
	return &stubStore{session: &domain.Session{
		Token:   "t1",
		Profile: domain.Profile{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser},
	}}
}

func newTestClient(url string, store *stubStore) *Client {
	return New(url, 5*time.Second, store, zerolog.Nop())
}

func TestClient_Login_ParsesTokenAndProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected JSON content type, got %q", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected a request id header")
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "a@x.com" || req["password"] != "pw" {
			t.Fatalf("unexpected payload: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","user_id":"u1","name":"A","email":"a@x.com","role":"USER"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubStore{})
	token, profile, err := c.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "t1" {
		t.Fatalf("token = %q, want t1", token)
	}
	want := domain.Profile{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser}
	if profile != want {
		t.Fatalf("profile = %+v, want %+v", profile, want)
	}
}

func TestClient_AttachesBearerWhenSessionPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, signedIn())
	if _, err := c.Links(context.Background()); err != nil {
		t.Fatalf("Links returned error: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("Authorization = %q, want Bearer t1", gotAuth)
	}
}

func TestClient_SendsUnauthenticatedWithoutSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubStore{})
	if _, err := c.Links(context.Background()); err != nil {
		t.Fatalf("Links returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_ServerErrorMessagePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubStore{})
	_, _, err := c.Login(context.Background(), "a@x.com", "bad")
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Fatalf("message = %q, want Invalid credentials", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", apiErr.StatusCode)
	}
}

func TestClient_EmptyErrorBodyGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, signedIn())
	_, err := c.Links(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Message != "Request failed" {
		t.Fatalf("message = %q, want the generic fallback", apiErr.Message)
	}
}

func TestClient_UnparsableErrorBodyGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>upstream exploded</html>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, signedIn())
	_, err := c.Links(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Message == "" {
		t.Fatalf("message must never be empty")
	}
	if apiErr.Message != "Request failed" {
		t.Fatalf("message = %q, want the generic fallback", apiErr.Message)
	}
}

func TestClient_UnauthorizedStatusPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, signedIn())
	_, err := c.Links(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 preserved for callers", apiErr.StatusCode)
	}
}

func TestClient_TransportFailureIsNotAnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL, &stubStore{})
	_, err := c.Links(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not be an *Error: %v", err)
	}
}

func TestClient_ConcurrentFetchesLandIndependently(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/analytics/summary":
			// Delay the first response so arrival order flips.
			time.Sleep(50 * time.Millisecond)
			_, _ = w.Write([]byte(`{"totalClicks":42,"topUrls":[{"code":"abc","clicks":40}]}`))
		case "/api/v1/admin/users":
			_, _ = w.Write([]byte(`[{"id":"u1","name":"A","email":"a@x.com","role":"ADMIN","createdAt":1700000000}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, signedIn())

	var (
		wg      sync.WaitGroup
		summary domain.AnalyticsSummary
		users   []domain.AdminUser
		errS    error
		errU    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, errS = c.AnalyticsSummary(context.Background())
	}()
	go func() {
		defer wg.Done()
		users, errU = c.AdminUsers(context.Background())
	}()
	wg.Wait()

	if errS != nil || errU != nil {
		t.Fatalf("fetch errors: %v / %v", errS, errU)
	}
	if summary.TotalClicks != 42 || len(summary.TopURLs) != 1 || summary.TopURLs[0].Code != "abc" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(users) != 1 || users[0].ID != "u1" || users[0].Role != domain.RoleAdmin {
		t.Fatalf("unexpected users: %+v", users)
	}
}
