package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"zerai/internal/config"
	"zerai/internal/db"
	"zerai/internal/rawg"
)

const testJWTSecret = "test-secret-0123456789abcdef0123456789"

func newTestServer(t *testing.T, upstreamURL string) *Server {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: testJWTSecret,
			TokenTTL:  time.Hour,
		},
		RAWG: config.RAWGConfig{
			APIKey:  "test-key",
			BaseURL: upstreamURL,
			Timeout: 2 * time.Second,
		},
	}

	database := openTestDB(t)
	catalog := rawg.NewClient(cfg.RAWG.BaseURL, cfg.RAWG.APIKey, cfg.RAWG.Timeout)

	return NewServer(cfg, database, catalog)
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func doRequest(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

// newAuthRequest builds a GET /games request with a raw Authorization header,
// for exercising the gate's header parsing directly.
func newAuthRequest(t *testing.T, authHeader string) *http.Request {
	t.Helper()

	req := httptest.NewRequest("GET", "/games", nil)
	req.Header.Set("Authorization", authHeader)
	return req
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func register(t *testing.T, srv *Server, username, email, password string) {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	rr := doRequest(t, srv, "POST", "/auth/register", "", body)
	if rr.Code != 201 {
		t.Fatalf("register status = %d, want 201, body=%q", rr.Code, rr.Body.String())
	}
}

func login(t *testing.T, srv *Server, email, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rr := doRequest(t, srv, "POST", "/auth/login", "", body)
	if rr.Code != 200 {
		t.Fatalf("login status = %d, want 200, body=%q", rr.Code, rr.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, body=%q", err, rr.Body.String())
	}
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Token
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, body=%q", err, rr.Body.String())
	}
	if resp.Msg == "" {
		t.Fatalf("error response has no msg, body=%q", rr.Body.String())
	}
	return resp
}
