package banner

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/banner/web"
)

type testServer struct {
	server *httptest.Server
	client *http.Client
}

func newTestServer(t *testing.T, opts ...Option) *testServer {
	t.Helper()

	app := New(web.Public(), opts...)
	server := httptest.NewServer(app.Handler())
	t.Cleanup(server.Close)

	return &testServer{
		server: server,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.server.URL+path, nil)
	if err != nil {
		t.Fatalf("failed to build request for %s: %v", path, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("failed to GET %s: %v", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return resp, string(body)
}

func normalizeHTML(html string) string {
	return regexp.MustCompile(`\s+`).ReplaceAllString(html, " ")
}

func assertHTTPStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func matchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, normalizeHTML(html))
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestServerBannerPage(t *testing.T) {
	server := newTestServer(t, WithTitle("AHC"), WithStylesheet("/styles/app.css"))

	resp, html := server.get(t, "/")
	assertHTTPStatus(t, resp, http.StatusOK)

	matchSnapshot(t, html)
}

func TestServerBannerImage(t *testing.T) {
	server := newTestServer(t)

	resp, body := server.get(t, "/images/ahc-products.png")
	assertHTTPStatus(t, resp, http.StatusOK)

	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}
	if len(body) < 8 || body[:8] != "\x89PNG\r\n\x1a\n" {
		t.Error("Expected PNG bytes")
	}
}

func TestServerRepeatedRequestsMatch(t *testing.T) {
	server := newTestServer(t)

	_, first := server.get(t, "/")
	_, second := server.get(t, "/")

	if first != second {
		t.Error("Expected identical responses for repeated requests")
	}
}
