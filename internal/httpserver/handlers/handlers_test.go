package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/routes"
	"github.com/MrSnakeDoc/voyage/internal/logger"
	redisstore "github.com/MrSnakeDoc/voyage/internal/store/redis"
)

func newTestServer(t *testing.T) (*httptest.Server, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("failed to close redis client: %v", err)
		}
	})

	d := deps.Deps{
		Logger:           logger.New("error", false),
		StartTime:        time.Now(),
		TimeNow:          time.Now,
		Store:            redisstore.NewStore(client),
		SettingsDefaults: domain.DefaultSettings(),
		CORSOrigins:      []string{"*"},
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, mr
}

func do(t *testing.T, method, url string, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf("failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, data
}

func decodeInto(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to decode response %s: %v", data, err)
	}
}

func TestBookmarkLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	status, body := do(t, http.MethodPost, ts.URL+"/api/bookmarks",
		`{"title": "Example", "url": "https://example.com"}`)
	if status != http.StatusOK {
		t.Fatalf("POST /api/bookmarks status = %d, want 200 (%s)", status, body)
	}

	var created domain.Bookmark
	decodeInto(t, body, &created)
	if created.ID == "" {
		t.Error("created bookmark has empty id")
	}
	if created.Folder != "General" {
		t.Errorf("Folder = %s, want default General", created.Folder)
	}
	if created.CreatedAt.Time().IsZero() {
		t.Error("created bookmark has zero created_at")
	}

	status, body = do(t, http.MethodGet, ts.URL+"/api/bookmarks", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/bookmarks status = %d, want 200", status)
	}
	var listed []domain.Bookmark
	decodeInto(t, body, &listed)
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("GET /api/bookmarks = %+v, want the created bookmark", listed)
	}

	status, _ = do(t, http.MethodDelete, ts.URL+"/api/bookmarks/"+created.ID, "")
	if status != http.StatusOK {
		t.Errorf("DELETE status = %d, want 200", status)
	}
	status, _ = do(t, http.MethodDelete, ts.URL+"/api/bookmarks/"+created.ID, "")
	if status != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", status)
	}
}

func TestCreateBookmarkValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"url": "https://example.com"}`},
		{name: "missing url", body: `{"title": "Example"}`},
		{name: "wrong field type", body: `{"title": 42, "url": "https://example.com"}`},
		{name: "not json", body: `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := do(t, http.MethodPost, ts.URL+"/api/bookmarks", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("POST status = %d, want 400", status)
			}
		})
	}
}

func TestHistoryListNewestFirstWithLimit(t *testing.T) {
	ts, _ := newTestServer(t)

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"url": "https://example.com/page/%d", "title": "Page %d"}`, i, i)
		if status, _ := do(t, http.MethodPost, ts.URL+"/api/history", body); status != http.StatusOK {
			t.Fatalf("POST /api/history status = %d, want 200", status)
		}
	}

	status, body := do(t, http.MethodGet, ts.URL+"/api/history?limit=3", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/history status = %d, want 200", status)
	}
	var entries []domain.HistoryEntry
	decodeInto(t, body, &entries)
	if len(entries) != 3 {
		t.Fatalf("GET /api/history?limit=3 returned %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].VisitedAt.Time().After(entries[i-1].VisitedAt.Time()) {
			t.Errorf("history not newest-first at index %d", i)
		}
	}

	status, _ = do(t, http.MethodGet, ts.URL+"/api/history?limit=abc", "")
	if status != http.StatusBadRequest {
		t.Errorf("GET /api/history?limit=abc status = %d, want 400", status)
	}
}

func TestHistorySearch(t *testing.T) {
	ts, _ := newTestServer(t)

	seeds := []string{
		`{"url": "https://www.google.com", "title": "Google"}`,
		`{"url": "https://example.org", "title": "Example Domain"}`,
	}
	for _, seed := range seeds {
		if status, _ := do(t, http.MethodPost, ts.URL+"/api/history", seed); status != http.StatusOK {
			t.Fatalf("failed to seed history entry")
		}
	}

	status, body := do(t, http.MethodGet, ts.URL+"/api/history/search?q=GOOGLE", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/history/search status = %d, want 200", status)
	}
	var matches []domain.HistoryEntry
	decodeInto(t, body, &matches)
	if len(matches) != 1 {
		t.Fatalf("search GOOGLE returned %d entries, want 1", len(matches))
	}
	if matches[0].URL != "https://www.google.com" {
		t.Errorf("search GOOGLE matched %s, want https://www.google.com", matches[0].URL)
	}
}

func TestClearHistory(t *testing.T) {
	ts, _ := newTestServer(t)

	if status, _ := do(t, http.MethodPost, ts.URL+"/api/history",
		`{"url": "https://example.com", "title": "Example"}`); status != http.StatusOK {
		t.Fatal("failed to seed history entry")
	}

	status, body := do(t, http.MethodDelete, ts.URL+"/api/history", "")
	if status != http.StatusOK {
		t.Fatalf("DELETE /api/history status = %d, want 200 (%s)", status, body)
	}

	status, body = do(t, http.MethodGet, ts.URL+"/api/history", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/history status = %d, want 200", status)
	}
	var entries []domain.HistoryEntry
	decodeInto(t, body, &entries)
	if len(entries) != 0 {
		t.Errorf("history after clear has %d entries, want 0", len(entries))
	}
}

func TestSettingsGetAndMerge(t *testing.T) {
	ts, _ := newTestServer(t)

	status, body := do(t, http.MethodGet, ts.URL+"/api/settings", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/settings status = %d, want 200", status)
	}
	var settings domain.Settings
	decodeInto(t, body, &settings)
	if settings.Theme != "light" || settings.Homepage != "https://www.google.com" {
		t.Errorf("fresh settings = %+v, want defaults", settings)
	}

	status, body = do(t, http.MethodPut, ts.URL+"/api/settings", `{"theme": "dark"}`)
	if status != http.StatusOK {
		t.Fatalf("PUT /api/settings status = %d, want 200", status)
	}
	decodeInto(t, body, &settings)
	if settings.Theme != "dark" {
		t.Errorf("Theme = %s, want dark", settings.Theme)
	}
	if settings.Homepage != "https://www.google.com" || settings.DefaultSearchEngine != "google" {
		t.Errorf("merge touched other fields: %+v", settings)
	}

	// The merge is persisted.
	status, body = do(t, http.MethodGet, ts.URL+"/api/settings", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/settings status = %d, want 200", status)
	}
	decodeInto(t, body, &settings)
	if settings.Theme != "dark" {
		t.Errorf("persisted Theme = %s, want dark", settings.Theme)
	}

	// Explicit empty value is applied, absent fields stay.
	status, body = do(t, http.MethodPut, ts.URL+"/api/settings", `{"homepage": ""}`)
	if status != http.StatusOK {
		t.Fatalf("PUT /api/settings status = %d, want 200", status)
	}
	decodeInto(t, body, &settings)
	if settings.Homepage != "" {
		t.Errorf("Homepage = %q, want explicit empty applied", settings.Homepage)
	}
	if settings.Theme != "dark" {
		t.Errorf("Theme = %s, want dark kept", settings.Theme)
	}
}

func TestDownloadLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	status, body := do(t, http.MethodPost, ts.URL+"/api/downloads",
		`{"filename": "report.pdf", "url": "https://example.com/report.pdf"}`)
	if status != http.StatusOK {
		t.Fatalf("POST /api/downloads status = %d, want 200 (%s)", status, body)
	}
	var created domain.DownloadRecord
	decodeInto(t, body, &created)
	if created.Status != "completed" {
		t.Errorf("Status = %s, want default completed", created.Status)
	}

	status, body = do(t, http.MethodGet, ts.URL+"/api/downloads", "")
	if status != http.StatusOK {
		t.Fatalf("GET /api/downloads status = %d, want 200", status)
	}
	var records []domain.DownloadRecord
	decodeInto(t, body, &records)
	if len(records) != 1 || records[0].ID != created.ID {
		t.Errorf("GET /api/downloads = %+v, want the created record", records)
	}

	status, _ = do(t, http.MethodDelete, ts.URL+"/api/downloads/"+created.ID, "")
	if status != http.StatusOK {
		t.Errorf("DELETE status = %d, want 200", status)
	}
	status, _ = do(t, http.MethodDelete, ts.URL+"/api/downloads/missing-id", "")
	if status != http.StatusNotFound {
		t.Errorf("DELETE missing id status = %d, want 404", status)
	}
}

func TestReadyz(t *testing.T) {
	ts, mr := newTestServer(t)

	status, _ := do(t, http.MethodGet, ts.URL+"/readyz", "")
	if status != http.StatusOK {
		t.Errorf("GET /readyz status = %d, want 200", status)
	}

	mr.Close()

	status, _ = do(t, http.MethodGet, ts.URL+"/readyz", "")
	if status != http.StatusServiceUnavailable {
		t.Errorf("GET /readyz with store down status = %d, want 503", status)
	}
}

func TestStoreUnavailableIsNot404(t *testing.T) {
	ts, mr := newTestServer(t)

	mr.Close()

	status, _ := do(t, http.MethodGet, ts.URL+"/api/bookmarks", "")
	if status != http.StatusServiceUnavailable {
		t.Errorf("GET /api/bookmarks with store down status = %d, want 503", status)
	}
}
