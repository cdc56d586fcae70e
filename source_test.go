package vitrine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const rowsJSON = `[
	{"name": "Ada", "photo": "", "country": "UK", "interest": "mathematics", "age": 36, "netWorth": "unknown"},
	{"name": "Linus", "photo": "https://example.com/l.png", "country": "Finland", "interest": "diving", "age": "55", "netWorth": 150000000}
]`

func TestHTTPSourceFetch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(rowsJSON))
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL, Token: "tok123"}
	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].PhotoURL != PlaceholderPhotoURL {
		t.Errorf("record 0 photo = %q, want placeholder", records[0].PhotoURL)
	}
	if records[0].NetWorthKnown {
		t.Error("record 0 net worth should be unknown")
	}
	if records[1].Age != 55 || !records[1].NetWorthKnown {
		t.Errorf("record 1 = %+v, want age 55 and known net worth", records[1])
	}
}

func TestHTTPSourceAuthError(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		src := &HTTPSource{URL: srv.URL}
		_, err := src.Fetch(context.Background())
		srv.Close()
		if !errors.Is(err, ErrAuth) {
			t.Errorf("status %d: error = %v, want ErrAuth", code, err)
		}
	}
}

func TestHTTPSourceNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL}
	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Errorf("status 500: error = %v, want ErrNetwork", err)
	}

	// Unreachable host is a transport-level network failure.
	src = &HTTPSource{URL: "http://127.0.0.1:1/none"}
	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Errorf("unreachable host: error = %v, want ErrNetwork", err)
	}
}

func TestHTTPSourceFormatError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	src := &HTTPSource{URL: srv.URL}
	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(rowsJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}
	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestFileSourceBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not rows"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := &FileSource{Path: path}
	if _, err := src.Fetch(context.Background()); !errors.Is(err, ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}
