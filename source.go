package vitrine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Source supplies the records a scene is built from. A failed Fetch is
// surfaced to the caller as-is; the engine treats it as "no data" and
// never retries.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// HTTPSource fetches a JSON array of tabular rows from a URL, optionally
// authorized with a bearer token. Failures map onto the engine's
// taxonomy: 401/403 → ErrAuth, transport errors and other non-2xx
// statuses → ErrNetwork, undecodable bodies → ErrFormat.
type HTTPSource struct {
	URL   string
	Token string

	// Client defaults to a client with a 15s timeout.
	Client *http.Client
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]Record, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w: %v", ErrNetwork, err)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("fetch records %s: %w", s.URL, err)
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("fetch records: %w: %v", ErrFormat, err)
	}
	return normalizeRows(rows), nil
}

// checkStatus maps an HTTP status code onto the error taxonomy.
func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("status %d: %w", code, ErrAuth)
	default:
		return fmt.Errorf("status %d: %w", code, ErrNetwork)
	}
}

// FileSource reads the same JSON row array from disk. Used by the CLI
// and by tests.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read records %s: %w: %v", s.Path, ErrNetwork, err)
	}
	var rows []row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("read records %s: %w: %v", s.Path, ErrFormat, err)
	}
	return normalizeRows(rows), nil
}

func normalizeRows(rows []row) []Record {
	records := make([]Record, len(rows))
	for i, r := range rows {
		records[i] = normalizeRow(r)
	}
	return records
}
