package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/driekeerJ/scorecard/internal/config"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SnapshotPath = filepath.Join(t.TempDir(), "games.json")
	return cfg
}

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	decoded := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func createTestGame(t *testing.T, ts *httptest.Server, name string, players []string, winCondition string) int {
	t.Helper()
	drafts := make([]map[string]string, 0, len(players))
	for _, player := range players {
		drafts = append(drafts, map[string]string{"name": player})
	}
	status, body := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"name":          name,
		"players":       drafts,
		"win_condition": winCondition,
	})
	if status != http.StatusCreated {
		t.Fatalf("create game failed status=%d body=%v", status, body)
	}
	id, ok := body["game_id"].(float64)
	if !ok {
		t.Fatalf("missing game_id in %v", body)
	}
	return int(id)
}
