package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rehoboam/internal/config"
	"rehoboam/internal/models"
	"rehoboam/internal/state"
	"rehoboam/internal/storage"
)

func newTestApp(t *testing.T, syncURL string) *app {
	t.Helper()

	kv, err := storage.Open(filepath.Join(t.TempDir(), "data.json"), 0644, 0755)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	states, err := state.NewStore(kv)
	if err != nil {
		t.Fatalf("failed to create state store: %v", err)
	}

	return &app{
		cfg: &config.Config{
			Sync: config.SyncConfig{
				URL:     syncURL,
				AnonKey: "anon-key",
				Enabled: true,
				Timeout: 5 * time.Second,
			},
		},
		kv:     kv,
		states: states,
	}
}

func newUpsertRecorder(t *testing.T, userIDs *[]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rows []struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		for _, row := range rows {
			*userIDs = append(*userIDs, row.UserID)
		}
		w.WriteHeader(http.StatusCreated)
	}))
}

func TestPushPendingUsesSessionIdentity(t *testing.T) {
	var gotUserIDs []string
	server := newUpsertRecorder(t, &gotUserIDs)
	defer server.Close()

	a := newTestApp(t, server.URL)
	if _, err := a.states.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	pushPending(a, "auth-user-9")

	if len(gotUserIDs) != 1 || gotUserIDs[0] != "auth-user-9" {
		t.Errorf("pushed rows under %v, want the session user id", gotUserIDs)
	}
	if pending := a.states.PendingSync(); len(pending) != 0 {
		t.Errorf("outbox should be empty after a successful push, has %d records", len(pending))
	}
}

func TestPushPendingFallsBackToLocalIdentity(t *testing.T) {
	var gotUserIDs []string
	server := newUpsertRecorder(t, &gotUserIDs)
	defer server.Close()

	a := newTestApp(t, server.URL)
	if _, err := a.states.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	pushPending(a, "")

	if len(gotUserIDs) != 1 || !strings.HasPrefix(gotUserIDs[0], "local-") {
		t.Errorf("pushed rows under %v, want the local instance identity", gotUserIDs)
	}
}
