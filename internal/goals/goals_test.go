package goals

import (
	"path/filepath"
	"testing"
	"time"

	"rehoboam/internal/models"
	"rehoboam/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "data.json"), 0644, 0755)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	s, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)

	later, err := s.Add("Switch careers", "", 2030, 5, []models.Domain{models.DomainEconomic})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	earlier, err := s.Add("Learn robotics", "hands-on course", 2027, 0, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if later.ID == earlier.ID {
		t.Error("goals should receive distinct ids")
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("List returned %d goals, want 2", len(list))
	}
	// Sorted by target month.
	if list[0].ID != earlier.ID || list[1].ID != later.ID {
		t.Errorf("list order = [%s, %s], want earlier goal first", list[0].Title, list[1].Title)
	}
}

func TestAddRejectsInvalidGoal(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add("", "", 2027, 0, nil); err == nil {
		t.Error("empty title should be rejected")
	}
	if _, err := s.Add("Bad month", "", 2027, 12, nil); err == nil {
		t.Error("out-of-range month should be rejected")
	}
	if len(s.List()) != 0 {
		t.Error("rejected goals must not be stored")
	}
}

func TestForMonth(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add("Target month goal", "", 2028, 3, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("Other month goal", "", 2028, 4, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got := s.ForMonth(2028, 3)
	if len(got) != 1 || got[0].Title != "Target month goal" {
		t.Errorf("ForMonth(2028, 3) = %v", got)
	}
	if got := s.ForMonth(2029, 0); len(got) != 0 {
		t.Errorf("expected no goals for 2029-00, got %d", len(got))
	}
}

func TestToggleCompleted(t *testing.T) {
	s := newTestStore(t)

	goal, err := s.Add("Finish project", "", 2027, 6, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	toggled, err := s.ToggleCompleted(goal.ID)
	if err != nil {
		t.Fatalf("ToggleCompleted failed: %v", err)
	}
	if !toggled.Completed {
		t.Error("goal should be completed after first toggle")
	}

	toggled, err = s.ToggleCompleted(goal.ID)
	if err != nil {
		t.Fatalf("ToggleCompleted failed: %v", err)
	}
	if toggled.Completed {
		t.Error("goal should be open again after second toggle")
	}

	if _, err := s.ToggleCompleted("no-such-id"); err == nil {
		t.Error("toggling an unknown goal should fail")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	goal, err := s.Add("Temporary", "", 2027, 6, nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Delete(goal.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(s.List()) != 0 {
		t.Error("goal should be gone after delete")
	}
	if err := s.Delete(goal.ID); err == nil {
		t.Error("deleting an unknown goal should fail")
	}
}

func TestGoalsPersistAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	kv, err := storage.Open(path, 0644, 0755)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	s, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	s.now = func() time.Time { return time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC) }
	if _, err := s.Add("Durable goal", "", 2027, 6, nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	reopened, err := storage.Open(path, 0644, 0755)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	reloaded, err := NewStore(reopened)
	if err != nil {
		t.Fatalf("NewStore on existing kv failed: %v", err)
	}
	list := reloaded.List()
	if len(list) != 1 || list[0].Title != "Durable goal" {
		t.Errorf("reloaded goals = %v", list)
	}
}
