// Package goals manages the user's personal milestones pinned to timeline
// months.
package goals

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rehoboam/internal/models"
)

const goalsKey = "timeline-goals"

// KV is the persistence surface the goal store needs.
type KV interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// Store keeps goals in memory and persists every mutation.
type Store struct {
	kv    KV
	goals []models.Goal
	mu    sync.RWMutex
	now   func() time.Time
}

// NewStore creates a goal store backed by kv, loading any persisted goals.
func NewStore(kv KV) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}
	if _, err := kv.Get(goalsKey, &s.goals); err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return s, nil
}

// List returns all goals sorted by target month, then creation time.
func (s *Store) List() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	sort.SliceStable(out, func(i, j int) bool {
		ii := models.MonthIndex(out[i].TargetYear, out[i].TargetMonth)
		ji := models.MonthIndex(out[j].TargetYear, out[j].TargetMonth)
		if ii != ji {
			return ii < ji
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// ForMonth returns goals targeting exactly (year, month).
func (s *Store) ForMonth(year, month int) []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Goal
	for _, g := range s.goals {
		if g.TargetYear == year && g.TargetMonth == month {
			out = append(out, g)
		}
	}
	return out
}

// Add creates and persists a new goal.
func (s *Store) Add(title, description string, year, month int, domains []models.Domain) (models.Goal, error) {
	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		TargetYear:  year,
		TargetMonth: month,
		Domains:     domains,
		CreatedAt:   s.now(),
	}
	if err := goal.Validate(); err != nil {
		return models.Goal{}, fmt.Errorf("invalid goal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = append(s.goals, goal)
	if err := s.persistLocked(); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// ToggleCompleted flips a goal's completion flag and persists it.
func (s *Store) ToggleCompleted(id string) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i].Completed = !s.goals[i].Completed
			if err := s.persistLocked(); err != nil {
				return models.Goal{}, err
			}
			return s.goals[i], nil
		}
	}
	return models.Goal{}, fmt.Errorf("goal not found: %s", id)
}

// Delete removes a goal and persists the change.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return s.persistLocked()
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

func (s *Store) persistLocked() error {
	goals := s.goals
	if goals == nil {
		goals = []models.Goal{}
	}
	if err := s.kv.Set(goalsKey, goals); err != nil {
		return fmt.Errorf("failed to persist goals: %w", err)
	}
	return nil
}
