// Package state keeps per-user technology adoption history and resolves the
// effective status of a node at any month.
//
// The history is an append-style log of fact records. Writing a status never
// deletes older facts: a new record is stamped with the queried month as its
// effective date and merged in, so browsing an earlier month still shows what
// held back then. Merging is deterministic (idempotent and commutative per
// record slot), which makes local and remote histories safe to combine in
// either direction.
package state

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"rehoboam/internal/models"
)

const (
	statesKey = "tech-tree-states"
	outboxKey = "tech-tree-outbox"
)

// KV is the persistence surface the store needs.
type KV interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// MergeStates combines two state histories. Records are keyed by
// (node, effective year, effective month); within a slot the record with the
// strictly greater update timestamp wins, so replaying the same merge or
// swapping the argument order cannot change the outcome. The result is
// sorted ascending by update time.
func MergeStates(existing, incoming []models.TechTreeState) []models.TechTreeState {
	merged := make(map[string]models.TechTreeState, len(existing)+len(incoming))

	for _, s := range existing {
		key := s.MergeKey()
		if cur, ok := merged[key]; !ok || s.UpdatedAt.After(cur.UpdatedAt) {
			merged[key] = s
		}
	}
	for _, s := range incoming {
		key := s.MergeKey()
		if cur, ok := merged[key]; !ok || s.UpdatedAt.After(cur.UpdatedAt) {
			merged[key] = s
		}
	}

	out := make([]models.TechTreeState, 0, len(merged))
	for _, s := range merged {
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out
}

// NodeStatusForDate resolves the status of a node as seen at (year, month).
// Records effective after the target month are invisible; floor records
// (no effective date) always apply. Among the visible records the one with
// the latest effective month wins, falling back to update time for ties,
// with floor records ordered before any dated record. When nothing is
// visible the fallback status is returned.
func NodeStatusForDate(states []models.TechTreeState, nodeID string, year, month int, fallback models.TechTreeStatus) models.TechTreeStatus {
	target := models.MonthIndex(year, month)

	var relevant []models.TechTreeState
	for _, s := range states {
		if s.NodeID != nodeID {
			continue
		}
		if idx, ok := s.EffectiveIndex(); !ok || idx <= target {
			relevant = append(relevant, s)
		}
	}
	if len(relevant) == 0 {
		return fallback
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		ii, iok := relevant[i].EffectiveIndex()
		ji, jok := relevant[j].EffectiveIndex()
		if iok != jok {
			return !iok // floor records sort first
		}
		if iok && ii != ji {
			return ii < ji
		}
		return relevant[i].UpdatedAt.Before(relevant[j].UpdatedAt)
	})

	return relevant[len(relevant)-1].Status
}

// CompletionStats summarizes checklist progress over a node set.
type CompletionStats struct {
	Total      int
	Completed  int
	Percentage int
}

// Completion counts nodes whose resolved status at (year, month) has moved
// past not-started. An empty node set reports zero percent.
func Completion(states []models.TechTreeState, nodes []models.TechTreeNode, year, month int) CompletionStats {
	stats := CompletionStats{Total: len(nodes)}
	for _, n := range nodes {
		if NodeStatusForDate(states, n.ID, year, month, models.StatusNotStarted) != models.StatusNotStarted {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// StatusBreakdown tallies resolved statuses at (year, month) over a node set.
func StatusBreakdown(states []models.TechTreeState, nodes []models.TechTreeNode, year, month int) map[models.TechTreeStatus]int {
	breakdown := make(map[models.TechTreeStatus]int)
	for _, n := range nodes {
		breakdown[NodeStatusForDate(states, n.ID, year, month, models.StatusNotStarted)]++
	}
	return breakdown
}

// Store wraps the state history with persistence and a pending-sync outbox.
type Store struct {
	kv      KV
	states  []models.TechTreeState
	pending []models.TechTreeState
	mu      sync.RWMutex
	now     func() time.Time
}

// NewStore creates a store backed by kv, loading any persisted history.
func NewStore(kv KV) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}

	if _, err := kv.Get(statesKey, &s.states); err != nil {
		return nil, fmt.Errorf("failed to load state history: %w", err)
	}
	if _, err := kv.Get(outboxKey, &s.pending); err != nil {
		return nil, fmt.Errorf("failed to load pending sync records: %w", err)
	}
	return s, nil
}

// States returns a copy of the full history.
func (s *Store) States() []models.TechTreeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TechTreeState, len(s.states))
	copy(out, s.states)
	return out
}

// StatusFor resolves a node's status at (year, month) against the stored
// history.
func (s *Store) StatusFor(nodeID string, year, month int, fallback models.TechTreeStatus) models.TechTreeStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NodeStatusForDate(s.states, nodeID, year, month, fallback)
}

// SetStatus records a status for a node effective from (year, month). The new
// record is stamped with the current time, merged into the history, persisted,
// and queued in the pending outbox for the next sync push. The outbox holds at
// most one record per slot: correcting a status before a push replaces the
// queued record, so a single push never carries two rows with the same upsert
// key.
func (s *Store) SetStatus(nodeID string, status models.TechTreeStatus, year, month int) (models.TechTreeState, error) {
	record := models.TechTreeState{
		NodeID:         nodeID,
		Status:         status,
		EffectiveYear:  &year,
		EffectiveMonth: &month,
		UpdatedAt:      s.now(),
	}
	if err := record.Validate(); err != nil {
		return models.TechTreeState{}, fmt.Errorf("invalid state record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = MergeStates(s.states, []models.TechTreeState{record})
	s.pending = MergeStates(s.pending, []models.TechTreeState{record})

	if err := s.persistLocked(); err != nil {
		return models.TechTreeState{}, err
	}
	return record, nil
}

// MergeRemote folds a remote history into the local one and persists the
// result. Remote records never enter the outbox.
func (s *Store) MergeRemote(incoming []models.TechTreeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = MergeStates(s.states, incoming)
	return s.persistLocked()
}

// PendingSync returns a copy of the records awaiting a push to the remote.
func (s *Store) PendingSync() []models.TechTreeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TechTreeState, len(s.pending))
	copy(out, s.pending)
	return out
}

// ClearPending empties the outbox after a successful push.
func (s *Store) ClearPending() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if err := s.kv.Set(statesKey, s.states); err != nil {
		return fmt.Errorf("failed to persist state history: %w", err)
	}
	outbox := s.pending
	if outbox == nil {
		outbox = []models.TechTreeState{}
	}
	if err := s.kv.Set(outboxKey, outbox); err != nil {
		return fmt.Errorf("failed to persist pending sync records: %w", err)
	}
	return nil
}
