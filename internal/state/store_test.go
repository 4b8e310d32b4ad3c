package state

import (
	"testing"
	"time"

	"rehoboam/internal/models"
)

func intPtr(v int) *int { return &v }

func dated(nodeID string, status models.TechTreeStatus, year, month int, ts time.Time) models.TechTreeState {
	return models.TechTreeState{
		NodeID:         nodeID,
		Status:         status,
		EffectiveYear:  intPtr(year),
		EffectiveMonth: intPtr(month),
		UpdatedAt:      ts,
	}
}

func floor(nodeID string, status models.TechTreeStatus, ts time.Time) models.TechTreeState {
	return models.TechTreeState{NodeID: nodeID, Status: status, UpdatedAt: ts}
}

var (
	t1 = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
	t3 = t1.Add(2 * time.Hour)
)

func TestNodeStatusForDate(t *testing.T) {
	history := []models.TechTreeState{
		dated("IND-AI-01", models.StatusPilot, 2027, 0, t1),
		dated("IND-AI-01", models.StatusMassMarket, 2030, 0, t2),
	}

	tests := []struct {
		name     string
		year     int
		month    int
		expected models.TechTreeStatus
	}{
		{"before any record", 2026, 5, models.StatusNotStarted},
		{"first record effective", 2027, 0, models.StatusPilot},
		{"between records", 2028, 6, models.StatusPilot},
		{"second record effective", 2030, 0, models.StatusMassMarket},
		{"after all records", 2031, 0, models.StatusMassMarket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NodeStatusForDate(history, "IND-AI-01", tt.year, tt.month, models.StatusNotStarted)
			if got != tt.expected {
				t.Errorf("NodeStatusForDate(%d, %d) = %s, want %s", tt.year, tt.month, got, tt.expected)
			}
		})
	}
}

func TestNodeStatusForDateFloorRecords(t *testing.T) {
	history := []models.TechTreeState{
		floor("GOV-AI-01", models.StatusRAndD, t1),
		dated("GOV-AI-01", models.StatusPilot, 2028, 0, t2),
	}

	// Floor record applies from the beginning of time.
	if got := NodeStatusForDate(history, "GOV-AI-01", 2026, 0, models.StatusNotStarted); got != models.StatusRAndD {
		t.Errorf("before dated record = %s, want %s", got, models.StatusRAndD)
	}
	// Dated record dominates once effective.
	if got := NodeStatusForDate(history, "GOV-AI-01", 2028, 0, models.StatusNotStarted); got != models.StatusPilot {
		t.Errorf("at dated record = %s, want %s", got, models.StatusPilot)
	}
}

func TestNodeStatusForDateFallback(t *testing.T) {
	if got := NodeStatusForDate(nil, "IND-AI-01", 2027, 0, models.StatusNotStarted); got != models.StatusNotStarted {
		t.Errorf("empty history = %s, want fallback", got)
	}

	other := []models.TechTreeState{dated("SOC-T-01", models.StatusPilot, 2026, 0, t1)}
	if got := NodeStatusForDate(other, "IND-AI-01", 2027, 0, models.StatusRAndD); got != models.StatusRAndD {
		t.Errorf("history for another node = %s, want fallback", got)
	}
}

func TestNodeStatusForDateSameMonthLatestUpdateWins(t *testing.T) {
	history := []models.TechTreeState{
		dated("IND-AI-01", models.StatusPilot, 2027, 0, t2),
		dated("IND-AI-01", models.StatusEarlyAdopters, 2027, 0, t1),
	}

	// Two records effective at the same month resolve by update time.
	if got := NodeStatusForDate(history, "IND-AI-01", 2027, 6, models.StatusNotStarted); got != models.StatusPilot {
		t.Errorf("same-month conflict = %s, want later update %s", got, models.StatusPilot)
	}
}

func TestMergeStates(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.TechTreeState
		incoming []models.TechTreeState
		wantLen  int
	}{
		{
			name:     "disjoint slots are concatenated",
			existing: []models.TechTreeState{dated("a", models.StatusPilot, 2027, 0, t1)},
			incoming: []models.TechTreeState{dated("a", models.StatusPilot, 2028, 0, t2)},
			wantLen:  2,
		},
		{
			name:     "same slot newer wins",
			existing: []models.TechTreeState{dated("a", models.StatusPilot, 2027, 0, t1)},
			incoming: []models.TechTreeState{dated("a", models.StatusMassMarket, 2027, 0, t2)},
			wantLen:  1,
		},
		{
			name:     "floor and dated occupy distinct slots",
			existing: []models.TechTreeState{floor("a", models.StatusRAndD, t1)},
			incoming: []models.TechTreeState{dated("a", models.StatusPilot, 2027, 0, t2)},
			wantLen:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeStates(tt.existing, tt.incoming)
			if len(got) != tt.wantLen {
				t.Fatalf("MergeStates() returned %d records, want %d", len(got), tt.wantLen)
			}
			// Result is ordered by update time.
			for i := 1; i < len(got); i++ {
				if got[i].UpdatedAt.Before(got[i-1].UpdatedAt) {
					t.Errorf("result not sorted by update time at index %d", i)
				}
			}
		})
	}
}

func TestMergeStatesNewerWinsRegardlessOfDirection(t *testing.T) {
	older := dated("a", models.StatusPilot, 2027, 0, t1)
	newer := dated("a", models.StatusMassMarket, 2027, 0, t2)

	forward := MergeStates([]models.TechTreeState{older}, []models.TechTreeState{newer})
	backward := MergeStates([]models.TechTreeState{newer}, []models.TechTreeState{older})

	if len(forward) != 1 || forward[0].Status != models.StatusMassMarket {
		t.Errorf("forward merge kept %v, want newer record", forward)
	}
	if len(backward) != 1 || backward[0].Status != models.StatusMassMarket {
		t.Errorf("backward merge kept %v, want newer record", backward)
	}
}

func TestMergeStatesIdempotent(t *testing.T) {
	history := []models.TechTreeState{
		dated("a", models.StatusPilot, 2027, 0, t1),
		floor("b", models.StatusRAndD, t2),
	}

	once := MergeStates(history, history)
	twice := MergeStates(once, history)

	if len(once) != 2 || len(twice) != 2 {
		t.Errorf("repeated self-merge changed record count: %d then %d", len(once), len(twice))
	}
}

func TestMergeStatesEqualTimestampKeepsFirstSeen(t *testing.T) {
	first := dated("a", models.StatusPilot, 2027, 0, t1)
	second := dated("a", models.StatusMassMarket, 2027, 0, t1)

	got := MergeStates([]models.TechTreeState{first}, []models.TechTreeState{second})
	if len(got) != 1 || got[0].Status != models.StatusPilot {
		t.Errorf("equal timestamps should keep the first seen record, got %v", got)
	}
}

func TestCompletion(t *testing.T) {
	nodes := make([]models.TechTreeNode, 10)
	for i := range nodes {
		nodes[i] = models.TechTreeNode{ID: string(rune('a' + i))}
	}

	// 7 of 10 nodes have moved past not-started.
	var history []models.TechTreeState
	for i := 0; i < 7; i++ {
		history = append(history, dated(nodes[i].ID, models.StatusPilot, 2026, 0, t1))
	}

	stats := Completion(history, nodes, 2027, 0)
	if stats.Total != 10 || stats.Completed != 7 || stats.Percentage != 70 {
		t.Errorf("Completion() = %+v, want {10 7 70}", stats)
	}
}

func TestCompletionEmptyNodeSet(t *testing.T) {
	stats := Completion(nil, nil, 2027, 0)
	if stats.Total != 0 || stats.Completed != 0 || stats.Percentage != 0 {
		t.Errorf("Completion() over no nodes = %+v, want zeros", stats)
	}
}

func TestStatusBreakdown(t *testing.T) {
	nodes := []models.TechTreeNode{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	history := []models.TechTreeState{
		dated("a", models.StatusPilot, 2026, 0, t1),
		dated("b", models.StatusPilot, 2026, 0, t2),
	}

	breakdown := StatusBreakdown(history, nodes, 2027, 0)
	if breakdown[models.StatusPilot] != 2 {
		t.Errorf("pilot count = %d, want 2", breakdown[models.StatusPilot])
	}
	if breakdown[models.StatusNotStarted] != 1 {
		t.Errorf("not-started count = %d, want 1", breakdown[models.StatusNotStarted])
	}
}

// memKV is an in-memory KV used to exercise the store without touching disk.
type memKV struct {
	values map[string]interface{}
}

func newMemKV() *memKV { return &memKV{values: make(map[string]interface{})} }

func (m *memKV) Get(key string, dest interface{}) (bool, error) {
	v, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if states, ok := v.([]models.TechTreeState); ok {
		*dest.(*[]models.TechTreeState) = states
		return true, nil
	}
	return false, nil
}

func (m *memKV) Set(key string, value interface{}) error {
	if states, ok := value.([]models.TechTreeState); ok {
		cp := make([]models.TechTreeState, len(states))
		copy(cp, states)
		m.values[key] = cp
		return nil
	}
	m.values[key] = value
	return nil
}

func TestStoreSetStatusStampsEffectiveDate(t *testing.T) {
	store, err := NewStore(newMemKV())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store.now = func() time.Time { return t1 }

	record, err := store.SetStatus("IND-AI-01", models.StatusPilot, 2027, 3)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if record.EffectiveYear == nil || *record.EffectiveYear != 2027 {
		t.Errorf("effective year = %v, want 2027", record.EffectiveYear)
	}
	if record.EffectiveMonth == nil || *record.EffectiveMonth != 3 {
		t.Errorf("effective month = %v, want 3", record.EffectiveMonth)
	}
	if !record.UpdatedAt.Equal(t1) {
		t.Errorf("updated at = %v, want %v", record.UpdatedAt, t1)
	}
}

func TestStoreHistoryPreserved(t *testing.T) {
	store, err := NewStore(newMemKV())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	clock := t1
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	if _, err := store.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if _, err := store.SetStatus("IND-AI-01", models.StatusMassMarket, 2030, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	// Both facts survive: earlier months still resolve to the earlier status.
	if got := store.StatusFor("IND-AI-01", 2028, 6, models.StatusNotStarted); got != models.StatusPilot {
		t.Errorf("2028-06 = %s, want %s", got, models.StatusPilot)
	}
	if got := store.StatusFor("IND-AI-01", 2031, 0, models.StatusNotStarted); got != models.StatusMassMarket {
		t.Errorf("2031-00 = %s, want %s", got, models.StatusMassMarket)
	}
	if len(store.States()) != 2 {
		t.Errorf("history has %d records, want 2", len(store.States()))
	}
}

func TestStoreOutbox(t *testing.T) {
	store, err := NewStore(newMemKV())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store.now = func() time.Time { return t1 }

	if _, err := store.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	pending := store.PendingSync()
	if len(pending) != 1 || pending[0].NodeID != "IND-AI-01" {
		t.Fatalf("pending = %v, want the written record", pending)
	}

	if err := store.ClearPending(); err != nil {
		t.Fatalf("ClearPending failed: %v", err)
	}
	if got := store.PendingSync(); len(got) != 0 {
		t.Errorf("outbox should be empty after clear, has %d records", len(got))
	}

	// Remote merges never enter the outbox.
	if err := store.MergeRemote([]models.TechTreeState{dated("SOC-T-01", models.StatusPilot, 2026, 0, t2)}); err != nil {
		t.Fatalf("MergeRemote failed: %v", err)
	}
	if got := store.PendingSync(); len(got) != 0 {
		t.Errorf("remote records leaked into the outbox: %v", got)
	}
}

func TestStoreOutboxCorrectionKeepsOneRecordPerSlot(t *testing.T) {
	store, err := NewStore(newMemKV())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	clock := t1
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	if _, err := store.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if _, err := store.SetStatus("IND-AI-01", models.StatusMassMarket, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	// A correction before a push replaces the queued record; a push must never
	// carry two rows with the same upsert key.
	pending := store.PendingSync()
	if len(pending) != 1 {
		t.Fatalf("outbox holds %d records for one slot, want 1", len(pending))
	}
	if pending[0].Status != models.StatusMassMarket {
		t.Errorf("outbox kept %s, want the correction", pending[0].Status)
	}

	if _, err := store.SetStatus("IND-AI-01", models.StatusUbiquitous, 2030, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	pending = store.PendingSync()
	if len(pending) != 2 {
		t.Fatalf("outbox holds %d records, want 2 distinct slots", len(pending))
	}
	seen := make(map[string]bool)
	for _, p := range pending {
		if seen[p.MergeKey()] {
			t.Errorf("duplicate upsert key %s in outbox", p.MergeKey())
		}
		seen[p.MergeKey()] = true
	}
}

func TestStoreReloadsPersistedHistory(t *testing.T) {
	kv := newMemKV()

	store, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	store.now = func() time.Time { return t3 }
	if _, err := store.SetStatus("IND-AI-01", models.StatusPilot, 2027, 0); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	reloaded, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore on existing kv failed: %v", err)
	}
	if got := reloaded.StatusFor("IND-AI-01", 2027, 0, models.StatusNotStarted); got != models.StatusPilot {
		t.Errorf("reloaded status = %s, want %s", got, models.StatusPilot)
	}
	if len(reloaded.PendingSync()) != 1 {
		t.Errorf("outbox should survive reload, has %d records", len(reloaded.PendingSync()))
	}
}
