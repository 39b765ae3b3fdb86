package store

import (
	"errors"
	"testing"
)

func TestInsertFindRoundTrip(t *testing.T) {
	m := New[int, string](10)
	if err := m.Insert(3, "three"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	v, ok := m.Find(3)
	if !ok || *v != "three" {
		t.Fatalf("expected to find \"three\", got %v ok=%v", v, ok)
	}
	if _, ok := m.Find(4); ok {
		t.Fatalf("expected key 4 to be absent")
	}
}

func TestInsertUpdatesInPlace(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(1, 10); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := m.Insert(1, 20); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry after update, got %d", m.Len())
	}
	v, _ := m.Find(1)
	if *v != 20 {
		t.Fatalf("expected most recent value 20, got %d", *v)
	}
}

func TestFindPointerAllowsMutation(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(2, 5); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	v, _ := m.Find(2)
	*v = 99
	got, _ := m.Find(2)
	if *got != 99 {
		t.Fatalf("expected mutation through pointer to persist, got %d", *got)
	}
}

func TestCapacityOverflowLeavesEntriesIntact(t *testing.T) {
	m := New[int, int](5)
	for k := 0; k < 5; k++ {
		if err := m.Insert(k, k*10); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
	if err := m.Insert(5, 50); !errors.Is(err, ErrFull) {
		t.Fatalf("expected ErrFull on sixth distinct key, got %v", err)
	}
	for k := 0; k < 5; k++ {
		v, ok := m.Find(k)
		if !ok || *v != k*10 {
			t.Fatalf("entry %d disturbed by failed insert: %v ok=%v", k, v, ok)
		}
	}
	// Updating an existing key still succeeds on a full table.
	if err := m.Insert(0, 1); err != nil {
		t.Fatalf("update on full table failed: %v", err)
	}
}

func TestRemoveTombstonesAndReportsPresence(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(1, 1); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !m.Remove(1) {
		t.Fatalf("expected remove of present key to report true")
	}
	if _, ok := m.Find(1); ok {
		t.Fatalf("expected key to be absent immediately after remove")
	}
	if m.Remove(1) {
		t.Fatalf("expected second remove to report false")
	}
	if m.Remove(7) {
		t.Fatalf("expected remove of never-inserted key to report false")
	}
}

func TestTombstoneKeepsProbeChainIntact(t *testing.T) {
	// Keys 0, 5 and 10 all hash to slot 0 in a 5-slot table, forming a
	// probe chain 0 -> 1 -> 2. Removing the middle entry must not make
	// the tail unreachable.
	m := New[int, int](5)
	for _, k := range []int{0, 5, 10} {
		if err := m.Insert(k, k); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
	if !m.Remove(5) {
		t.Fatalf("expected remove of 5 to succeed")
	}
	v, ok := m.Find(10)
	if !ok || *v != 10 {
		t.Fatalf("expected key 10 to stay reachable past the tombstone, got %v ok=%v", v, ok)
	}
}

func TestReinsertAfterRemoveNeverDuplicatesKey(t *testing.T) {
	// Insert 0 and 5 (chain 0 -> 1), tombstone slot 0, then re-insert 5.
	// The live entry for 5 in slot 1 must be updated rather than a second
	// copy being written into the tombstoned slot.
	m := New[int, int](5)
	if err := m.Insert(0, 0); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := m.Insert(5, 1); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !m.Remove(0) {
		t.Fatalf("remove failed")
	}
	if err := m.Insert(5, 2); err != nil {
		t.Fatalf("reinsert failed: %v", err)
	}

	seen := 0
	for k, v := range m.All() {
		if k == 5 {
			seen++
			if *v != 2 {
				t.Fatalf("expected most recent value 2, got %d", *v)
			}
		}
	}
	if seen != 1 {
		t.Fatalf("expected key 5 to appear exactly once, got %d", seen)
	}
}

func TestIterationYieldsExactlyLiveEntries(t *testing.T) {
	m := New[int, int](10)
	for k := 0; k < 7; k++ {
		if err := m.Insert(k, k); err != nil {
			t.Fatalf("insert %d failed: %v", k, err)
		}
	}
	m.Remove(2)
	m.Remove(4)

	got := map[int]bool{}
	for k := range m.All() {
		if got[k] {
			t.Fatalf("key %d yielded twice", k)
		}
		got[k] = true
	}
	want := map[int]bool{0: true, 1: true, 3: true, 5: true, 6: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("expected key %d in iteration", k)
		}
	}
}

func TestIterationIsRestartable(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(1, 1); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	first, second := 0, 0
	for range m.All() {
		first++
	}
	for range m.All() {
		second++
	}
	if first != 1 || second != 1 {
		t.Fatalf("expected both passes to yield 1 entry, got %d and %d", first, second)
	}
}

func TestIterationValueMutation(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(1, 1); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	for _, v := range m.All() {
		*v = 42
	}
	got, _ := m.Find(1)
	if *got != 42 {
		t.Fatalf("expected iteration mutation to persist, got %d", *got)
	}
}

func TestZeroKeyIsLegitimate(t *testing.T) {
	m := New[int, int](4)
	if err := m.Insert(0, 7); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	v, ok := m.Find(0)
	if !ok || *v != 7 {
		t.Fatalf("expected zero key to behave like any other, got %v ok=%v", v, ok)
	}
	if m.Len() != 1 {
		t.Fatalf("expected len 1, got %d", m.Len())
	}
}

func TestLenAndIsEmpty(t *testing.T) {
	m := New[int, int](4)
	if !m.IsEmpty() {
		t.Fatalf("expected fresh map to be empty")
	}
	if err := m.Insert(1, 1); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if m.IsEmpty() || m.Len() != 1 {
		t.Fatalf("expected one live entry")
	}
	m.Remove(1)
	if !m.IsEmpty() {
		t.Fatalf("expected map to be empty after removing the only entry")
	}
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero capacity")
		}
	}()
	New[int, int](0)
}
