package session

import (
	"testing"
	"time"

	"expenses/internal/core"
)

func clockTime() time.Time { return time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC) }

func TestStoreResolve(t *testing.T) {
	st := NewStore(Config{TTL: time.Hour, MaxEntries: 10})

	s1, created := st.Resolve("")
	if !created || s1.ID == "" {
		t.Fatalf("expected new session, got %+v created=%v", s1, created)
	}
	s2, created := st.Resolve(s1.ID)
	if created || s2 != s1 {
		t.Fatalf("expected same session back")
	}
	s3, created := st.Resolve("unknown")
	if !created || s3.ID == s1.ID {
		t.Fatalf("expected fresh session for unknown id")
	}
	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}
}

func TestStoreSeedsNewSessions(t *testing.T) {
	seed := func() []core.ExpenseInput {
		return []core.ExpenseInput{
			input("a", core.Food, "1"),
			input("", core.Food, "1"),
			input("b", core.Shopping, "2"),
		}
	}
	st := NewStore(DefaultConfig(), WithSeed(seed))
	s := st.Create()
	got := s.Expenses()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected seeded collection %+v", got)
	}
}

func TestStoreCapacity(t *testing.T) {
	st := NewStore(Config{TTL: time.Hour, MaxEntries: 2})
	first := st.Create()
	st.Create()
	st.Create()
	if _, ok := st.Get(first.ID); ok {
		t.Fatalf("oldest session should have been evicted")
	}
	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	st := NewStore(DefaultConfig())
	a := st.Create()
	b := st.Create()
	_, _ = a.Append(input("x", core.Food, "1"))
	if b.Len() != 0 {
		t.Fatalf("session b sees session a's expenses")
	}
}
