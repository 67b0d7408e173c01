package history

import (
	"testing"

	"github.com/briangreenhill/fitadvisor/advisor"
)

func TestMemoryStoreAppend(t *testing.T) {
	s := NewMemoryStore()

	e := s.Append(Entry{
		UserID:  "alice",
		Metrics: advisor.HealthMetrics{HeartRate: 72, SleepHours: 7.5, StressLevel: 4},
	})

	if e.ID == "" {
		t.Error("Append should assign an ID")
	}
	if e.Timestamp.IsZero() {
		t.Error("Append should assign a timestamp")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemoryStoreAnonymous(t *testing.T) {
	s := NewMemoryStore()
	e := s.Append(Entry{})
	if e.UserID != "anonymous" {
		t.Errorf("UserID = %s, want anonymous", e.UserID)
	}
}

func TestMemoryStoreQuery(t *testing.T) {
	s := NewMemoryStore()
	s.Append(Entry{UserID: "alice", Metrics: advisor.HealthMetrics{HeartRate: 70}})
	s.Append(Entry{UserID: "bob", Metrics: advisor.HealthMetrics{HeartRate: 80}})
	s.Append(Entry{UserID: "alice", Metrics: advisor.HealthMetrics{HeartRate: 90}})

	got := s.Query("alice")
	if len(got) != 2 {
		t.Fatalf("Query(alice) = %d entries, want 2", len(got))
	}
	// Insertion order preserved
	if got[0].Metrics.HeartRate != 70 || got[1].Metrics.HeartRate != 90 {
		t.Errorf("entries out of order: %+v", got)
	}

	if len(s.Query("carol")) != 0 {
		t.Error("Query for unknown user should be empty")
	}

	if len(s.All()) != 3 {
		t.Errorf("All() = %d entries, want 3", len(s.All()))
	}
}
