package id

import (
	"strings"
	"sync"
	"testing"
)

func TestNewRunID(t *testing.T) {
	id1 := NewRunID()
	id2 := NewRunID()

	if id1 == id2 {
		t.Error("run IDs should be unique")
	}
	if !strings.HasPrefix(id1.String(), "run_") {
		t.Errorf("run ID should start with 'run_', got: %s", id1)
	}
	if !IsValid(id1.String()) {
		t.Errorf("generated ID should validate: %s", id1)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{NewRunID().String(), true},
		{"run_", false},
		{"run_not-a-ulid", false},
		{"sess_01HQXW5P7R9T2M4N6B8V0C1D3F", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.id); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestConcurrentGeneration(t *testing.T) {
	const n = 50
	var wg sync.WaitGroup
	ids := make([]RunID, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = NewRunID()
		}(i)
	}
	wg.Wait()

	seen := make(map[RunID]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
