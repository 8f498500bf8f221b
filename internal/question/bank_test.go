package question

import (
	"fmt"
	"testing"
)

func newTestBank(t *testing.T) *Bank {
	t.Helper()
	b, err := NewBank()
	if err != nil {
		t.Fatalf("new bank: %v", err)
	}
	return b
}

// syntheticBank builds a bank with a single module whose pool has n questions.
func syntheticBank(moduleID string, n int) *Bank {
	pool := make([]Question, n)
	for i := range pool {
		pool[i] = Question{
			ID:      fmt.Sprintf("q-%d", i),
			Prompt:  fmt.Sprintf("prompt %d", i),
			Options: []string{"a", "b", "c", "d"},
			Correct: i % 4,
		}
	}
	return &Bank{pools: map[string][]Question{moduleID: pool}}
}

func TestNewBankLoadsEmbeddedPools(t *testing.T) {
	b := newTestBank(t)

	tests := []struct {
		moduleID string
		want     int
	}{
		{"mutual-funds", 5},
		{"equity-derivatives", 8},
		{"currency-derivatives", 6},
	}

	for _, tt := range tests {
		if got := len(b.Pool(tt.moduleID)); got != tt.want {
			t.Errorf("pool %s size = %d, want %d", tt.moduleID, got, tt.want)
		}
	}
}

func TestSelectNoDuplicatesAndSize(t *testing.T) {
	b := newTestBank(t)

	for _, moduleID := range []string{"mutual-funds", "equity-derivatives", "currency-derivatives"} {
		for _, tt := range []TestType{TypePractice, TypeFinal} {
			poolSize := len(b.Pool(moduleID))
			set := b.Select(moduleID, "Practice Test 1", tt)

			want := poolSize
			if limit := Cap(tt); want > limit {
				want = limit
			}
			if len(set) != want {
				t.Errorf("%s/%s: set size = %d, want %d", moduleID, tt, len(set), want)
			}

			seen := make(map[string]bool, len(set))
			for _, q := range set {
				if seen[q.ID] {
					t.Errorf("%s/%s: duplicate question %q", moduleID, tt, q.ID)
				}
				seen[q.ID] = true
			}
		}
	}
}

func TestSelectTruncatesToCap(t *testing.T) {
	b := syntheticBank("big-module", 60)

	if got := len(b.Select("big-module", "t", TypePractice)); got != PracticeCap {
		t.Errorf("practice size = %d, want %d", got, PracticeCap)
	}
	if got := len(b.Select("big-module", "t", TypeFinal)); got != FinalCap {
		t.Errorf("final size = %d, want %d", got, FinalCap)
	}
}

func TestSelectUnknownModule(t *testing.T) {
	b := newTestBank(t)

	set := b.Select("no-such-module", "Practice Test 1", TypePractice)
	if len(set) != 0 {
		t.Errorf("expected empty set for unknown module, got %d questions", len(set))
	}
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	b := newTestBank(t)

	before := b.Pool("mutual-funds")
	b.Select("mutual-funds", "t", TypePractice)
	after := b.Pool("mutual-funds")

	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("pool order changed at %d: %q -> %q", i, before[i].ID, after[i].ID)
		}
	}
}

func TestShuffleUniformity(t *testing.T) {
	// Every question should land in every position with roughly equal
	// frequency. A loose tolerance keeps this statistical test stable.
	b := newTestBank(t)
	const trials = 5000
	poolSize := len(b.Pool("mutual-funds"))

	positions := make(map[string][]int)
	for i := 0; i < trials; i++ {
		set := b.Select("mutual-funds", "t", TypePractice)
		for pos, q := range set {
			if positions[q.ID] == nil {
				positions[q.ID] = make([]int, poolSize)
			}
			positions[q.ID][pos]++
		}
	}

	expected := float64(trials) / float64(poolSize)
	for id, counts := range positions {
		for pos, count := range counts {
			ratio := float64(count) / expected
			if ratio < 0.7 || ratio > 1.3 {
				t.Errorf("question %s at position %d: count %d deviates from expected %.0f", id, pos, count, expected)
			}
		}
	}
}

func TestCheckPoolRejectsDuplicateIDs(t *testing.T) {
	pool := []Question{
		{ID: "q-1", Options: []string{"a", "b"}, Correct: 0},
		{ID: "q-1", Options: []string{"a", "b"}, Correct: 1},
	}
	if err := checkPool(pool); err == nil {
		t.Error("expected error for duplicate IDs")
	}
}

func TestCheckPoolRejectsOutOfRangeCorrect(t *testing.T) {
	pool := []Question{
		{ID: "q-1", Options: []string{"a", "b"}, Correct: 2},
	}
	if err := checkPool(pool); err == nil {
		t.Error("expected error for out-of-range correct index")
	}
}

func TestCatalog(t *testing.T) {
	m, ok := ModuleByID("mutual-funds")
	if !ok {
		t.Fatal("expected mutual-funds in catalog")
	}
	if m.TestCount() != 7 {
		t.Errorf("test count = %d, want 7", m.TestCount())
	}

	if _, ok := ModuleByID("nope"); ok {
		t.Error("expected unknown module to miss")
	}

	if len(Catalog()) != 3 {
		t.Errorf("catalog size = %d, want 3", len(Catalog()))
	}
}
