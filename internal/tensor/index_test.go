package tensor

import (
	"strings"
	"testing"
)

func TestCheckIndex(t *testing.T) {
	s := Shape{2, 3}

	valid := []Index{{0, 0}, {1, 2}, {0, 2}}
	for _, idx := range valid {
		if err := s.CheckIndex(idx); err != nil {
			t.Errorf("CheckIndex(%v) failed: %v", idx, err)
		}
	}

	tests := []struct {
		idx     Index
		wantMsg string
	}{
		{Index{0}, "must have length 2"},
		{Index{0, 0, 0}, "got length 3"},
		{Index{2, 0}, "out of bounds"},
		{Index{0, 3}, "out of bounds"},
		{Index{-1, 0}, "out of bounds"},
	}

	for _, tt := range tests {
		err := s.CheckIndex(tt.idx)
		if err == nil {
			t.Errorf("CheckIndex(%v) should have failed", tt.idx)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("CheckIndex(%v) error %q does not mention %q", tt.idx, err, tt.wantMsg)
		}
	}
}

func TestCheckIndexScalar(t *testing.T) {
	s := Shape{}
	if err := s.CheckIndex(Index{}); err != nil {
		t.Errorf("empty index into scalar shape should be valid: %v", err)
	}
	if err := s.CheckIndex(Index{0}); err == nil {
		t.Error("non-empty index into scalar shape should fail")
	}
}

func TestFlatIndex(t *testing.T) {
	s := Shape{2, 3}
	tests := []struct {
		idx  Index
		flat int
	}{
		{Index{0, 0}, 0},
		{Index{0, 2}, 2},
		{Index{1, 0}, 3},
		{Index{1, 2}, 5},
	}
	for _, tt := range tests {
		if got := s.FlatIndex(tt.idx); got != tt.flat {
			t.Errorf("FlatIndex(%v) = %d, want %d", tt.idx, got, tt.flat)
		}
	}

	// Scalar: the empty index addresses offset 0.
	if got := (Shape{}).FlatIndex(Index{}); got != 0 {
		t.Errorf("scalar FlatIndex = %d, want 0", got)
	}
}

func TestIndicesEnumeration(t *testing.T) {
	s := Shape{2, 2}
	want := []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	got := s.Indices()
	if len(got) != len(want) {
		t.Fatalf("Indices() returned %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Indices()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIndicesScalar(t *testing.T) {
	got := (Shape{}).Indices()
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("scalar Indices() = %v, want one empty index", got)
	}
}

func TestIndexEqualAndClone(t *testing.T) {
	a := Index{1, 2}
	if !a.Equal(Index{1, 2}) {
		t.Error("Equal should match identical indices")
	}
	if a.Equal(Index{1}) || a.Equal(Index{2, 1}) {
		t.Error("Equal should reject differing indices")
	}

	c := a.Clone()
	c[0] = 9
	if a[0] != 1 {
		t.Error("Clone should not alias the original")
	}
}
