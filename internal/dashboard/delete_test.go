package dashboard

import (
	"slices"
	"testing"

	"github.com/google/uuid"
)

func TestDeletePositions_BatchIsOrderIndependent(t *testing.T) {
	tests := []struct {
		name      string
		positions []int
	}{
		{name: "ascending", positions: []int{1, 3}},
		{name: "descending", positions: []int{3, 1}},
		{name: "duplicates", positions: []int{3, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: [A,B,C,D,E]
			s := letteredStore(t, 5)

			// When: positions 1 and 3 are deleted in one batch
			n := deletePositions(s, tt.positions)

			// Then: [A,C,E] remains
			if n != 2 {
				t.Errorf("removed = %d, want 2", n)
			}
			if got, want := firstNames(s), []string{"A", "C", "E"}; !slices.Equal(got, want) {
				t.Errorf("remaining = %v, want %v", got, want)
			}
		})
	}
}

func TestDeletePositions_All(t *testing.T) {
	s := letteredStore(t, 3)

	n := deletePositions(s, []int{0, 1, 2})

	if n != 3 || s.Len() != 0 {
		t.Errorf("removed = %d, len = %d, want 3 and 0", n, s.Len())
	}
}

func TestDeletePositions_Empty(t *testing.T) {
	s := letteredStore(t, 3)

	n := deletePositions(s, nil)

	if n != 0 || s.Len() != 3 {
		t.Errorf("removed = %d, len = %d, want 0 and 3", n, s.Len())
	}
}

func TestResolvePositions_SkipsMissingIDs(t *testing.T) {
	// Given: a store and one ID that is not in it
	s := letteredStore(t, 3)
	ids := []uuid.UUID{s.At(2).ID, uuid.New(), s.At(0).ID}

	// When: IDs are resolved
	got := resolvePositions(s, ids)

	// Then: only present IDs map to positions, in request order
	if want := []int{2, 0}; !slices.Equal(got, want) {
		t.Errorf("positions = %v, want %v", got, want)
	}
}
