package dashboard

import (
	"slices"

	"github.com/google/uuid"

	"github.com/smileynet/rolodex/internal/contact"
)

// resolvePositions maps IDs to their current store positions, skipping
// IDs that are no longer present.
func resolvePositions(s *contact.Store, ids []uuid.UUID) []int {
	positions := make([]int, 0, len(ids))
	for _, id := range ids {
		if i := s.Index(id); i >= 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// deletePositions removes a batch of positions from the store. Positions are
// deduplicated and removed highest first so earlier removals never shift a
// pending index. The request order does not matter. Returns the number removed.
func deletePositions(s *contact.Store, positions []int) int {
	sorted := slices.Clone(positions)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, p := range slices.Backward(sorted) {
		s.Remove(p)
	}
	return len(sorted)
}
