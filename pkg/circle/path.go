package circle

import (
	"context"
	"slices"
)

// Rand is the source of randomness used by the path builders.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// BuildGroupedPath orders pool so that no two consecutive participants share
// a group, choosing at random among the legal candidates at each step.
//
// While the largest group other than the previous one holds more than half
// of the remaining pool, the next participant is forced to come from it;
// otherwise it may be anyone not in the previous group. This front-loads the
// majority group before it becomes impossible to place.
//
// The wrap-around edge is not considered; check the result with
// [IsValidCycle]. If a step has no legal candidate the partial path built so
// far is returned, which is always shorter than pool. pool is not modified.
func BuildGroupedPath(pool []Participant, rng Rand) []Participant {
	path, _ := buildGroupedPath(context.Background(), pool, rng)
	return path
}

// buildGroupedPath is BuildGroupedPath with cancellation checked before
// every step. Group sizes are kept as running counts so each step costs one
// scan of the remaining pool.
func buildGroupedPath(ctx context.Context, pool []Participant, rng Rand) ([]Participant, error) {
	available := slices.Clone(pool)
	path := make([]Participant, 0, len(pool))
	counts := CountGroups(available)
	prev := NoGroup

	for len(available) > 0 {
		if err := ctx.Err(); err != nil {
			return path, err
		}

		largest, ok := largestOther(counts, prev)
		if !ok {
			// Everyone left is in the previous group.
			return path, nil
		}

		var keep func(Participant) bool
		var n int
		if 2*largest.Size > len(available) {
			keep = func(p Participant) bool { return p.Group == largest.ID }
			n = largest.Size
		} else {
			keep = func(p Participant) bool { return p.Group != prev }
			n = len(available) - counts[prev]
		}

		i := nth(available, rng.IntN(n), keep)
		choice := available[i]
		moveAt(&available, &path, i)
		if counts[choice.Group]--; counts[choice.Group] == 0 {
			delete(counts, choice.Group)
		}
		prev = choice.Group
	}
	return path, nil
}

// BuildUnconstrainedPath returns pool in a uniformly random order.
// pool is not modified.
func BuildUnconstrainedPath(pool []Participant, rng Rand) []Participant {
	path, _ := buildUnconstrainedPath(context.Background(), pool, rng)
	return path
}

func buildUnconstrainedPath(ctx context.Context, pool []Participant, rng Rand) ([]Participant, error) {
	available := slices.Clone(pool)
	path := make([]Participant, 0, len(pool))
	for len(available) > 0 {
		if err := ctx.Err(); err != nil {
			return path, err
		}
		moveAt(&available, &path, rng.IntN(len(available)))
	}
	return path, nil
}

// nth returns the index in people of the k-th participant (counting from
// zero) for which keep reports true, or -1.
func nth(people []Participant, k int, keep func(Participant) bool) int {
	for i, p := range people {
		if !keep(p) {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}
	return -1
}

// moveAt removes the participant at index i of *from, keeping the order of
// the rest, and appends it to *to.
func moveAt(from, to *[]Participant, i int) {
	*to = append(*to, (*from)[i])
	*from = slices.Delete(*from, i, i+1)
}
