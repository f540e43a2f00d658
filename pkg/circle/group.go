package circle

import (
	"errors"
	"maps"
	"slices"
)

// ErrEmptyPool is returned when the largest group of an empty set of
// participants is requested.
var ErrEmptyPool = errors.New("no participants to count")

// Group describes how many participants belong to one group.
type Group struct {
	ID   GroupID
	Size int
}

// CountGroups returns the number of participants in each group.
func CountGroups(people []Participant) map[GroupID]int {
	counts := make(map[GroupID]int)
	for _, p := range people {
		counts[p.Group]++
	}
	return counts
}

// LargestGroup returns the group with the most participants.
// Ties go to the smallest group id.
func LargestGroup(people []Participant) (Group, error) {
	return largest(CountGroups(people))
}

// LargestGroupExcluding returns the largest group after dropping every
// participant in excluded. Ties go to the smallest group id.
func LargestGroupExcluding(people []Participant, excluded GroupID) (Group, error) {
	g, ok := largestOther(CountGroups(people), excluded)
	if !ok {
		return g, ErrEmptyPool
	}
	return g, nil
}

func largest(counts map[GroupID]int) (Group, error) {
	if len(counts) == 0 {
		return Group{ID: NoGroup}, ErrEmptyPool
	}
	best := Group{ID: NoGroup}
	for _, id := range slices.Sorted(maps.Keys(counts)) {
		if counts[id] > best.Size {
			best = Group{ID: id, Size: counts[id]}
		}
	}
	return best, nil
}

// largestOther returns the largest non-empty group in counts other than
// excluded. Ties go to the smallest group id. ok is false when no such group
// exists.
func largestOther(counts map[GroupID]int, excluded GroupID) (g Group, ok bool) {
	g = Group{ID: NoGroup}
	for id, n := range counts {
		if id == excluded || n <= 0 {
			continue
		}
		if !ok || n > g.Size || (n == g.Size && id < g.ID) {
			g, ok = Group{ID: id, Size: n}, true
		}
	}
	return g, ok
}

// HasPossibleCycle reports whether a cycle with no two adjacent participants
// from the same group can exist: no group may hold more than half of
// everyone. It is a necessary condition, checked before any attempt.
func HasPossibleCycle(people []Participant) bool {
	g, err := LargestGroup(people)
	if err != nil {
		return false
	}
	return 2*g.Size <= len(people)
}

// HasMissingGroup reports whether any participant has no group assigned.
func HasMissingGroup(people []Participant) bool {
	return slices.ContainsFunc(people, func(p Participant) bool { return !p.HasGroup() })
}

// DuplicateNames returns every name that appears more than once, each
// reported once and sorted.
func DuplicateNames(people []Participant) []string {
	seen := make(map[string]int, len(people))
	for _, p := range people {
		seen[p.Name]++
	}
	var dups []string
	for name, n := range seen {
		if n > 1 {
			dups = append(dups, name)
		}
	}
	slices.Sort(dups)
	return dups
}
