package circle

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// firstRand always picks the first candidate.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

// lastRand always picks the last candidate.
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

func family() []Participant {
	return []Participant{
		New("Father", 1),
		New("Mother", 1),
		New("Son", 2),
		New("Daughter", 2),
	}
}

func TestMoveAt(t *testing.T) {
	from := []Participant{New("A", 1), New("B", 2), New("C", 3)}
	var to []Participant

	moveAt(&from, &to, 1)

	if want := []Participant{New("A", 1), New("C", 3)}; !slices.Equal(from, want) {
		t.Errorf("from = %v, want %v", from, want)
	}
	if want := []Participant{New("B", 2)}; !slices.Equal(to, want) {
		t.Errorf("to = %v, want %v", to, want)
	}
}

func TestNth(t *testing.T) {
	people := []Participant{New("A", 1), New("B", 2), New("C", 1), New("D", 2)}
	inGroup2 := func(p Participant) bool { return p.Group == 2 }

	tests := []struct {
		k    int
		want int
	}{
		{0, 1},
		{1, 3},
		{2, -1},
	}
	for _, tt := range tests {
		if got := nth(people, tt.k, inGroup2); got != tt.want {
			t.Errorf("nth(k=%d) = %d, want %d", tt.k, got, tt.want)
		}
	}
}

func TestBuildGroupedPathDeterministic(t *testing.T) {
	got := names(BuildGroupedPath(family(), firstRand{}))
	want := []string{"Father", "Son", "Mother", "Daughter"}
	if !slices.Equal(got, want) {
		t.Errorf("BuildGroupedPath() = %v, want %v", got, want)
	}
}

func TestBuildGroupedPathForcesLargestGroup(t *testing.T) {
	// Group 1 holds exactly half; once anyone else starts, every second
	// pick must come from group 1.
	people := []Participant{
		New("A", 1), New("B", 1), New("C", 1),
		New("D", 2), New("E", 3), New("F", 4),
	}
	path := BuildGroupedPath(people, lastRand{})
	if len(path) != len(people) {
		t.Fatalf("len(path) = %d, want %d", len(path), len(people))
	}
	if !NoConsecutiveGroups(path) {
		t.Errorf("path has consecutive groups: %v", names(path))
	}
}

func TestBuildGroupedPathInteriorInvariant(t *testing.T) {
	inputs := [][]Participant{
		family(),
		{New("A", 1), New("B", 2), New("C", 3)},
		{New("A", 1), New("B", 1), New("C", 2), New("D", 3), New("E", 3)},
		{New("A", 0), New("B", 0), New("C", 0), New("D", 1), New("E", 1), New("F", 1)},
		{New("A", 1), New("B", 1), New("C", 1), New("D", 2), New("E", 2), New("F", 3), New("G", 4), New("H", 4)},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		for _, people := range inputs {
			path := BuildGroupedPath(people, rng)
			if len(path) != len(people) {
				t.Fatalf("seed %d: len(path) = %d, want %d", seed, len(path), len(people))
			}
			if !NoConsecutiveGroups(path) {
				t.Errorf("seed %d: consecutive groups in %v", seed, names(path))
			}
			if !sameMembers(path, people) {
				t.Errorf("seed %d: path %v is not a permutation of %v", seed, names(path), names(people))
			}
		}
	}
}

func TestBuildGroupedPathStopsWithoutCandidates(t *testing.T) {
	// Infeasible input: group 1 runs out of partners.
	people := []Participant{New("A", 1), New("B", 1), New("C", 1), New("D", 2)}
	path := BuildGroupedPath(people, lastRand{})
	if len(path) >= len(people) {
		t.Errorf("len(path) = %d, want a partial path", len(path))
	}
}

func TestBuildGroupedPathDoesNotModifyPool(t *testing.T) {
	pool := family()
	before := slices.Clone(pool)
	_ = BuildGroupedPath(pool, firstRand{})
	if !slices.Equal(pool, before) {
		t.Errorf("pool modified: %v -> %v", before, pool)
	}
}

// recountPath builds a grouped path by recounting the pool at every step.
func recountPath(pool []Participant, rng Rand) []Participant {
	available := slices.Clone(pool)
	var path []Participant
	prev := NoGroup
	for len(available) > 0 {
		largest, err := LargestGroupExcluding(available, prev)
		if err != nil {
			return path
		}
		var candidates []int
		for i, p := range available {
			if (2*largest.Size > len(available) && p.Group == largest.ID) ||
				(2*largest.Size <= len(available) && p.Group != prev) {
				candidates = append(candidates, i)
			}
		}
		i := candidates[rng.IntN(len(candidates))]
		prev = available[i].Group
		moveAt(&available, &path, i)
	}
	return path
}

func TestBuildGroupedPathMatchesRecount(t *testing.T) {
	people := []Participant{
		New("A", 1), New("B", 1), New("C", 1), New("D", 2), New("E", 2),
		New("F", 3), New("G", 4), New("H", 4), New("I", 5), New("J", 1),
	}
	for seed := uint64(1); seed <= 100; seed++ {
		got := BuildGroupedPath(people, rand.New(rand.NewPCG(seed, 7)))
		want := recountPath(people, rand.New(rand.NewPCG(seed, 7)))
		if !slices.Equal(got, want) {
			t.Fatalf("seed %d: BuildGroupedPath() = %v, want %v", seed, names(got), names(want))
		}
	}
}

// cancelRand cancels its context on the first draw and then picks the first
// candidate.
type cancelRand struct{ cancel context.CancelFunc }

func (r cancelRand) IntN(int) int {
	r.cancel()
	return 0
}

func TestBuildPathStopsOnCancel(t *testing.T) {
	builders := map[string]func(context.Context, []Participant, Rand) ([]Participant, error){
		"grouped":       buildGroupedPath,
		"unconstrained": buildUnconstrainedPath,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			path, err := build(ctx, family(), cancelRand{cancel})
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("error = %v, want context.Canceled", err)
			}
			if len(path) != 1 {
				t.Errorf("len(path) = %d, want 1 (stopped after the first step)", len(path))
			}
		})
	}
}

func TestBuildUnconstrainedPath(t *testing.T) {
	people := []Participant{
		NewNoGroup("Father"),
		NewNoGroup("Mother"),
		NewNoGroup("Son"),
		NewNoGroup("Daughter"),
	}
	before := slices.Clone(people)

	got := names(BuildUnconstrainedPath(people, lastRand{}))
	want := []string{"Daughter", "Son", "Mother", "Father"}
	if !slices.Equal(got, want) {
		t.Errorf("BuildUnconstrainedPath() = %v, want %v", got, want)
	}
	if !slices.Equal(people, before) {
		t.Error("BuildUnconstrainedPath() modified its input")
	}
}

func TestAssignRecipients(t *testing.T) {
	people := []Participant{
		New("Father", 1),
		New("Mother", 2),
		New("Son", 1),
		New("Daughter", 3),
	}
	AssignRecipients(people)

	want := []string{"Mother", "Son", "Daughter", "Father"}
	for i, p := range people {
		if p.Recipient != want[i] {
			t.Errorf("%s.Recipient = %q, want %q", p.Name, p.Recipient, want[i])
		}
	}
}
