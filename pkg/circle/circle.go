package circle

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	"github.com/matzehuels/giftcircle/pkg/observability"
)

const (
	// MinParticipants is the smallest group that can form a gift circle.
	MinParticipants = 3

	// DefaultMaxAttempts bounds the randomized search. Distributions close
	// to the pigeonhole limit may need many attempts; small inputs need far
	// fewer.
	DefaultMaxAttempts = 500
)

// Options configures [Generate].
type Options struct {
	// UseGroups enforces that nobody gives to someone in their own group.
	UseGroups bool

	// MaxAttempts is the retry ceiling. Zero means DefaultMaxAttempts.
	MaxAttempts int

	// Seed seeds the PCG generator when Rand is nil. Zero picks a random seed.
	Seed uint64

	// Rand overrides the generator. Seed is ignored when Rand is set.
	Rand Rand

	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
}

// Result is an accepted gift circle.
type Result struct {
	// Circle holds the participants in cycle order with Recipient set.
	Circle []Participant

	// Attempts is the number of candidate paths built, including the accepted one.
	Attempts int

	// UseGroups reports whether group constraints were enforced.
	UseGroups bool

	// Seed is the seed of the generator used, or zero if Options.Rand was injected.
	Seed uint64

	// Duration is the wall time spent searching.
	Duration time.Duration
}

// Pairs returns the giver/recipient assignments in cycle order.
func (r *Result) Pairs() []Pair {
	pairs := make([]Pair, len(r.Circle))
	for i, p := range r.Circle {
		pairs[i] = Pair{Giver: p.Name, Recipient: p.Recipient}
	}
	return pairs
}

// Chain renders the circle as "A → B → C → A".
func (r *Result) Chain() string {
	if len(r.Circle) == 0 {
		return ""
	}
	names := make([]string, 0, len(r.Circle)+1)
	for _, p := range r.Circle {
		names = append(names, p.Name)
	}
	names = append(names, r.Circle[0].Name)
	return strings.Join(names, " → ")
}

// Check validates people for a draw without searching. It returns the same
// errors [Generate] returns before its first attempt.
func Check(people []Participant, useGroups bool) error {
	if len(people) < MinParticipants {
		return gcerrors.New(gcerrors.ErrCodeInsufficientParticipants,
			"you must submit at least %d people in order to form a gift circle, got %d", MinParticipants, len(people))
	}

	if dups := DuplicateNames(people); len(dups) > 0 {
		return &gcerrors.DuplicateNamesError{Names: dups}
	}

	if useGroups {
		if HasMissingGroup(people) {
			return gcerrors.New(gcerrors.ErrCodeIncompleteGroups,
				"every participant needs a group number when groups are used")
		}
		if !HasPossibleCycle(people) {
			g, _ := LargestGroup(people)
			return gcerrors.New(gcerrors.ErrCodeInfeasibleGroups,
				"no possible gift circle with this set of groups: group %d holds %d of %d participants",
				g.ID, g.Size, len(people))
		}
	}
	return nil
}

// Generate draws a gift circle from people.
//
// The input is validated with [Check], then candidate paths are built on
// fresh copies of people until one is accepted or opts.MaxAttempts is
// reached. people is never modified. The context is checked between
// attempts; cancellation returns ctx.Err().
func Generate(ctx context.Context, people []Participant, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	rng, seed := opts.Rand, opts.Seed
	if rng == nil {
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = newRand(seed)
	} else {
		seed = 0
	}

	hooks := observability.Draw()
	hooks.OnDrawStart(ctx, len(people), opts.UseGroups)
	start := time.Now()

	result, err := search(ctx, people, opts.UseGroups, maxAttempts, rng, logger)
	duration := time.Since(start)

	attempts := 0
	if result != nil {
		attempts = result.Attempts
	}
	hooks.OnDrawComplete(ctx, len(people), opts.UseGroups, attempts, duration, err)
	if err != nil {
		return nil, err
	}

	result.Seed = seed
	result.Duration = duration
	logger.Info("found valid gift circle",
		"attempts", result.Attempts,
		"groups", opts.UseGroups,
		"participants", len(result.Circle),
		"duration", duration)
	return result, nil
}

func search(ctx context.Context, people []Participant, useGroups bool, maxAttempts int, rng Rand, logger *log.Logger) (*Result, error) {
	if err := Check(people, useGroups); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var path []Participant
		var err error
		if useGroups {
			path, err = buildGroupedPath(ctx, people, rng)
		} else {
			path, err = buildUnconstrainedPath(ctx, people, rng)
		}
		if err != nil {
			return nil, err
		}

		ok := len(path) == len(people)
		if useGroups {
			ok = ok && IsValidCycle(path)
		}
		if !ok {
			logger.Debug("rejected candidate path", "attempt", attempt, "length", len(path))
			continue
		}

		AssignRecipients(path)
		return &Result{Circle: path, Attempts: attempt, UseGroups: useGroups}, nil
	}

	return nil, gcerrors.New(gcerrors.ErrCodeSearchExhausted,
		"sorry, could not find gift circle in %d attempts", maxAttempts)
}

// newRand returns a PCG generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
