// Package circle builds gift circles: a single cycle through every
// participant in which each person gives one gift to the next person and the
// last person gives to the first.
//
// # Overview
//
// A gift circle is a Hamiltonian cycle over the participants. Without groups
// any permutation works. With groups (households, teams, families) nobody may
// give to someone from their own group, so consecutive participants in the
// cycle must belong to different groups, including the wrap-around edge from
// the last participant back to the first.
//
// # Algorithm
//
// [Generate] runs a bounded randomized search rather than exhaustive
// backtracking:
//
//  1. Reject inputs with fewer than three people, duplicate names, missing
//     groups (group mode) or a group holding more than half of everyone
//     ([HasPossibleCycle]).
//  2. Build a candidate path with [BuildGroupedPath]. At each step the
//     largest group other than the previous one is checked against the
//     pigeonhole bound: if it holds more than half of the remaining pool the
//     next pick must come from it, otherwise any legal participant is picked
//     uniformly at random.
//  3. Accept the path when [IsValidCycle] holds. Interior adjacencies are
//     valid by construction; the first/last edge is not, so some attempts
//     are rejected and retried on a fresh copy of the input.
//  4. Annotate each participant with the name of the next one
//     ([AssignRecipients]).
//
// The search gives up after [Options.MaxAttempts] attempts (default
// [DefaultMaxAttempts]). Outcomes are random, so a fresh call may succeed
// where a previous one was exhausted. The context passed to [Generate] is
// checked before every step of every attempt, so cancellation is honoured
// even while a large pool is being ordered.
//
// # Randomness
//
// Every builder takes a [Rand]. [Generate] seeds a PCG generator from
// [Options.Seed] when no generator is injected, and reports the seed in
// [Result.Seed], so equal seeds over equal inputs produce equal circles.
//
// # Concurrency
//
// The package holds no global state. All functions are safe to call
// concurrently as long as each call gets its own [Rand]; *rand.Rand from
// math/rand/v2 is not safe for concurrent use.
package circle
