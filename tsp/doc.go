// Package tsp models a single state of a Travelling Salesman local search.
//
// A State is an immutable closed circuit over a fixed set of named cities.
// The last city implicitly connects back to the first. On top of that
// representation the package provides the primitives a search driver calls
// repeatedly:
//
//   - Cost - total length of the closed cycle, computed lazily and cached.
//   - AllNeighborsSample - every tour reachable by permuting all cities but the
//     anchor (the last city), i.e. exactly (N-1)! states.
//   - RandomNeighbor - one member of that neighborhood, chosen uniformly.
//
// Neighborhood strategies:
//
//   - SampleRejection (default) - draw random permutations of the movable
//     cities and reject repeats until the whole (N-1)! space is collected.
//     Order of generation is random.
//   - Enumerate - Heap's algorithm; same set of neighbors, deterministic order.
//
// The neighborhood is exhaustive, so it is only practical for small N
// (N≲10). NeighborhoodSize reports ErrNeighborhoodTooLarge once (N-1)! no
// longer fits an int.
//
// Determinism: every State carries a random source. WithSeed/WithRand fix it;
// seed==0 maps to a fixed default seed, so the zero configuration is
// reproducible. States derived from a State (Copy, neighbors) share its
// source, which is guarded by a mutex.
//
// Errors are package-level sentinels; match them with errors.Is.
package tsp
