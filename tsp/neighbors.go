// Package tsp - neighborhood generation.
//
// A neighbor keeps the anchor (the last city of the current path) in the last
// position and visits the other N-1 cities in any order. Fixing the anchor
// keeps rotations of one cycle from counting as distinct neighbors, so the
// neighborhood has exactly (N-1)! members, the current tour included.
package tsp

import (
	"fmt"
	"math"
)

// maxMovable is the largest k with k! representable in int.
var maxMovable = func() int {
	var k int
	for k = 1; ; k++ {
		if _, ok := factorial(k + 1); !ok {
			return k
		}
	}
}()

// factorial returns k! and false when it overflows int.
//
// Complexity: O(k).
func factorial(k int) (int, bool) {
	var f = 1

	var i int
	for i = 2; i <= k; i++ {
		if f > math.MaxInt/i {
			return 0, false
		}
		f *= i
	}
	return f, true
}

// NeighborhoodSize returns (N-1)!, the number of states AllNeighborsSample
// produces.
//
// Errors: ErrInvalidState for an empty tour, ErrNeighborhoodTooLarge when
// (N-1)! overflows int.
func (s *State) NeighborhoodSize() (int, error) {
	var n = len(s.path)
	if n == 0 {
		return 0, errEmptyTour("neighborhood")
	}
	size, ok := factorial(n - 1)
	if !ok {
		return 0, fmt.Errorf("%d movable cities (max %d): %w", n-1, maxMovable, ErrNeighborhoodTooLarge)
	}
	return size, nil
}

// AllNeighborsSample returns every state obtained by permuting all cities
// except the anchor, which stays last. The result has NeighborhoodSize()
// elements in order of generation, with no duplicate paths.
//
// With SampleRejection the permutations are random draws with repeats
// rejected, so the order differs from call to call (but is reproducible under
// a fixed seed). With Enumerate the order is Heap's order.
//
// Complexity: O((N-1)!·N) states built; SampleRejection additionally needs
// about (N-1)!·H((N-1)!) draws on average (coupon collector).
func (s *State) AllNeighborsSample() ([]*State, error) {
	size, err := s.NeighborhoodSize()
	if err != nil {
		return nil, err
	}

	var (
		n       = len(s.path)
		cfg     = s.config()
		names   = s.Names()
		movable = names[:n-1]
		anchor  = names[n-1]
		coords  = s.lookup()
		perms   [][]int
	)
	switch cfg.strategy {
	case Enumerate:
		perms = enumeratePermutations(len(movable))
	default:
		perms = samplePermutations(len(movable), size, cfg.rng)
	}

	out := make([]*State, 0, len(perms))

	var (
		perm []int
		path []City
		i    int
	)
	for _, perm = range perms {
		path = make([]City, n)
		for i = range perm {
			path[i] = coords[movable[perm[i]]]
		}
		path[n-1] = coords[anchor]
		out = append(out, &State{path: path, cfg: cfg})
	}
	return out, nil
}

// RandomNeighbor builds the full neighborhood and returns one member chosen
// uniformly at random.
//
// Errors: as AllNeighborsSample.
func (s *State) RandomNeighbor() (*State, error) {
	neighbors, err := s.AllNeighborsSample()
	if err != nil {
		return nil, err
	}
	return neighbors[s.config().rng.Intn(len(neighbors))], nil
}

// samplePermutations draws uniform permutations of 0..m-1, discarding those
// already seen, until want distinct ones are collected. want must be m!.
// Indices fit a byte because m ≤ maxMovable, so a permutation's key is the
// string of its bytes.
//
// Terminates with probability 1; the number of draws is unbounded in the
// worst case.
func samplePermutations(m, want int, l *lockedRand) [][]int {
	seen := make(map[string]struct{}, want)
	out := make([][]int, 0, want)
	key := make([]byte, m)

	var (
		p  []int
		i  int
		ok bool
	)
	for len(out) < want {
		p = permRange(m, l)
		for i = range p {
			key[i] = byte(p[i])
		}
		if _, ok = seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		out = append(out, p)
	}
	return out
}

// enumeratePermutations lists all m! permutations of 0..m-1 with the
// iterative form of Heap's algorithm. m==0 yields the single empty
// permutation.
//
// Complexity: O(m!·m) time and space.
func enumeratePermutations(m int) [][]int {
	a := identity(m)
	c := make([]int, m)
	out := [][]int{clonePerm(a)}

	var i = 1
	for i < m {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			out = append(out, clonePerm(a))
			c[i]++
			i = 1
			continue
		}
		c[i] = 0
		i++
	}
	return out
}

func clonePerm(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}
