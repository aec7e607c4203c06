package tsp_test

import (
	"math"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourstate/tsp"
)

func TestEuclideanDistance(t *testing.T) {
	require.Equal(t, 5.0, tsp.EuclideanDistance(orb.Point{0, 0}, orb.Point{3, 4}))
	require.Equal(t, 0.0, tsp.EuclideanDistance(orb.Point{7, -2}, orb.Point{7, -2}))
	require.InDelta(t, math.Sqrt2, tsp.EuclideanDistance(orb.Point{1, 0}, orb.Point{0, 1}), 1e-15)
}

func TestCost_RectanglePerimeter(t *testing.T) {
	s := mustState(t, rectangle())

	cost, err := s.Cost()
	require.NoError(t, err)
	require.Equal(t, 14.0, cost)
}

func TestCost_SingleCityIsZero(t *testing.T) {
	s := mustState(t, []tsp.City{{Name: "A", X: 5, Y: 5}})

	cost, err := s.Cost()
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestCost_TinyLegIsNotZero(t *testing.T) {
	cases := []struct {
		name string
		x    float64
	}{
		{"sub-nanometre leg", 1e-10},
		{"many significant digits", 0.12345678901234},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustState(t, []tsp.City{{Name: "A", X: 0, Y: 0}, {Name: "B", X: tc.x, Y: 0}})

			legs, err := s.Legs()
			require.NoError(t, err)
			require.Len(t, legs, 2)
			require.InDelta(t, tc.x, legs[0], tc.x*1e-15)

			cost, err := s.Cost()
			require.NoError(t, err)
			require.Greater(t, cost, 0.0)
			require.Equal(t, legs[0]+legs[1], cost)
		})
	}
}

func TestCost_EmptyTour_ErrInvalidState(t *testing.T) {
	t.Run("New(nil)", func(t *testing.T) {
		s := mustState(t, nil)
		_, err := s.Cost()
		require.ErrorIs(t, err, tsp.ErrInvalidState)
	})

	t.Run("zero value", func(t *testing.T) {
		var s tsp.State
		_, err := s.Cost()
		require.ErrorIs(t, err, tsp.ErrInvalidState)

		_, err = s.Legs()
		require.ErrorIs(t, err, tsp.ErrInvalidState)
	})
}

func TestCost_Memoized(t *testing.T) {
	s := mustState(t, scatter(7, 3))

	first, err := s.Cost()
	require.NoError(t, err)
	second, err := s.Cost()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCost_ConcurrentReaders(t *testing.T) {
	s := mustState(t, scatter(9, 5))

	const readers = 16
	var (
		wg    sync.WaitGroup
		costs = make([]float64, readers)
		errs  = make([]error, readers)
	)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			costs[i], errs[i] = s.Cost()
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, costs[0], costs[i])
	}
}

func TestCost_PositiveForMoreThanOneCity(t *testing.T) {
	for n := 2; n <= 8; n++ {
		s := mustState(t, scatter(n, int64(n)))
		cost, err := s.Cost()
		require.NoError(t, err)
		require.Greater(t, cost, 0.0, "n=%d", n)
	}
}

func TestCost_InvariantUnderRotation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 11} {
		cities := scatter(n, int64(100+n))
		base, err := mustState(t, cities).Cost()
		require.NoError(t, err)

		for k := 0; k < n; k++ {
			got, err := mustState(t, rotate(cities, k)).Cost()
			require.NoError(t, err)
			require.InDelta(t, base, got, 1e-9, "n=%d rotation=%d", n, k)
		}
	}
}

func TestLegs_ClosedCycle(t *testing.T) {
	s := mustState(t, rectangle())

	legs, err := s.Legs()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 3, 4}, legs)
}

func TestCost_CopyRecomputes(t *testing.T) {
	s := mustState(t, rectangle(), tsp.WithSeed(seedAlt))
	_, err := s.Cost()
	require.NoError(t, err)

	Repeat(t, 5, func(t *testing.T) {
		c := s.Copy(true)
		legs, err := c.Legs()
		require.NoError(t, err)
		cost, err := c.Cost()
		require.NoError(t, err)

		var sum float64
		for _, l := range legs {
			sum += l
		}
		require.InDelta(t, sum, cost, 1e-9)
	})
}
