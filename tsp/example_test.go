// Package tsp_test provides runnable, deterministic examples.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tourstate/tsp"
)

// ExampleState_Cost evaluates the perimeter of a 4×3 rectangle.
func ExampleState_Cost() {
	s, err := tsp.New([]tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 0, Y: 3},
		{Name: "C", X: 4, Y: 3},
		{Name: "D", X: 4, Y: 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	cost, _ := s.Cost()
	fmt.Println(s, cost)
	// Output:
	// [A B C D | A] 14
}

// ExampleState_AllNeighborsSample lists the (3-1)! = 2 neighbors of a
// triangle in Heap's order; C, the anchor, stays last.
func ExampleState_AllNeighborsSample() {
	s, err := tsp.New([]tsp.City{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 1, Y: 0},
		{Name: "C", X: 0, Y: 1},
	}, tsp.WithStrategy(tsp.Enumerate))
	if err != nil {
		fmt.Println(err)
		return
	}
	neighbors, _ := s.AllNeighborsSample()
	for _, n := range neighbors {
		cost, _ := n.Cost()
		fmt.Printf("%v %.4f\n", n, cost)
	}
	// Output:
	// [A B C | A] 3.4142
	// [B A C | B] 3.4142
}
