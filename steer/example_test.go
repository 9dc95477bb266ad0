package steer_test

import (
	"fmt"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/maze"
	"github.com/katalvlaran/mazeflood/steer"
)

// ExampleBest asks for the first move out of the start cell of a fresh maze.
func ExampleBest() {
	m := maze.New()
	if _, err := flood.Goal(m); err != nil {
		fmt.Println("error:", err)
		return
	}
	d, ok := steer.Best(m, maze.Start, maze.North)
	fmt.Println(d, ok)

	_, ok = steer.Best(m, m.Goal(), maze.North)
	fmt.Println("at goal:", ok)
	// Output:
	// N true
	// at goal: false
}

// ExampleRoute walks the cost gradient from the start to the goal.
func ExampleRoute() {
	m := maze.New()
	_, _ = flood.Goal(m)
	path, err := steer.Route(m, maze.Start, maze.North, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Println(steer.Turns(path, maze.North))
	// Output:
	// [0x00 0x01 0x02 0x12 0x22]
	// [ahead ahead right ahead]
}
