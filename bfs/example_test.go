package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// ExampleBFS walks a small loop of valves, printing each valve as it is
// reached and stopping once CC has been seen.
func ExampleBFS() {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB", "DD"}},
		{ID: "BB", Rate: 3, Tunnels: []string{"AA", "CC"}},
		{ID: "CC", Rate: 7, Tunnels: []string{"BB", "DD"}},
		{ID: "DD", Tunnels: []string{"CC", "AA"}},
	}, "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(n, "AA", bfs.WithOnVisit(func(id string, depth int) error {
		fmt.Println(id, depth)
		if id == "CC" {
			return bfs.ErrStop
		}
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("visited", res.Visited)
	// Output:
	// AA 0
	// BB 1
	// DD 1
	// CC 2
	// visited 4
}
