package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/search"
)

// ExampleSolve solves the ten-valve reference network: one agent with 30
// minutes, then two agents with 26 minutes each.
func ExampleSolve() {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Rate: 0, Tunnels: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Tunnels: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Tunnels: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Tunnels: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Tunnels: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Tunnels: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Tunnels: []string{"GG"}},
		{ID: "II", Rate: 0, Tunnels: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Tunnels: []string{"II"}},
	}, "AA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, err := matrix.Build(n, matrix.WithBudget(30))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.Solve(context.Background(), d, search.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Single, res.Dual)
	// Output:
	// 1651 1707
}

// ExampleValuate scores one fixed visiting order.
func ExampleValuate() {
	n, _ := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 10, Tunnels: []string{"AA"}},
	}, "AA")
	d, _ := matrix.Build(n)

	fmt.Println(search.Valuate(d, []int{0}, 5))
	// Output:
	// 30
}
