// Package valvenet finds how much pressure one or two agents can release from
// a network of valves and tunnels within a time budget.
//
// Every tunnel takes one time unit to walk and opening a valve takes one
// more; an open valve releases its rate for every remaining unit. Agents
// start at a fixed valve and only value-bearing valves are worth opening.
//
// What lives where:
//
//	core/         Valve and the immutable, validated Network
//	bfs/          unit-weight breadth-first search over a Network
//	matrix/       travel times between the start and every value-bearing valve
//	search/       single-agent optimum, two-agent optimum over bipartitions
//	input/        the "Valve AA has flow rate=0; ..." text form, both ways
//	builder/      deterministic generated networks (rings, grids, random chords)
//	config/       YAML/TOML run settings
//	metrics/      Prometheus collectors for search effort and results
//	cmd/valvenet  the command-line entry point
//
// Quick start:
//
//	n, _ := input.ParseFile("valves.txt", input.DefaultStart)
//	d, _ := matrix.Build(n, matrix.WithBudget(30))
//	res, _ := search.Solve(ctx, d, search.DefaultOptions())
//	fmt.Println(res.Single, res.Dual)
package valvenet
