// Package testutil holds shared fixtures for valvenet tests.
package testutil

import (
	"testing"

	"github.com/katalvlaran/valvenet/core"
	"github.com/stretchr/testify/require"
)

// SampleInput is the ten-valve reference network in puzzle text form.
// Single-agent optimum over 30 minutes is 1651; two agents with 26 minutes
// each reach 1707.
const SampleInput = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// SampleValves returns the valves of SampleInput.
func SampleValves() []core.Valve {
	return []core.Valve{
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
	}
}

// SampleNetwork builds SampleValves starting at AA.
func SampleNetwork(t testing.TB) *core.Network {
	t.Helper()
	n, err := core.NewNetwork(SampleValves(), "AA")
	require.NoError(t, err)

	return n
}

// SingleValveNetwork is AA(0) <-> BB(rate), one tunnel apart.
func SingleValveNetwork(t testing.TB, rate int) *core.Network {
	t.Helper()
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: rate, Tunnels: []string{"AA"}},
	}, "AA")
	require.NoError(t, err)

	return n
}

// OneWayNetwork is a directed ring AA -> BB -> CC -> AA.
func OneWayNetwork(t testing.TB) *core.Network {
	t.Helper()
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 5, Tunnels: []string{"CC"}},
		{ID: "CC", Rate: 7, Tunnels: []string{"AA"}},
	}, "AA")
	require.NoError(t, err)

	return n
}
