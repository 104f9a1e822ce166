package matrix_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/internal/testutil"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/stretchr/testify/require"
)

func TestBuild_Sample(t *testing.T) {
	d, err := matrix.Build(testutil.SampleNetwork(t), matrix.WithBudget(30))
	require.NoError(t, err)

	require.Equal(t, 7, d.Len())
	require.Equal(t, 6, d.Valves())
	require.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, d.ValveIDs())
	require.Equal(t, 6, d.Start())
	require.Equal(t, 30, d.Budget())

	start, err := d.ID(d.Start())
	require.NoError(t, err)
	require.Equal(t, "AA", start)

	cases := []struct {
		from, to string
		want     int
	}{
		{"AA", "DD", 1},
		{"AA", "JJ", 2},
		{"AA", "HH", 5},
		{"BB", "HH", 6},
		{"JJ", "HH", 7},
		{"CC", "EE", 2},
		{"HH", "HH", 0},
	}
	for _, tc := range cases {
		got, err := d.Lookup(tc.from, tc.to)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}

	require.Equal(t, 20, d.Rate(2))
	require.Equal(t, 0, d.Rate(d.Start()))
}

// TestBuild_Invariants checks a zero diagonal, non-negative entries and
// symmetry tracking the tunnel structure.
func TestBuild_Invariants(t *testing.T) {
	for name, n := range map[string]*core.Network{
		"sample":  testutil.SampleNetwork(t),
		"one-way": testutil.OneWayNetwork(t),
	} {
		t.Run(name, func(t *testing.T) {
			d, err := matrix.Build(n)
			require.NoError(t, err)
			for i := 0; i < d.Len(); i++ {
				require.Zero(t, d.At(i, i))
				for j := 0; j < d.Len(); j++ {
					require.GreaterOrEqual(t, d.At(i, j), 0)
				}
			}
			require.Equal(t, n.Bidirectional(), d.Symmetric())
		})
	}

	d, err := matrix.Build(testutil.OneWayNetwork(t))
	require.NoError(t, err)
	ab, _ := d.Lookup("AA", "BB")
	ba, _ := d.Lookup("BB", "AA")
	require.Equal(t, 1, ab)
	require.Equal(t, 2, ba)
}

func TestBuild_BudgetCap(t *testing.T) {
	d, err := matrix.Build(testutil.SampleNetwork(t), matrix.WithBudget(4))
	require.NoError(t, err)

	got, err := d.Lookup("AA", "HH")
	require.NoError(t, err)
	require.Equal(t, matrix.Unreachable, got)

	got, err = d.Lookup("AA", "EE")
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestBuild_StartIsValueBearing(t *testing.T) {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Rate: 5, Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 3, Tunnels: []string{"AA"}},
	}, "AA")
	require.NoError(t, err)

	d, err := matrix.Build(n)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	require.Equal(t, 2, d.Valves())
	require.Equal(t, 0, d.Start())
}

func TestBuild_IsolatedValve(t *testing.T) {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 3, Tunnels: []string{"AA"}},
		{ID: "CC", Rate: 4},
	}, "AA")
	require.NoError(t, err)

	d, err := matrix.Build(n)
	require.NoError(t, err)
	for _, pair := range [][2]string{{"AA", "CC"}, {"CC", "AA"}, {"BB", "CC"}} {
		got, err := d.Lookup(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, matrix.Unreachable, got)
	}
}

// TestBuild_SkipsDeadEndsAndStopsEarly checks that walks skip zero-rate
// rooms leading only back, and end once every interesting valve is reached.
func TestBuild_SkipsDeadEndsAndStopsEarly(t *testing.T) {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB", "CC", "DD"}},
		{ID: "BB", Rate: 5, Tunnels: []string{"AA"}},
		{ID: "CC", Tunnels: []string{"AA"}},
		{ID: "DD", Tunnels: []string{"AA", "EE"}},
		{ID: "EE", Rate: 4, Tunnels: []string{"DD"}},
	}, "AA")
	require.NoError(t, err)

	d, err := matrix.Build(n)
	require.NoError(t, err)
	// Three walks of four valves each; CC is never entered.
	require.Equal(t, 12, d.Visits())

	for _, tc := range []struct {
		from, to string
		want     int
	}{
		{"AA", "EE", 2},
		{"BB", "EE", 3},
		{"EE", "BB", 3},
	} {
		got, err := d.Lookup(tc.from, tc.to)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

// TestBuild_OneWayDeadEndStillTransits covers a room whose only exit is
// AA: it is still walked through when entered from elsewhere.
func TestBuild_OneWayDeadEndStillTransits(t *testing.T) {
	n, err := core.NewNetwork([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Rate: 3, Tunnels: []string{"DD"}},
		{ID: "DD", Tunnels: []string{"CC"}},
		{ID: "CC", Tunnels: []string{"AA"}},
	}, "AA")
	require.NoError(t, err)

	d, err := matrix.Build(n)
	require.NoError(t, err)
	got, err := d.Lookup("BB", "AA")
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestBuild_NoValueBearing(t *testing.T) {
	n, err := core.NewNetwork([]core.Valve{{ID: "AA"}}, "AA")
	require.NoError(t, err)

	d, err := matrix.Build(n)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	require.Zero(t, d.Valves())
	require.Empty(t, d.ValveIDs())
}

func TestBuild_Errors(t *testing.T) {
	_, err := matrix.Build(nil)
	require.ErrorIs(t, err, matrix.ErrNilNetwork)

	_, err = matrix.Build(testutil.SampleNetwork(t), matrix.WithBudget(-1))
	require.ErrorIs(t, err, matrix.ErrBadBudget)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = matrix.Build(testutil.SampleNetwork(t), matrix.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	d, err := matrix.Build(testutil.SampleNetwork(t))
	require.NoError(t, err)
	_, err = d.Lookup("FF", "AA")
	require.ErrorIs(t, err, matrix.ErrUnknownValve)
	_, err = d.ID(99)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
