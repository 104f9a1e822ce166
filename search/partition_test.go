package search_test

import (
	"testing"

	"github.com/katalvlaran/valvenet/search"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// TestPartitions_Complete checks that every split is disjoint and exhaustive,
// that no split repeats, and that the counts match the enumeration rule.
func TestPartitions_Complete(t *testing.T) {
	for k := 0; k <= 10; k++ {
		full := uint64(1)<<uint(k) - 1
		for _, mode := range []search.PartitionMode{search.Balanced, search.AllSizes} {
			parts, err := search.Partitions(k, mode)
			require.NoError(t, err)

			seen := make(map[search.Bipartition]bool, len(parts))
			for _, p := range parts {
				require.Zero(t, p.Left&p.Right, "k=%d %s: overlap in %+v", k, mode, p)
				require.Equal(t, full, p.Left|p.Right, "k=%d %s: not exhaustive %+v", k, mode, p)
				require.False(t, seen[p], "k=%d %s: repeated %+v", k, mode, p)
				seen[p] = true
			}

			switch mode {
			case search.Balanced:
				require.Len(t, parts, combin.Binomial(k, k/2))
			case search.AllSizes:
				want := 1
				if k > 0 {
					want = 1 << uint(k-1)
				}
				require.Len(t, parts, want)
			}
		}
	}
}

func TestPartitions_BalancedSizes(t *testing.T) {
	parts, err := search.Partitions(5, search.Balanced)
	require.NoError(t, err)
	for _, p := range parts {
		require.Equal(t, 2, popcount(p.Left))
		require.Equal(t, 3, popcount(p.Right))
	}
}

func TestPartitions_Errors(t *testing.T) {
	_, err := search.Partitions(-1, search.Balanced)
	require.ErrorIs(t, err, search.ErrTooManyValves)
	_, err = search.Partitions(search.MaxTableValves+1, search.AllSizes)
	require.ErrorIs(t, err, search.ErrTooManyValves)
	_, err = search.Partitions(3, search.PartitionMode(5))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func popcount(m uint64) int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}
