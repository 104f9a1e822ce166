package metrics_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/valvenet/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.AddStates(metrics.VariantSingle, 10)
	c.AddStates(metrics.VariantSingle, 5)
	c.AddStates(metrics.VariantDual, 0)
	c.AddPartitions(20)
	c.AddMatrixVisits(12)
	c.ObserveSearch(metrics.VariantDual, 3*time.Millisecond, 1707)

	require.Equal(t, 15.0, testutil.ToFloat64(c.StatesExpanded.WithLabelValues(metrics.VariantSingle)))
	require.Equal(t, 20.0, testutil.ToFloat64(c.PartitionsScored))
	require.Equal(t, 12.0, testutil.ToFloat64(c.MatrixVisits))
	require.Equal(t, 1707.0, testutil.ToFloat64(c.BestPressure.WithLabelValues(metrics.VariantDual)))
	require.Equal(t, 1, testutil.CollectAndCount(c.SearchDuration))
}

func TestCollector_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector
	require.NotPanics(t, func() {
		c.AddStates(metrics.VariantSingle, 1)
		c.AddPartitions(1)
		c.AddMatrixVisits(1)
		c.ObserveSearch(metrics.VariantSingle, time.Second, 1)
	})
}
