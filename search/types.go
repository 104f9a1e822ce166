package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/metrics"
)

// Sentinel errors for the optimizers.
var (
	// ErrNilMatrix is returned when a nil *matrix.Distances is supplied.
	ErrNilMatrix = errors.New("search: distance matrix is nil")

	// ErrOptionViolation is wrapped by every invalid Options field.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceedsMatrix is returned when the search budget is larger
	// than the depth cap the matrix was built with.
	ErrBudgetExceedsMatrix = errors.New("search: budget exceeds matrix build budget")

	// ErrTooManyValves is returned when the value-bearing valve count does
	// not fit the bitmask state (or the dual subset table).
	ErrTooManyValves = errors.New("search: too many value-bearing valves")

	// ErrNoValueValves is returned in strict mode when there is nothing to open.
	ErrNoValueValves = errors.New("search: no value-bearing valves")

	// ErrUnknownValve is returned by ValuateIDs for IDs that are not
	// value-bearing valves of the matrix.
	ErrUnknownValve = errors.New("search: unknown value-bearing valve")

	// ErrRepeatedValve is returned by ValuateIDs when a sequence opens a
	// valve twice.
	ErrRepeatedValve = errors.New("search: valve repeated in sequence")
)

const (
	// MaxValves bounds the open-set bitmask.
	MaxValves = 64

	// MaxTableValves bounds the dual search, which keeps one int per subset
	// of value-bearing valves for every worker.
	MaxTableValves = 20

	// MaxBudget is the largest accepted time budget. Every larger budget
	// would reach past matrix.Unreachable.
	MaxBudget = matrix.Unreachable - 1
)

// PartitionMode selects which bipartitions the dual search scores.
type PartitionMode int

const (
	// Balanced scores splits of ⌊n/2⌋ valves against the rest.
	Balanced PartitionMode = iota

	// AllSizes scores every unordered split, including the empty one.
	AllSizes
)

// String implements fmt.Stringer.
func (m PartitionMode) String() string {
	switch m {
	case Balanced:
		return "balanced"
	case AllSizes:
		return "all"
	default:
		return fmt.Sprintf("PartitionMode(%d)", int(m))
	}
}

// ParsePartitionMode maps "balanced" or "all" to a PartitionMode.
func ParsePartitionMode(s string) (PartitionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "balanced":
		return Balanced, nil
	case "all":
		return AllSizes, nil
	default:
		return 0, fmt.Errorf("%w: unknown partition mode %q", ErrOptionViolation, s)
	}
}

// Options configures Single, Dual and Solve.
type Options struct {
	// Budget is the single agent's time budget.
	Budget int

	// Overhead is subtracted from Budget for each agent of the dual search.
	Overhead int

	// MaxVisits, if > 0, caps how many valves one agent opens.
	// 0 searches sequences of any length (exact).
	MaxVisits int

	// Workers is the fan-out width; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Partition selects the dual search's bipartitions.
	Partition PartitionMode

	// Strict turns an empty value-bearing set into ErrNoValueValves
	// instead of a zero result.
	Strict bool

	// Metrics, if non-nil, receives search counters.
	Metrics *metrics.Collector

	// Logger, if non-nil, receives debug events.
	Logger *slog.Logger
}

// DefaultOptions returns a 30-unit budget, a 4-unit dual overhead,
// balanced bipartitions and an exact single-agent search.
func DefaultOptions() Options {
	return Options{
		Budget:    30,
		Overhead:  4,
		Partition: Balanced,
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result holds both optima.
type Result struct {
	// Single is the best pressure one agent releases within Budget.
	Single int

	// Dual is the best combined pressure of two agents with
	// Budget-Overhead each.
	Dual int
}
