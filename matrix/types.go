// Package matrix: sentinel errors, options and the Distances type.
//
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; construction failures of the underlying walk are returned
// as produced by package bfs.
package matrix

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable marks a pair of valves with no path within the build budget.
// It is larger than any usable time budget and never negative, so
// At(i, j)+1 never overflows.
const Unreachable = math.MaxInt32

var (
	// ErrNilNetwork is returned when Build receives a nil network.
	ErrNilNetwork = errors.New("matrix: network is nil")

	// ErrBadBudget is returned for a negative build budget.
	ErrBadBudget = errors.New("matrix: budget must be non-negative")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownValve indicates a lookup by ID of a valve that is not
	// part of the matrix (zero-rate valves other than the start).
	ErrUnknownValve = errors.New("matrix: valve not in matrix")
)

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters. Invalid values are recorded and surfaced
// when Build runs.
type Options struct {
	// Ctx is forwarded to every BFS.
	Ctx context.Context

	// Budget caps BFS depth; 0 means no cap.
	Budget int

	err error
}

// DefaultOptions returns a background context and no depth cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBudget caps every BFS at b tunnels. Pairs further apart are stored as
// Unreachable: they can never be visited within b time units.
func WithBudget(b int) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w (%d)", ErrBadBudget, b)
			return
		}
		o.Budget = b
	}
}

// Distances is a dense travel-time matrix over the interesting valves.
//
// Indices [0, Valves()) are the value-bearing valves in network order. The
// start valve follows them, unless it is value-bearing itself, in which case
// Start() returns its position among them.
//
// Distances is immutable after Build and safe for concurrent reads.
type Distances struct {
	ids    []string
	index  map[string]int
	rates  []int
	valves int
	start  int
	budget int
	visits int
	data   []int // row-major, len == n*n
}
