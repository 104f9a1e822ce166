package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilNetwork is returned for a nil *core.Network.
	ErrNilNetwork = errors.New("bfs: network is nil")

	// ErrStartNotFound is returned when the walk starts at an undeclared valve.
	ErrStartNotFound = errors.New("bfs: start valve not found")

	// ErrOptionViolation is wrapped by every invalid Option.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStop ends a walk early when returned by an OnVisit hook. BFS then
	// returns the depths found so far and a nil error.
	ErrStop = errors.New("bfs: stop walk")
)

// Option configures a walk. Invalid values are recorded and reported by BFS.
type Option func(*Options)

// Options holds the knobs of one walk.
type Options struct {
	// Ctx is checked once per dequeued valve.
	Ctx context.Context

	// MaxDepth caps the walk at that many tunnels; 0 walks the whole
	// reachable network.
	MaxDepth int

	// OnVisit runs for every dequeued valve with its depth. ErrStop ends the
	// walk cleanly, any other error aborts it.
	OnVisit func(id string, depth int) error

	// Follow decides whether the tunnel from→to is walked.
	Follow func(from, to string) bool

	err error
}

// DefaultOptions walks everything reachable under a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
		Follow:  func(string, string) bool { return true },
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps the walk at d tunnels. d == 0 removes the cap and
// d < 0 fails with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs the per-valve hook; nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFollow installs the tunnel predicate; nil is ignored.
func WithFollow(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Follow = fn
		}
	}
}

// Result is what one walk found.
type Result struct {
	// Depth maps every discovered valve to its travel time from the start.
	// A walk stopped by ErrStop may have discovered valves it never visited.
	Depth map[string]int

	// Visited counts the valves dequeued and handed to OnVisit.
	Visited int
}
