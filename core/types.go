// Package core defines the Valve and Network types that every other
// valvenet package consumes, together with the sentinel errors raised
// while building and querying a network.
//
// A Network is immutable after NewNetwork returns, so all read methods are
// safe for concurrent use without locking.
//
// Errors:
//
//	ErrMalformedGraph  - umbrella for every structural defect found by NewNetwork.
//	ErrEmptyValveID    - a valve has an empty ID.
//	ErrDuplicateValve  - two valves share an ID.
//	ErrUnknownTunnel   - a tunnel points at a valve that does not exist.
//	ErrStartNotFound   - the start valve is absent.
//	ErrNegativeRate    - a valve has a negative flow rate.
//	ErrValveNotFound   - a query referenced a valve that does not exist.
package core

import "errors"

// Sentinel errors for network construction and queries.
var (
	// ErrMalformedGraph is wrapped by every construction failure.
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrEmptyValveID indicates that a Valve has an empty ID.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrDuplicateValve indicates two valves declared the same ID.
	ErrDuplicateValve = errors.New("core: duplicate valve ID")

	// ErrUnknownTunnel indicates a tunnel references a non-existent valve.
	ErrUnknownTunnel = errors.New("core: tunnel to unknown valve")

	// ErrStartNotFound indicates the designated start valve is absent.
	ErrStartNotFound = errors.New("core: start valve not found")

	// ErrNegativeRate indicates a valve declared a negative flow rate.
	ErrNegativeRate = errors.New("core: negative flow rate")

	// ErrValveNotFound indicates a query referenced a non-existent valve.
	ErrValveNotFound = errors.New("core: valve not found")
)

// Valve is a single node of the network.
//
// Moving through one tunnel costs one time unit; opening the valve costs one
// more and releases Rate pressure per remaining time unit afterwards.
type Valve struct {
	// ID uniquely identifies the valve within its Network.
	ID string

	// Rate is the flow rate released per time unit once opened.
	Rate int

	// Tunnels lists the IDs of directly reachable valves.
	Tunnels []string
}

// Network is the static valve graph plus its designated start valve.
//
// valves keeps declaration order; index maps ID → position in valves.
type Network struct {
	valves []Valve
	index  map[string]int
	start  string
}
