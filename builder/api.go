// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// api.go: the BuildNetwork orchestrator and the shared draft constructors
// write into.
//
// Contract:
//   • Constructors add valves through draft.addValve; a repeated ID is a
//     no-op, so constructors compose over the same valve set.
//   • Tunnels are deduplicated per valve and self-tunnels are dropped.
//   • The finished draft is validated by core.NewNetwork.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// Constructor applies a deterministic mutation to the draft using the
// resolved builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildNetwork resolves bopts, applies every constructor in order and
// returns the resulting network. Any constructor error is wrapped as
// "BuildNetwork: %w" and returned immediately.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	n, err := core.NewNetwork(d.valves(), cfg.start)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}

	return n, nil
}

// draft accumulates valves in insertion order.
type draft struct {
	order []string
	byID  map[string]*core.Valve
	seen  map[[2]string]struct{}
}

func newDraft() *draft {
	return &draft{
		byID: make(map[string]*core.Valve),
		seen: make(map[[2]string]struct{}),
	}
}

// addValve inserts id with a rate drawn from cfg, unless it already exists.
func (d *draft) addValve(id string, cfg builderConfig) {
	if _, ok := d.byID[id]; ok {
		return
	}
	rate := cfg.rateFn(cfg.rng)
	if cfg.zeroStart && id == cfg.start {
		rate = 0
	}
	d.order = append(d.order, id)
	d.byID[id] = &core.Valve{ID: id, Rate: rate}
}

// addTunnel links u to v, and v to u unless cfg.oneWay. Both valves must
// have been added.
func (d *draft) addTunnel(u, v string, cfg builderConfig) {
	d.link(u, v)
	if !cfg.oneWay {
		d.link(v, u)
	}
}

func (d *draft) link(u, v string) {
	if u == v {
		return
	}
	key := [2]string{u, v}
	if _, dup := d.seen[key]; dup {
		return
	}
	d.seen[key] = struct{}{}
	d.byID[u].Tunnels = append(d.byID[u].Tunnels, v)
}

// valves returns the draft in insertion order.
func (d *draft) valves() []core.Valve {
	out := make([]core.Valve, len(d.order))
	for i, id := range d.order {
		out[i] = *d.byID[id]
	}

	return out
}
