// Package builder generates deterministic valve networks for tests,
// benchmarks and experiments.
//
// A network is assembled by one orchestrator, BuildNetwork, which resolves
// functional options into a builderConfig and applies Constructors in order
// onto a shared draft:
//
//	n, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithRateFn(builder.UniformRateFn(0, 25))},
//		builder.Cycle(12),
//		builder.RandomSparse(12, 0.2),
//	)
//
// Constructors share vertex IDs through the configured IDFn, so Cycle(12)
// followed by RandomSparse(12, p) adds chords to the same twelve valves.
// A valve's rate is drawn once, when the valve is first added.
//
// Determinism: the same options, seed and constructor order always produce
// the same network, valve order and tunnel order.
//
// Errors: constructors never panic at runtime and return the sentinels of
// errors.go wrapped with method context. Option constructors (WithX) panic
// on meaningless values, as they are programmer errors.
package builder
