package search

import (
	"context"

	"github.com/katalvlaran/valvenet/matrix"
)

// Solve runs Single and Dual on the same matrix.
func Solve(ctx context.Context, d *matrix.Distances, opts Options) (Result, error) {
	single, err := Single(ctx, d, opts)
	if err != nil {
		return Result{}, err
	}
	dual, err := Dual(ctx, d, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{Single: single, Dual: dual}, nil
}
