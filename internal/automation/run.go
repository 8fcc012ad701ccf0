package automation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/assay"
	"github.com/san-kum/qpcrsim/internal/metrics"
)

// Workers bounds the number of simulations run at once.
var Workers = runtime.NumCPU()

func simulate(s assay.Settings, noise amplify.Noise) (*amplify.Result, map[string]float64, error) {
	set := metrics.Default(s.Params.Threshold)
	res, err := amplify.Simulate(s.Params, noise, set.Observers()...)
	if err != nil {
		return nil, nil, err
	}
	return res, set.Values(), nil
}

// forEach calls fn for 0..n-1 on a bounded pool and stops at the first error.
func forEach(ctx context.Context, n int, fn func(i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(Workers, 1))
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
