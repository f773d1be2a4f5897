package mockup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// EnhanceBatch enhances several requests concurrently through the same
// bound provider, at most BatchConcurrency at a time. Results are
// positionally aligned with reqs. The first failure cancels the remaining
// work and is returned; no partial results are handed out.
func (e *Enhancer) EnhanceBatch(ctx context.Context, reqs []Request) ([]*Result, error) {
	results := make([]*Result, len(reqs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(e.batchConcurrency)
	for i, req := range reqs {
		// Per-iteration copies: under go 1.21 the range variables are
		// shared across iterations, so each goroutine must bind its own.
		i, req := i, req
		group.Go(func() error {
			result, err := e.EnhanceImage(ctx, req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
