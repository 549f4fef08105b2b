package anagram

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// SearchAll searches every rack concurrently, at most WithWorkers at a
// time. results[i] belongs to racks[i]. The first context error cancels the
// searches still running and is returned.
func (e *Engine) SearchAll(ctx context.Context, racks []string) ([][]string, error) {
	results := make([][]string, len(racks))

	p := pool.New().WithMaxGoroutines(e.workers).WithContext(ctx).WithCancelOnError()
	for i, raw := range racks {
		p.Go(func(ctx context.Context) error {
			words, err := e.SearchContext(ctx, raw)
			if err != nil {
				return err
			}
			results[i] = words
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
