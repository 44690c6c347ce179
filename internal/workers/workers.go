package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker concurrently and waits for all of them. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(ctx); err != nil {
				return fmt.Errorf("worker %d (%T): %w", i, worker, err)
			}
			return nil
		})
	}

	return g.Wait()
}
