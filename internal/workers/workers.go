package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(wk Worker) {
			defer w.wg.Done()
			wk.Run(ctx)
		}(worker)
	}
}

// Stop stops every worker and waits for all Run calls to return.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
	w.wg.Wait()
}
