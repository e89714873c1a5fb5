package workers

import (
	"context"
	"time"

	"github.com/prembandhan/matchclient/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// featuredRefreshWorker keeps the featured cache warm by running the
// service refresh job on its interval.
type featuredRefreshWorker struct {
	ctx      context.Context
	job      service.RefreshJob
	interval time.Duration
}

func NewFeaturedRefreshWorker(ctx context.Context, job service.RefreshJob, interval time.Duration) Worker {
	return &featuredRefreshWorker{
		ctx:      ctx,
		job:      job,
		interval: interval,
	}
}

func (w *featuredRefreshWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
