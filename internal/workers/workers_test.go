// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/prembandhan/matchclient/internal/mock"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (m *countingWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestFeaturedRefreshWorker_StartsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockRefreshJob(ctrl)

	ctx := context.Background()
	interval := 5 * time.Minute

	job.EXPECT().Start(ctx, interval)

	NewFeaturedRefreshWorker(ctx, job, interval).Run()
}
