package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/prembandhan/matchclient/internal/mock"
)

func TestRefreshJobTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	featured := mock.NewMockFeaturedService(ctrl)

	featured.EXPECT().Refresh(gomock.Any()).Return(nil, nil).MinTimes(1)

	job := NewRefreshJob(featured)
	job.Start(context.Background(), 10*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	job.Stop()
}

func TestRefreshJobStopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	featured := mock.NewMockFeaturedService(ctrl)

	job := NewRefreshJob(featured)

	// must not panic or block
	job.Stop()
	job.Stop()
}

func TestRefreshJobRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	featured := mock.NewMockFeaturedService(ctrl)

	featured.EXPECT().Refresh(gomock.Any()).Return(nil, nil).AnyTimes()

	job := NewRefreshJob(featured)
	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	job.Stop()
}

func TestRefreshJobContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	featured := mock.NewMockFeaturedService(ctrl)

	featured.EXPECT().Refresh(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	job := NewRefreshJob(featured)
	job.Start(ctx, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	// Stop after context cancellation must still return promptly
	job.Stop()
}
