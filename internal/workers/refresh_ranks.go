package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/open-textbook/anonboard/domain"
)

type refreshRanksWorker struct {
	refresher domain.RankRefresher
	interval  time.Duration
}

var _ domain.Worker = (*refreshRanksWorker)(nil)

// NewRefreshRanksWorker rebuilds the cached ranks every interval so readers
// rarely hit an expired entry.
func NewRefreshRanksWorker(r domain.RankRefresher, interval time.Duration) *refreshRanksWorker {
	return &refreshRanksWorker{
		refresher: r,
		interval:  interval,
	}
}

func (w *refreshRanksWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down RefreshRanksWorker")
			return
		}
	}
}

func (w *refreshRanksWorker) refresh(ctx context.Context) {
	if err := w.refresher.RefreshRanks(ctx); err != nil && ctx.Err() == nil {
		logrus.Errorf("failed to refresh ranks: %v", err)
	}
}
