package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/open-textbook/anonboard/domain"
)

type syncBloomWorker struct {
	syncer   domain.BloomSyncer
	interval time.Duration
}

var _ domain.Worker = (*syncBloomWorker)(nil)

// NewSyncBloomWorker keeps the bloom filter in step with the article table.
// The initial load is done by the caller before serving; Start only runs the
// periodic catch-up.
func NewSyncBloomWorker(s domain.BloomSyncer, interval time.Duration) *syncBloomWorker {
	return &syncBloomWorker{
		syncer:   s,
		interval: interval,
	}
}

func (w *syncBloomWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncer.SyncBloomFilter(ctx); err != nil && ctx.Err() == nil {
				logrus.Errorf("failed to sync bloom filter: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down SyncBloomWorker")
			return
		}
	}
}
