// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cols/internal/logger"
)

const defaultRefreshInterval = time.Minute

// RefreshWorker calls notify on every tick so the running screen re-fetches
// its data. It never fetches anything itself.
type RefreshWorker struct {
	interval time.Duration
	notify   func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshWorker returns an idle worker. A non-positive interval means one
// minute.
func NewRefreshWorker(interval time.Duration, notify func(), logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshWorker{interval: interval, notify: notify, logger: logger}
}

// Start stops a previous run, then ticks until ctx is done or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Debug().Dur("interval", w.interval).Msg("refresh worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.notify()
			}
		}
	}()
}

// Stop cancels the ticker loop. It is safe to call more than once.
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		w.logger.Debug().Msg("refresh worker stopped")
	}
	w.wg.Wait()
}
