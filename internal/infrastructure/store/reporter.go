package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/domain/conversation"
	"jan-server/services/vision-chat-api/internal/infrastructure/metrics"
)

// Reporter periodically publishes store statistics to the conversations gauge.
// The store has no eviction, so the log line doubles as a capacity signal.
type Reporter struct {
	store     conversation.Store
	interval  time.Duration
	log       zerolog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewReporter creates a new store reporter.
func NewReporter(store conversation.Store, interval time.Duration, log zerolog.Logger) *Reporter {
	return &Reporter{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "store-reporter").Logger(),
		done:     make(chan struct{}),
	}
}

// Start begins the report loop in background.
// Safe to call multiple times - only the first call starts the reporter.
func (r *Reporter) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx)
		r.log.Info().Dur("interval", r.interval).Msg("store reporter started")
	})
}

// Stop shuts down the reporter and waits for the loop to exit.
// Safe to call multiple times.
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.log.Info().Msg("store reporter stopped")
	})
}

func (r *Reporter) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Report(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.Report(ctx)
		}
	}
}

// Report publishes the current statistics once.
func (r *Reporter) Report(ctx context.Context) {
	stats, err := r.store.Stats(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to read store stats")
		return
	}
	metrics.SetConversationsStored(stats.TotalConversations)
	r.log.Debug().
		Int("conversations", stats.TotalConversations).
		Int("messages", stats.TotalMessages).
		Msg("store stats")
}
