package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
)

// OrderFacade exposes the subset of application functionality required by the reaper.
type OrderFacade interface {
	StalePendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// Reaper periodically cancels pending orders that were never paid
// within the configured TTL, using the ordinary pending -> cancelled
// transition. A TTL of zero disables it.
type Reaper struct {
	facade       OrderFacade
	pollInterval time.Duration
	ttl          time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReaper constructs the reaper worker pool.
func NewReaper(facade OrderFacade, pollInterval, ttl time.Duration, batchSize, workers int, logger *slog.Logger) *Reaper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Reaper{
		facade:       facade,
		pollInterval: pollInterval,
		ttl:          ttl,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Enabled reports whether the reaper will run at all.
func (r *Reaper) Enabled() bool {
	return r.ttl > 0
}

// Start launches background processing.
func (r *Reaper) Start(ctx context.Context) {
	if !r.Enabled() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reaper) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *Reaper) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-r.ttl)
	orders, err := r.facade.StalePendingOrders(ctx, cutoff, r.batchSize)
	if err != nil {
		r.logger.Error("fetch stale pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- order:
		}
	}
}

func (r *Reaper) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reap(ctx, order)
		}
	}
}

func (r *Reaper) reap(ctx context.Context, order model.Order) {
	_, err := r.facade.TransitionOrder(ctx, order.ID, model.OrderStatusCancelled)
	if err != nil {
		// Paid in the meantime is fine; anything else is worth a log line.
		if errors.Is(err, domainErrors.ErrInvalidTransition) || errors.Is(err, domainErrors.ErrNotFound) {
			return
		}
		r.logger.Error("cancel stale order failed",
			slog.String("order", order.Number),
			slog.String("error", err.Error()),
		)
		return
	}
	r.logger.Info("cancelled stale pending order",
		slog.String("order", order.Number),
		slog.Time("created_at", order.CreatedAt),
	)
}
