package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

// Notifier delivers a single status change to the customer.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, change model.StatusChange) error
}

// NotificationDispatcher delivers status changes on a bounded worker pool.
// Enqueue never blocks; a full queue drops the change.
type NotificationDispatcher struct {
	notifier Notifier
	workers  int
	timeout  time.Duration
	logger   *slog.Logger

	jobs    chan model.StatusChange
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(notifier Notifier, workers, queueSize int, timeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationDispatcher{
		notifier: notifier,
		workers:  workers,
		timeout:  timeout,
		logger:   logger,
		jobs:     make(chan model.StatusChange, queueSize),
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil || d.stopped {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop rejects new changes, delivers what is already queued and waits for
// all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue schedules change for delivery and reports whether it was accepted.
func (d *NotificationDispatcher) Enqueue(change model.StatusChange) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}
	select {
	case d.jobs <- change:
		return true
	default:
		d.logger.Warn("notification queue full",
			slog.String("selection_id", change.SelectionID.String()),
			slog.Int("capacity", cap(d.jobs)),
		)
		return false
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	// Deliveries are bounded by the per-change timeout, not by Stop.
	deliveryCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			d.drain(deliveryCtx)
			return
		case change := <-d.jobs:
			d.deliver(deliveryCtx, change)
		}
	}
}

func (d *NotificationDispatcher) drain(ctx context.Context) {
	for {
		select {
		case change := <-d.jobs:
			d.deliver(ctx, change)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, change model.StatusChange) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.notifier.NotifyStatusChange(ctx, change); err != nil {
		d.logger.Error("status notification failed",
			slog.String("selection_id", change.SelectionID.String()),
			slog.String("status", string(change.Status)),
			slog.String("error", err.Error()),
		)
	}
}
