// Package worker runs the background notification dispatch pool. Deliveries
// are best-effort: the pool logs failures, prunes device tokens the gateway
// reported dead and never feeds anything back into committed state.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
)

const deliveryTimeout = 15 * time.Second

// Pool fans deliveries out over a fixed number of workers
type Pool struct {
	workers  int
	queue    chan domain.Delivery
	userRepo domain.UserRepository
	notifier domain.Notifier
	sms      domain.SMSGateway
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewPool creates a new dispatch pool
func NewPool(
	workers int,
	queueSize int,
	userRepo domain.UserRepository,
	notifier domain.Notifier,
	sms domain.SMSGateway,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:  workers,
		queue:    make(chan domain.Delivery, queueSize),
		userRepo: userRepo,
		notifier: notifier,
		sms:      sms,
		logger:   logger,
	}
}

// Start launches the workers
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// Enqueue adds a delivery without blocking; a full queue drops the delivery
func (p *Pool) Enqueue(d domain.Delivery) bool {
	select {
	case p.queue <- d:
		return true
	default:
		p.logger.Warn("delivery queue is full, dropping notification",
			zap.Int64("user_id", d.UserID))
		return false
	}
}

// worker drains the queue
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("notification worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("notification worker stopping", zap.Int("worker_id", id))
			return
		case d, ok := <-p.queue:
			if !ok {
				return
			}
			p.deliver(ctx, d)
		}
	}
}

// deliver pushes one notification and sends the SMS copy. Tokens the gateway
// reports dead are pruned so the next delivery skips them.
func (p *Pool) deliver(ctx context.Context, d domain.Delivery) {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if len(d.Tokens) > 0 {
		failed, err := p.notifier.Push(ctx, d.UserID, d.Tokens, d.Notice)
		if err != nil {
			p.logger.Error("push delivery failed",
				zap.Int64("user_id", d.UserID),
				zap.Error(err),
			)
		}
		if len(failed) > 0 {
			if err := p.userRepo.RemoveDeviceTokens(ctx, d.UserID, failed); err != nil {
				p.logger.Error("failed to prune device tokens",
					zap.Int64("user_id", d.UserID),
					zap.Int("tokens", len(failed)),
					zap.Error(err),
				)
			}
		}
	}

	if d.Phone != "" {
		if err := p.sms.Send(ctx, []string{d.Phone}, d.Notice.Body); err != nil {
			p.logger.Error("sms delivery failed",
				zap.Int64("user_id", d.UserID),
				zap.Error(err),
			)
		}
	}
}
