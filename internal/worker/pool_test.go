package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/avc/studyhub-backend/internal/domain"
	domainmocks "github.com/avc/studyhub-backend/internal/domain/mocks"
)

type poolMocks struct {
	user     *domainmocks.UserRepositoryMock
	notifier *domainmocks.NotifierMock
	sms      *domainmocks.SMSGatewayMock
}

func newPool(t *testing.T, workers, queueSize int) (*Pool, poolMocks) {
	m := poolMocks{
		user:     domainmocks.NewUserRepositoryMock(t),
		notifier: domainmocks.NewNotifierMock(t),
		sms:      domainmocks.NewSMSGatewayMock(t),
	}
	return NewPool(workers, queueSize, m.user, m.notifier, m.sms, zap.NewNop()), m
}

func TestPool_Enqueue(t *testing.T) {
	t.Run("Full queue drops without blocking", func(t *testing.T) {
		// no workers started, so the buffer is the only capacity
		pool, _ := newPool(t, 0, 1)

		d := domain.Delivery{UserID: 1, Notice: domain.Notification{Title: "hi"}}
		assert.True(t, pool.Enqueue(d))

		done := make(chan bool, 1)
		go func() {
			done <- pool.Enqueue(d)
		}()

		select {
		case accepted := <-done:
			assert.False(t, accepted)
		case <-time.After(time.Second):
			t.Fatal("Enqueue blocked on a full queue")
		}
	})
}

func TestPool_Deliver(t *testing.T) {
	notice := domain.Notification{Title: "Membership expiring", Body: "renew soon"}

	t.Run("Push and SMS", func(t *testing.T) {
		pool, m := newPool(t, 1, 4)

		pushed := make(chan struct{})
		m.notifier.EXPECT().Push(mock.Anything, int64(1), []string{"tok-a", "tok-b"}, notice).
			Return(nil, nil).Once()
		m.sms.EXPECT().Send(mock.Anything, []string{"+79990001122"}, "renew soon").
			RunAndReturn(func(context.Context, []string, string) error {
				close(pushed)
				return nil
			}).Once()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		assert.True(t, pool.Enqueue(domain.Delivery{
			UserID: 1,
			Tokens: []string{"tok-a", "tok-b"},
			Phone:  "+79990001122",
			Notice: notice,
		}))

		select {
		case <-pushed:
		case <-time.After(time.Second):
			t.Fatal("delivery was not dispatched")
		}
		pool.Stop()
	})

	t.Run("Dead tokens are pruned", func(t *testing.T) {
		pool, m := newPool(t, 1, 4)

		pruned := make(chan struct{})
		m.notifier.EXPECT().Push(mock.Anything, int64(2), []string{"tok-dead"}, notice).
			Return([]string{"tok-dead"}, nil).Once()
		m.user.EXPECT().RemoveDeviceTokens(mock.Anything, int64(2), []string{"tok-dead"}).
			RunAndReturn(func(context.Context, int64, []string) error {
				close(pruned)
				return nil
			}).Once()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		assert.True(t, pool.Enqueue(domain.Delivery{
			UserID: 2,
			Tokens: []string{"tok-dead"},
			Notice: notice,
		}))

		select {
		case <-pruned:
		case <-time.After(time.Second):
			t.Fatal("dead tokens were not pruned")
		}
		pool.Stop()
	})

	t.Run("Push failure does not stop the SMS copy", func(t *testing.T) {
		pool, m := newPool(t, 1, 4)

		sent := make(chan struct{})
		m.notifier.EXPECT().Push(mock.Anything, int64(3), []string{"tok"}, notice).
			Return(nil, assert.AnError).Once()
		m.sms.EXPECT().Send(mock.Anything, []string{"+79990003344"}, "renew soon").
			RunAndReturn(func(context.Context, []string, string) error {
				close(sent)
				return nil
			}).Once()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		assert.True(t, pool.Enqueue(domain.Delivery{
			UserID: 3,
			Tokens: []string{"tok"},
			Phone:  "+79990003344",
			Notice: notice,
		}))

		select {
		case <-sent:
		case <-time.After(time.Second):
			t.Fatal("sms copy was not sent")
		}
		pool.Stop()
	})

	t.Run("No tokens and no phone is a no-op", func(t *testing.T) {
		pool, _ := newPool(t, 1, 4)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		assert.True(t, pool.Enqueue(domain.Delivery{UserID: 4, Notice: notice}))
		pool.Stop()
	})
}

func TestPool_Stop(t *testing.T) {
	t.Run("Drains queued deliveries before returning", func(t *testing.T) {
		pool, m := newPool(t, 2, 8)

		const deliveries = 5
		m.sms.EXPECT().Send(mock.Anything, []string{"+79990005566"}, "bye").
			Return(nil).Times(deliveries)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.Start(ctx)

		for i := 0; i < deliveries; i++ {
			assert.True(t, pool.Enqueue(domain.Delivery{
				UserID: int64(i + 1),
				Phone:  "+79990005566",
				Notice: domain.Notification{Body: "bye"},
			}))
		}

		pool.Stop()
		m.sms.AssertNumberOfCalls(t, "Send", deliveries)
	})
}
