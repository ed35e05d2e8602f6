package service

import (
	"github.com/avc/studyhub-backend/internal/domain"
)

// notifyUser hands one best-effort delivery to the dispatch pool. Callers
// invoke it only after their transaction committed; a full queue drops the
// delivery and the pool logs the drop.
func notifyUser(q domain.DeliveryQueue, user *domain.User, title, body string, data map[string]string) {
	q.Enqueue(domain.Delivery{
		UserID: user.ID,
		Tokens: user.DeviceTokens,
		Phone:  user.Phone,
		Notice: domain.Notification{Title: title, Body: body, Data: data},
	})
}
