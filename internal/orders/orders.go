// internal/orders/orders.go
package orders

import (
	"context"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/session"
)

// Source is the slice of the API client the purchase-history view needs.
type Source interface {
	ListUserOrders(ctx context.Context, token, userID string) ([]api.Order, error)
	CancelOrder(ctx context.Context, token, orderID string) error
}

// History backs the "my orders" page: fetch the user's orders and revoke the
// ones still pending.
type History struct {
	api Source
}

func NewHistory(src Source) *History {
	return &History{api: src}
}

func (h *History) Fetch(ctx context.Context, sess session.Session) ([]api.Order, error) {
	if !sess.LoggedIn() {
		return nil, api.NewError(api.KindNotAuthenticated, "please login to view orders")
	}
	return h.api.ListUserOrders(ctx, sess.Token, sess.User.ID)
}

// CanCancel mirrors the UI gate: only pending orders offer cancellation. The
// backend enforces the same rule.
func CanCancel(o api.Order) bool {
	return o.Status == api.OrderPending
}

func (h *History) Cancel(ctx context.Context, sess session.Session, orderID string) error {
	if !sess.LoggedIn() {
		return api.NewError(api.KindNotAuthenticated, "please login to cancel orders")
	}
	return h.api.CancelOrder(ctx, sess.Token, orderID)
}
