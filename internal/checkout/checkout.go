// internal/checkout/checkout.go
package checkout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/cart"
	"github.com/trendyshop/storefront/internal/session"
)

// DefaultPaymentMethod is the only method the storefront currently accepts.
const DefaultPaymentMethod = "Cash on Delivery"

// ShippingDetails is the address block collected on the checkout page. All
// three text fields must be filled before an order can be submitted.
type ShippingDetails struct {
	City        string  `validate:"required"`
	SubRegion   string  `validate:"required"`
	FullAddress string  `validate:"required"`
	Lat         float64 `validate:"-"`
	Lon         float64 `validate:"-"`
}

// AddressLine joins the fields the way the order API expects them.
func (d ShippingDetails) AddressLine() string {
	return fmt.Sprintf("%s, %s, %s", d.FullAddress, d.SubRegion, d.City)
}

// FromGeocode pre-fills shipping details from a reverse-geocode result,
// walking the same field-priority chains the storefront map uses. The user
// can still edit every field afterwards.
func FromGeocode(g *api.GeocodeResult, lat, lon float64) ShippingDetails {
	return ShippingDetails{
		City:        g.Address.BestCity(),
		SubRegion:   g.Address.BestSubRegion(),
		FullAddress: g.DisplayName,
		Lat:         lat,
		Lon:         lon,
	}
}

// OrderPlacer is the slice of the API client checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, token string, req *api.CreateOrderRequest) error
}

// Orchestrator validates checkout preconditions locally and only then talks
// to the order API. The cart is cleared solely on an acknowledged success;
// any failure leaves it untouched for a user-initiated retry.
type Orchestrator struct {
	api  OrderPlacer
	cart *cart.Store
}

func NewOrchestrator(placer OrderPlacer, store *cart.Store) *Orchestrator {
	return &Orchestrator{api: placer, cart: store}
}

// Confirmation summarizes a successfully placed order.
type Confirmation struct {
	TotalAmount   float64
	Address       string
	PaymentMethod string
	LineCount     int
}

// Submit places the order. Precondition failures (logged-out session, missing
// shipping fields, empty cart) are reported without issuing any network call.
func (o *Orchestrator) Submit(ctx context.Context, sess session.Session, shipping ShippingDetails, paymentMethod string) (*Confirmation, error) {
	if !sess.LoggedIn() {
		return nil, api.NewError(api.KindNotAuthenticated, "please login first to checkout")
	}

	if err := ValidateShipping(shipping); err != nil {
		return nil, err
	}

	lines := o.cart.Lines()
	if len(lines) == 0 {
		return nil, api.NewError(api.KindValidationFailure, "cart is empty")
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	totals := cart.ComputeTotals(lines)
	req := &api.CreateOrderRequest{
		UserID:        sess.User.ID,
		Products:      make([]api.OrderLine, 0, len(lines)),
		TotalAmount:   totals.CartTotal,
		Address:       shipping.AddressLine(),
		Coordinates:   [2]float64{shipping.Lat, shipping.Lon},
		PaymentMethod: paymentMethod,
	}
	for _, line := range lines {
		req.Products = append(req.Products, api.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	if err := o.api.CreateOrder(ctx, sess.Token, req); err != nil {
		return nil, err
	}

	o.cart.Clear()
	logrus.WithFields(logrus.Fields{
		"user_id": sess.User.ID,
		"lines":   len(lines),
		"total":   totals.CartTotal,
	}).Info("order placed")

	return &Confirmation{
		TotalAmount:   totals.CartTotal,
		Address:       req.Address,
		PaymentMethod: paymentMethod,
		LineCount:     len(lines),
	}, nil
}
