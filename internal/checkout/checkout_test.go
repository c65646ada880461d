// internal/checkout/checkout_test.go
package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/cart"
	"github.com/trendyshop/storefront/internal/session"
)

type countingPlacer struct {
	calls int
	last  *api.CreateOrderRequest
	err   error
}

func (c *countingPlacer) CreateOrder(ctx context.Context, token string, req *api.CreateOrderRequest) error {
	c.calls++
	c.last = req
	return c.err
}

func loggedIn() session.Session {
	return session.Session{Token: "tok-123", User: session.User{ID: "user-1", Name: "Demo"}}
}

func validShipping() ShippingDetails {
	return ShippingDetails{
		City:        "Kushtia",
		SubRegion:   "Daulatpur",
		FullAddress: "Philipnagar, House 12",
		Lat:         23.9013,
		Lon:         89.1206,
	}
}

func filledCart() *cart.Store {
	s := cart.NewStore()
	s.Add(api.Product{ID: "p1", Price: 100, DiscountedPercentage: 10}, 2)
	s.Add(api.Product{ID: "p2", Price: 50}, 1)
	return s
}

func TestSubmitRejectsLoggedOutWithoutNetwork(t *testing.T) {
	placer := &countingPlacer{}
	orch := NewOrchestrator(placer, filledCart())

	_, err := orch.Submit(context.Background(), session.LoggedOut(), validShipping(), "")

	assert.Equal(t, api.KindNotAuthenticated, api.KindOf(err))
	assert.Zero(t, placer.calls, "precondition failure must not reach the network")
}

func TestSubmitRejectsIncompleteAddressWithoutNetwork(t *testing.T) {
	for _, shipping := range []ShippingDetails{
		{SubRegion: "Daulatpur", FullAddress: "House 12"},
		{City: "Kushtia", FullAddress: "House 12"},
		{City: "Kushtia", SubRegion: "Daulatpur"},
		{City: "   ", SubRegion: "Daulatpur", FullAddress: "House 12"},
	} {
		placer := &countingPlacer{}
		orch := NewOrchestrator(placer, filledCart())

		_, err := orch.Submit(context.Background(), loggedIn(), shipping, "")

		assert.Equal(t, api.KindValidationFailure, api.KindOf(err))
		assert.Zero(t, placer.calls)
	}
}

func TestSubmitRejectsEmptyCartWithoutNetwork(t *testing.T) {
	placer := &countingPlacer{}
	orch := NewOrchestrator(placer, cart.NewStore())

	_, err := orch.Submit(context.Background(), loggedIn(), validShipping(), "")

	assert.Equal(t, api.KindValidationFailure, api.KindOf(err))
	assert.Zero(t, placer.calls)
}

func TestSubmitBuildsPayloadAndClearsCart(t *testing.T) {
	placer := &countingPlacer{}
	store := filledCart()
	orch := NewOrchestrator(placer, store)

	confirmation, err := orch.Submit(context.Background(), loggedIn(), validShipping(), "")
	require.NoError(t, err)
	require.Equal(t, 1, placer.calls)

	req := placer.last
	assert.Equal(t, "user-1", req.UserID)
	assert.Equal(t, []api.OrderLine{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}, req.Products)
	// payable total: line bases only, discounts are informational
	assert.InDelta(t, 250, req.TotalAmount, 1e-9)
	assert.Equal(t, "Philipnagar, House 12, Daulatpur, Kushtia", req.Address)
	assert.Equal(t, [2]float64{23.9013, 89.1206}, req.Coordinates)
	assert.Equal(t, DefaultPaymentMethod, req.PaymentMethod)

	assert.Zero(t, store.Len(), "cart clears on acknowledged success")
	assert.Equal(t, 2, confirmation.LineCount)
	assert.InDelta(t, 250, confirmation.TotalAmount, 1e-9)
}

func TestSubmitFailureLeavesCartUntouched(t *testing.T) {
	placer := &countingPlacer{err: api.NewError(api.KindAPIRejection, "inventory exhausted")}
	store := filledCart()
	orch := NewOrchestrator(placer, store)

	_, err := orch.Submit(context.Background(), loggedIn(), validShipping(), "")

	assert.Equal(t, api.KindAPIRejection, api.KindOf(err))
	assert.Equal(t, 2, store.Len(), "failed checkout must not clear the cart")
}

func TestFromGeocodeFieldPriority(t *testing.T) {
	g := &api.GeocodeResult{
		Address: api.GeoAddress{
			County:   "Daulatpur",
			Suburb:   "ignored-when-county-set",
			District: "Kushtia",
			State:    "ignored-when-district-set",
		},
		DisplayName: "Philipnagar, Daulatpur, Kushtia, Bangladesh",
	}

	d := FromGeocode(g, 23.9, 89.12)
	assert.Equal(t, "Daulatpur", d.SubRegion)
	assert.Equal(t, "Kushtia", d.City)
	assert.Equal(t, g.DisplayName, d.FullAddress)
	assert.Equal(t, 23.9, d.Lat)
}
