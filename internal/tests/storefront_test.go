// internal/tests/storefront_test.go
package tests

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/trendyshop/storefront/internal/api"
	"github.com/trendyshop/storefront/internal/cart"
	"github.com/trendyshop/storefront/internal/catalog"
	"github.com/trendyshop/storefront/internal/chat"
	"github.com/trendyshop/storefront/internal/checkout"
	"github.com/trendyshop/storefront/internal/config"
	"github.com/trendyshop/storefront/internal/orders"
	"github.com/trendyshop/storefront/internal/reviews"
	"github.com/trendyshop/storefront/internal/session"
	"github.com/trendyshop/storefront/internal/stub"
)

// StorefrontTestSuite runs the client packages against the in-memory
// stub API over real HTTP, covering the full browse-to-order flow.
type StorefrontTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *api.Client
}

func (s *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Stub.JWTSecret = "integration-test-secret"
	cfg.Stub.TokenTTL = 1
	s.server = httptest.NewServer(stub.NewRouter(cfg))
	s.client = api.NewClient(s.server.URL, api.WithTimeout(5*time.Second))
}

func (s *StorefrontTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *StorefrontTestSuite) login() session.Session {
	token, err := s.client.Login(context.Background(), "demo@trendyshop.test", "Password123!")
	s.Require().NoError(err)
	sess, err := session.FromToken(token)
	s.Require().NoError(err)
	return sess
}

func (s *StorefrontTestSuite) TestProductListing() {
	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)
	s.Require().NotEmpty(products)
	for _, p := range products {
		s.NotEmpty(p.ID)
		s.NotEmpty(p.Name)
		s.NotEmpty(p.Category)
		s.Greater(p.Price, 0.0)
	}
}

func (s *StorefrontTestSuite) TestCatalogFilteringAgainstLiveData() {
	view := catalog.NewView(s.client, catalog.DefaultCacheTTL)
	all, err := view.Products(context.Background())
	s.Require().NoError(err)

	cats := catalog.Categories(all)
	s.Require().NotEmpty(cats)

	view.SetFilter(catalog.FilterState{
		Category: cats[0],
		MaxPrice: catalog.DefaultMaxPrice,
		Sort:     catalog.SortPriceAsc,
	})
	filtered, err := view.Filtered(context.Background())
	s.Require().NoError(err)
	s.Require().NotEmpty(filtered)
	for i, p := range filtered {
		s.Equal(cats[0], p.Category)
		if i > 0 {
			s.LessOrEqual(filtered[i-1].Price, p.Price)
		}
	}
}

func (s *StorefrontTestSuite) TestSearch() {
	results, err := s.client.SearchProducts(context.Background(), "audio")
	s.Require().NoError(err)
	for _, p := range results {
		s.Equal("audio", p.Category)
	}

	none, err := s.client.SearchProducts(context.Background(), "zzz-no-such-product")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *StorefrontTestSuite) TestSingleProductAndMissingProduct() {
	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)

	p, err := s.client.GetProduct(context.Background(), products[0].ID)
	s.Require().NoError(err)
	s.Equal(products[0].Name, p.Name)

	_, err = s.client.GetProduct(context.Background(), "prod-missing")
	s.Equal(api.KindAPIRejection, api.KindOf(err))
}

func (s *StorefrontTestSuite) TestLoginRejectsBadCredentials() {
	_, err := s.client.Login(context.Background(), "demo@trendyshop.test", "wrong-password")
	s.Equal(api.KindNotAuthenticated, api.KindOf(err))
}

func (s *StorefrontTestSuite) TestLoginYieldsDecodableToken() {
	sess := s.login()
	s.True(sess.LoggedIn())
	s.Equal("Demo Shopper", sess.User.Name)
	s.Equal("demo@trendyshop.test", sess.User.Email)
}

func (s *StorefrontTestSuite) TestCheckoutPlacesOrderAndClearsCart() {
	sess := s.login()
	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)

	store := cart.NewStore()
	store.Add(products[0], 2)

	orch := checkout.NewOrchestrator(s.client, store)
	conf, err := orch.Submit(context.Background(), sess, checkout.ShippingDetails{
		City:        "Dhaka",
		SubRegion:   "Gulshan",
		FullAddress: "House 7, Road 11",
		Lat:         23.79,
		Lon:         90.41,
	}, checkout.DefaultPaymentMethod)
	s.Require().NoError(err)
	s.NotNil(conf)
	s.Zero(store.Len(), "cart empties once the order is accepted")

	history := orders.NewHistory(s.client)
	got, err := history.Fetch(context.Background(), sess)
	s.Require().NoError(err)
	s.Require().NotEmpty(got)
	s.Equal(api.OrderPending, got[0].Status)
	s.Equal(products[0].Price*2, got[0].TotalAmount)
}

func (s *StorefrontTestSuite) TestOrderCancellation() {
	sess := s.login()
	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)

	req := &api.CreateOrderRequest{
		UserID:        sess.User.ID,
		Products:      []api.OrderLine{{ProductID: products[1].ID, Quantity: 1}},
		TotalAmount:   products[1].Price,
		Address:       "House 2, Banani, Dhaka",
		Coordinates:   [2]float64{23.79, 90.40},
		PaymentMethod: checkout.DefaultPaymentMethod,
	}
	s.Require().NoError(s.client.CreateOrder(context.Background(), sess.Token, req))

	history := orders.NewHistory(s.client)
	before, err := history.Fetch(context.Background(), sess)
	s.Require().NoError(err)
	s.Require().NotEmpty(before)

	target := before[0]
	s.Require().True(orders.CanCancel(target))
	s.Require().NoError(history.Cancel(context.Background(), sess, target.ID))

	after, err := history.Fetch(context.Background(), sess)
	s.Require().NoError(err)
	for _, o := range after {
		if o.ID == target.ID {
			s.Equal(api.OrderCancelled, o.Status)
		}
	}

	// A cancelled order cannot be cancelled again.
	err = history.Cancel(context.Background(), sess, target.ID)
	s.Equal(api.KindAPIRejection, api.KindOf(err))
}

func (s *StorefrontTestSuite) TestOrderHistoryRequiresMatchingUser() {
	sess := s.login()
	_, err := s.client.ListUserOrders(context.Background(), sess.Token, "someone-else")
	s.Equal(api.KindNotAuthenticated, api.KindOf(err))

	_, err = s.client.ListUserOrders(context.Background(), "", sess.User.ID)
	s.Equal(api.KindNotAuthenticated, api.KindOf(err))
}

func (s *StorefrontTestSuite) TestChatWidgetRoundTrip() {
	w := chat.NewWidget(s.client)
	s.Require().NoError(w.Send(context.Background(), "where is my order?"))

	transcript := w.Transcript()
	s.Require().Len(transcript, 3)
	s.Equal(chat.Greeting, transcript[0].Text)
	s.Equal(chat.RoleUser, transcript[1].Role)
	s.Equal(chat.RoleAssistant, transcript[2].Role)
	s.NotEmpty(transcript[2].Text)
}

func (s *StorefrontTestSuite) TestReverseGeocode() {
	got, err := s.client.ReverseGeocode(context.Background(), 23.81, 90.41)
	s.Require().NoError(err)
	s.NotEmpty(got.Address.BestCity())
	s.NotEmpty(got.DisplayName)
}

func (s *StorefrontTestSuite) TestReviewsGatedByPurchase() {
	sess := s.login()
	products, err := s.client.ListProducts(context.Background())
	s.Require().NoError(err)

	// Pick a product nobody ordered in this suite run.
	unbought := products[len(products)-1]
	section := reviews.NewSection(s.client)

	page, err := section.Load(context.Background(), sess, unbought.ID)
	s.Require().NoError(err)
	s.False(page.CanReview)

	err = section.Submit(context.Background(), sess, unbought.ID, 5, "great")
	s.Equal(api.KindNotAuthenticated, api.KindOf(err))

	// Buy it, then review it.
	req := &api.CreateOrderRequest{
		UserID:        sess.User.ID,
		Products:      []api.OrderLine{{ProductID: unbought.ID, Quantity: 1}},
		TotalAmount:   unbought.Price,
		Address:       "House 9, Uttara, Dhaka",
		Coordinates:   [2]float64{23.87, 90.39},
		PaymentMethod: checkout.DefaultPaymentMethod,
	}
	s.Require().NoError(s.client.CreateOrder(context.Background(), sess.Token, req))

	s.Require().NoError(section.Submit(context.Background(), sess, unbought.ID, 4, "solid build, fast delivery"))

	page, err = section.Load(context.Background(), sess, unbought.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(page.Reviews)
	assert.Equal(s.T(), sess.User.Name, page.Reviews[len(page.Reviews)-1].UserName)
}

func TestStorefrontTestSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
