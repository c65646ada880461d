// internal/stub/handlers.go
package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/trendyshop/storefront/internal/api"
)

var validate = validator.New()

type Handlers struct {
	store  *Store
	tokens *TokenManager
}

func NewHandlers(store *Store, tokens *TokenManager) *Handlers {
	return &Handlers{store: store, tokens: tokens}
}

func (h *Handlers) ListProducts(c *gin.Context) {
	ok(c, gin.H{"product": h.store.Products()})
}

func (h *Handlers) SearchProducts(c *gin.Context) {
	results := h.store.SearchProducts(c.Query("query"))
	if results == nil {
		results = []api.Product{}
	}
	ok(c, gin.H{"product": results})
}

func (h *Handlers) GetProduct(c *gin.Context) {
	p, found := h.store.ProductByID(c.Param("id"))
	if !found {
		notFound(c, "product not found")
		return
	}
	ok(c, gin.H{"product": p})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed login request")
		return
	}
	if err := validate.Struct(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}
	user, found := h.store.Authenticate(req.Email, req.Password)
	if !found {
		unauthorized(c, "invalid credentials")
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ok(c, gin.H{
		"token": token,
		"user": gin.H{
			"_id":   user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

type createOrderPayload struct {
	UserID        string          `json:"userId" validate:"required"`
	Products      []api.OrderLine `json:"products" validate:"required,min=1,dive"`
	TotalAmount   float64         `json:"totalAmount" validate:"min=0"`
	Address       string          `json:"address" validate:"required"`
	Coordinates   [2]float64      `json:"coordinates"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
}

func (h *Handlers) CreateOrder(c *gin.Context) {
	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "malformed order request")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		badRequest(c, "order is missing required fields")
		return
	}
	if payload.UserID != c.GetString("user_id") {
		fail(c, http.StatusForbidden, "order user does not match session")
		return
	}
	for _, line := range payload.Products {
		if _, found := h.store.ProductByID(line.ProductID); !found {
			badRequest(c, "unknown product: "+line.ProductID)
			return
		}
		if line.Quantity < 1 {
			badRequest(c, "quantity must be positive")
			return
		}
	}

	order := h.store.CreateOrder(&api.CreateOrderRequest{
		UserID:        payload.UserID,
		Products:      payload.Products,
		TotalAmount:   payload.TotalAmount,
		Address:       payload.Address,
		Coordinates:   payload.Coordinates,
		PaymentMethod: payload.PaymentMethod,
	})
	ok(c, gin.H{"orderId": order.ID})
}

type cancelOrderPayload struct {
	OrderID string `json:"orderId" validate:"required"`
}

func (h *Handlers) CancelOrder(c *gin.Context) {
	var payload cancelOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.OrderID == "" {
		badRequest(c, "orderId is required")
		return
	}
	found, problem := h.store.CancelOrder(payload.OrderID, c.GetString("user_id"))
	if !found {
		notFound(c, "order not found")
		return
	}
	if problem != "" {
		badRequest(c, problem)
		return
	}
	ok(c, gin.H{})
}

func (h *Handlers) ListUserOrders(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("user_id") {
		fail(c, http.StatusForbidden, "cannot view another user's orders")
		return
	}
	orders := h.store.OrdersForUser(userID)
	if orders == nil {
		orders = []api.Order{}
	}
	ok(c, gin.H{"orders": orders})
}

type chatPayload struct {
	Message string `json:"message"`
}

func (h *Handlers) Chat(c *gin.Context) {
	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		badRequest(c, "message is required")
		return
	}
	ok(c, gin.H{"reply": cannedReply(payload.Message)})
}

// cannedReply gives the stub assistant a few deterministic answers so chat
// flows can be exercised offline.
func cannedReply(message string) string {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "shipping") || strings.Contains(m, "delivery"):
		return "Standard delivery takes 2-4 business days anywhere in the country."
	case strings.Contains(m, "return") || strings.Contains(m, "refund"):
		return "You can return any product within 7 days of delivery for a full refund."
	case strings.Contains(m, "price") || strings.Contains(m, "discount"):
		return "Discounted items show their savings on the product card. Prices already include VAT."
	case strings.Contains(m, "hello") || strings.Contains(m, "hi"):
		return "Hi there! Ask me about products, shipping, or returns."
	default:
		return "I can help with products, orders, shipping, and returns. Could you tell me a bit more?"
	}
}

type geocodePayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type area struct {
	lat, lon float64
	address  api.GeoAddress
	display  string
}

// A few seeded map areas; the nearest one answers the reverse geocode.
var areas = []area{
	{23.8103, 90.4125, api.GeoAddress{City: "Dhaka", Suburb: "Banani"}, "Banani, Dhaka, Bangladesh"},
	{23.7509, 90.3935, api.GeoAddress{City: "Dhaka", Suburb: "Dhanmondi"}, "Dhanmondi, Dhaka, Bangladesh"},
	{22.3569, 91.7832, api.GeoAddress{City: "Chattogram", County: "Kotwali"}, "Kotwali, Chattogram, Bangladesh"},
	{23.9013, 89.1206, api.GeoAddress{District: "Kushtia", County: "Daulatpur", Village: "Philipnagar"}, "Philipnagar, Daulatpur, Kushtia, Bangladesh"},
	{24.3745, 88.6042, api.GeoAddress{City: "Rajshahi", Town: "Boalia"}, "Boalia, Rajshahi, Bangladesh"},
}

func (h *Handlers) ReverseGeocode(c *gin.Context) {
	var payload geocodePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "lat and lon are required")
		return
	}
	best := areas[0]
	bestDist := sqDist(payload.Lat, payload.Lon, best.lat, best.lon)
	for _, a := range areas[1:] {
		if d := sqDist(payload.Lat, payload.Lon, a.lat, a.lon); d < bestDist {
			best, bestDist = a, d
		}
	}
	ok(c, gin.H{"address": best.address, "displayName": best.display})
}

func sqDist(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := lat1 - lat2
	dlon := lon1 - lon2
	return dlat*dlat + dlon*dlon
}

func (h *Handlers) ListReviews(c *gin.Context) {
	productID := c.Param("productId")
	if _, found := h.store.ProductByID(productID); !found {
		notFound(c, "product not found")
		return
	}
	reviews := h.store.ReviewsForProduct(productID)
	if reviews == nil {
		reviews = []api.Review{}
	}

	canReview := false
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		if claims, err := h.tokens.Validate(strings.TrimPrefix(header, "Bearer ")); err == nil {
			canReview = h.store.HasPurchased(claims.UserID, productID)
		}
	}
	ok(c, gin.H{"reviews": reviews, "canReview": canReview})
}

type addReviewPayload struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

func (h *Handlers) AddReview(c *gin.Context) {
	var payload addReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "malformed review request")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		badRequest(c, "review is missing required fields")
		return
	}
	if !h.store.HasPurchased(c.GetString("user_id"), payload.ProductID) {
		fail(c, http.StatusForbidden, "only customers who have purchased this product can leave a review")
		return
	}
	review := h.store.AddReview(c.GetString("user_name"), &api.AddReviewRequest{
		ProductID: payload.ProductID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	})
	ok(c, gin.H{"review": review})
}
