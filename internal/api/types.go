// internal/api/types.go
package api

import "time"

// Product is the read-only catalog record owned by the backend. The client
// never mutates one; it only caches and displays them.
type Product struct {
	ID                   string   `json:"_id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	DiscountedPercentage float64  `json:"discountedPercentage,omitempty"`
	Images               []string `json:"images"`
	Rating               float64  `json:"rating,omitempty"`
	ReviewCount          int      `json:"reviewCount,omitempty"`
	IsNew                bool     `json:"isNew,omitempty"`
	Offer                bool     `json:"offer,omitempty"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID            string      `json:"_id"`
	UserID        string      `json:"userId"`
	Products      []OrderLine `json:"products"`
	TotalAmount   float64     `json:"totalAmount"`
	Address       string      `json:"address"`
	Coordinates   [2]float64  `json:"coordinates"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type CreateOrderRequest struct {
	UserID        string      `json:"userId"`
	Products      []OrderLine `json:"products"`
	TotalAmount   float64     `json:"totalAmount"`
	Address       string      `json:"address"`
	Coordinates   [2]float64  `json:"coordinates"`
	PaymentMethod string      `json:"paymentMethod"`
}

type Review struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewPage carries the review list together with the verified-buyer gate
// the backend computes for the requesting user.
type ReviewPage struct {
	Reviews   []Review
	CanReview bool
}

type AddReviewRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// GeoAddress mirrors the Nominatim-style address object the backend relays.
// Most fields are empty for any given point; callers pick through the
// fallback chains in BestCity/BestSubRegion.
type GeoAddress struct {
	County        string `json:"county,omitempty"`
	Suburb        string `json:"suburb,omitempty"`
	Neighbourhood string `json:"neighbourhood,omitempty"`
	CityDistrict  string `json:"city_district,omitempty"`
	Town          string `json:"town,omitempty"`
	Village       string `json:"village,omitempty"`
	City          string `json:"city,omitempty"`
	StateDistrict string `json:"state_district,omitempty"`
	District      string `json:"district,omitempty"`
	State         string `json:"state,omitempty"`
}

// BestSubRegion picks the most specific sub-region label available. The
// county field usually carries the upazila in Nominatim responses.
func (a GeoAddress) BestSubRegion() string {
	for _, v := range []string{a.County, a.Suburb, a.Neighbourhood, a.CityDistrict, a.Town, a.Village} {
		if v != "" {
			return v
		}
	}
	return ""
}

func (a GeoAddress) BestCity() string {
	for _, v := range []string{a.City, a.StateDistrict, a.District, a.State} {
		if v != "" {
			return v
		}
	}
	return ""
}

type GeocodeResult struct {
	Address     GeoAddress `json:"address"`
	DisplayName string     `json:"displayName"`
}

// Wire envelopes. Every endpoint wraps its payload in a success flag; a
// false flag may carry a human-readable message.
type productListEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Product []Product `json:"product"`
}

type singleProductEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Product Product `json:"product"`
}

type orderListEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Orders  []Order `json:"orders"`
}

type chatEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Reply   string `json:"reply"`
}

type geocodeEnvelope struct {
	Success     bool       `json:"success"`
	Message     string     `json:"message,omitempty"`
	Address     GeoAddress `json:"address"`
	DisplayName string     `json:"displayName"`
}

type reviewListEnvelope struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	Reviews   []Review `json:"reviews"`
	CanReview bool     `json:"canReview"`
}

type ackEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type loginEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

