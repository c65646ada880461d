// internal/stub/store.go
package stub

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendyshop/storefront/internal/api"
)

// Store is the stub backend's seeded in-memory dataset. It stands in for the
// production database, which is out of scope for this repository.
type Store struct {
	mu       sync.Mutex
	products []api.Product
	users    []User
	orders   []api.Order
	reviews  []api.Review
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
}

func NewStore() *Store {
	s := &Store{products: seedProducts()}
	s.seedUser("Demo Shopper", "demo@trendyshop.test", "Password123!")
	return s
}

func (s *Store) seedUser(name, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	s.users = append(s.users, User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *Store) Products() []api.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (api.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return api.Product{}, false
}

// SearchProducts matches the query case-insensitively against name and
// category, the way the production search endpoint behaves for short
// queries.
func (s *Store) SearchProducts(query string) []api.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Authenticate(email, password string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) CreateOrder(req *api.CreateOrderRequest) api.Order {
	order := api.Order{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		Products:      req.Products,
		TotalAmount:   req.TotalAmount,
		Address:       req.Address,
		Coordinates:   req.Coordinates,
		PaymentMethod: req.PaymentMethod,
		Status:        api.OrderPending,
		CreatedAt:     time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return order
}

func (s *Store) OrdersForUser(userID string) []api.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// CancelOrder flips a pending order owned by userID to cancelled. The bool
// reports whether the order exists; the error message mirrors production.
func (s *Store) CancelOrder(orderID, userID string) (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if s.orders[i].UserID != userID {
			return true, "order belongs to another user"
		}
		if s.orders[i].Status != api.OrderPending {
			return true, "only pending orders can be cancelled"
		}
		s.orders[i].Status = api.OrderCancelled
		return true, ""
	}
	return false, ""
}

// HasPurchased reports whether userID has a non-cancelled order containing
// the product. This gates the verified-buyer review path.
func (s *Store) HasPurchased(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.UserID != userID || o.Status == api.OrderCancelled {
			continue
		}
		for _, line := range o.Products {
			if line.ProductID == productID {
				return true
			}
		}
	}
	return false
}

func (s *Store) ReviewsForProduct(productID string) []api.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []api.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AddReview(userName string, req *api.AddReviewRequest) api.Review {
	review := api.Review{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
	return review
}
