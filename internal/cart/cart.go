// internal/cart/cart.go
package cart

import (
	"sync"

	"github.com/trendyshop/storefront/internal/api"
)

// Line is one cart entry: a product reference plus the quantity and the
// per-item discount percentage captured when the product was added.
type Line struct {
	ProductID       string
	Name            string
	UnitPrice       float64
	Quantity        int
	DiscountPercent float64
}

// Store holds the session's cart lines. All mutation goes through this one
// writer path; reads hand out snapshots so views never observe a half-applied
// change.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// Add puts a product in the cart, merging into an existing line when the
// product is already present.
func (s *Store) Add(p api.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID:       p.ID,
		Name:            p.Name,
		UnitPrice:       p.Price,
		Quantity:        quantity,
		DiscountPercent: p.DiscountedPercentage,
	})
}

// SetQuantity changes a line's quantity; a quantity below one removes the
// line. Reports whether the product was in the cart.
func (s *Store) SetQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if quantity < 1 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		return true
	}
	return false
}

func (s *Store) Remove(productID string) bool {
	return s.SetQuantity(productID, 0)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a snapshot copy of the cart.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Totals recomputes the pricing summary from the current lines. Full
// recomputation on every read is fine at cart sizes of tens of items.
func (s *Store) Totals() Totals {
	return ComputeTotals(s.Lines())
}
