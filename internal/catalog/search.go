// internal/catalog/search.go
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/trendyshop/storefront/internal/api"
)

// ErrSuperseded reports that a newer search was started while this one was
// in flight; its results were discarded and must not be displayed.
var ErrSuperseded = errors.New("search superseded by a newer query")

type SearchSource interface {
	SearchProducts(ctx context.Context, query string) ([]api.Product, error)
}

// Searcher runs search-as-you-type queries. Each Search call stamps a
// generation token; only the response belonging to the newest generation is
// allowed to install results, so a slow early response can never overwrite a
// fast later one.
type Searcher struct {
	src SearchSource

	mu      sync.Mutex
	gen     uint64
	query   string
	results []api.Product
}

func NewSearcher(src SearchSource) *Searcher {
	return &Searcher{src: src}
}

// Search runs query against the backend and returns the matching products.
// A blank query clears the current results without a network call. When the
// response comes back already superseded, Search returns ErrSuperseded.
func (s *Searcher) Search(ctx context.Context, query string) ([]api.Product, error) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.query = query
	if query == "" {
		s.results = nil
		s.mu.Unlock()
		return nil, nil
	}
	s.mu.Unlock()

	products, err := s.src.SearchProducts(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	s.results = products
	return products, nil
}

// Results returns the products of the newest completed, non-superseded
// search.
func (s *Searcher) Results() []api.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Product, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Searcher) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}
