// internal/catalog/view.go
package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trendyshop/storefront/internal/api"
)

// ProductSource is the slice of the API client the catalog needs.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
}

// DefaultCacheTTL bounds how long a fetched product list is considered
// fresh before the next read triggers a refetch.
const DefaultCacheTTL = 30 * time.Minute

// View holds the session-wide cached product list and the filter state that
// shapes what the product grid shows. A fetch that was superseded by a newer
// one (via Invalidate or a later completed fetch) never overwrites the cache.
type View struct {
	src ProductSource
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	products  []api.Product
	fetchedAt time.Time
	gen       uint64
	filter    FilterState
}

func NewView(src ProductSource, ttl time.Duration) *View {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &View{
		src:    src,
		ttl:    ttl,
		now:    time.Now,
		filter: DefaultFilter(),
	}
}

// Products returns the cached list, refetching when the cache is stale or
// empty. Concurrent callers during a refetch each issue their own fetch; the
// generation check makes sure only a fetch that is still current installs
// its result.
func (v *View) Products(ctx context.Context) ([]api.Product, error) {
	v.mu.Lock()
	if v.products != nil && v.now().Sub(v.fetchedAt) < v.ttl {
		cached := v.products
		v.mu.Unlock()
		return cached, nil
	}
	gen := v.gen
	v.mu.Unlock()

	products, err := v.src.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		// A newer invalidation or fetch won the race; never overwrite it.
		logrus.WithField("generation", gen).Debug("discarding superseded product list fetch")
		if v.products != nil {
			return v.products, nil
		}
		return products, nil
	}
	v.products = products
	v.fetchedAt = v.now()
	v.gen++
	return products, nil
}

// Invalidate drops the cache so the next read refetches, and marks any
// in-flight fetch stale.
func (v *View) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.products = nil
	v.fetchedAt = time.Time{}
	v.gen++
}

func (v *View) Filter() FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetFilter installs a new filter state and reports whether it differs from
// the previous one. Callers use the report to reset pagination so the user
// is not stranded past the end of a smaller result set.
func (v *View) SetFilter(f FilterState) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter == f {
		return false
	}
	v.filter = f
	return true
}

// Filtered returns the current product grid: the cached list passed through
// the view's filter state.
func (v *View) Filtered(ctx context.Context) ([]api.Product, error) {
	products, err := v.Products(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(products, v.Filter()), nil
}

// NewArrivals returns up to n products in newest-first order, for the
// horizontal arrivals rail.
func (v *View) NewArrivals(ctx context.Context, n int) ([]api.Product, error) {
	products, err := v.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]api.Product, len(products))
	copy(out, products)
	reverse(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Recommended returns up to n products sampled at random, matching the
// storefront's shuffled picks section.
func (v *View) Recommended(ctx context.Context, n int) ([]api.Product, error) {
	products, err := v.Products(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]api.Product, len(products))
	copy(out, products)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}
