// internal/catalog/filter.go
package catalog

import (
	"sort"

	"github.com/trendyshop/storefront/internal/api"
)

type SortMode string

const (
	// SortLatest treats the API's natural order as oldest-first and shows
	// it reversed. There is no timestamp on the wire to sort by.
	SortLatest    SortMode = "latest"
	SortPriceAsc  SortMode = "lowToHigh"
	SortPriceDesc SortMode = "highToLow"
)

// DefaultMaxPrice is the price ceiling applied before the user touches the
// range control.
const DefaultMaxPrice = 100000

// FilterState is the ephemeral filter owned by a catalog view. An empty
// category means no category filter.
type FilterState struct {
	Category string
	MaxPrice float64
	Sort     SortMode
}

func DefaultFilter() FilterState {
	return FilterState{MaxPrice: DefaultMaxPrice, Sort: SortLatest}
}

// ApplyFilters returns a new slice holding the products that pass both the
// category and price predicates, ordered per f.Sort. The input is never
// mutated. Category matching is exact and case-sensitive; the price ceiling
// is inclusive. Price sorts are stable so ties keep their relative order.
func ApplyFilters(products []api.Product, f FilterState) []api.Product {
	out := make([]api.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		reverse(out)
	}
	return out
}

// Categories lists the distinct categories present, in first-seen order, for
// the side navigation.
func Categories(products []api.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func reverse(items []api.Product) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
