// internal/stub/seed.go
package stub

import (
	"fmt"

	"github.com/trendyshop/storefront/internal/api"
)

// seedProducts builds a 25-item catalog across five categories. The natural
// order is oldest-first, matching how the production list endpoint returns
// documents.
func seedProducts() []api.Product {
	type row struct {
		name     string
		category string
		price    float64
		discount float64
		rating   float64
		isNew    bool
		offer    bool
	}

	rows := []row{
		{"Aurora Buds Lite", "audio", 1490, 0, 4.1, false, false},
		{"Aurora Buds Pro", "audio", 3990, 10, 4.5, false, true},
		{"Bassline Studio Headphones", "audio", 5490, 0, 4.3, false, false},
		{"Echo Mini Speaker", "audio", 2190, 5, 3.9, false, true},
		{"Sonar Soundbar 2.1", "audio", 8990, 0, 4.6, false, false},
		{"Pixelview 24 Monitor", "computers", 13990, 0, 4.2, false, false},
		{"Swiftbook Air 13", "computers", 64990, 8, 4.7, false, true},
		{"Swiftbook Pro 15", "computers", 94990, 0, 4.8, true, false},
		{"Hexa Mechanical Keyboard", "computers", 4290, 0, 4.4, false, false},
		{"Glide Wireless Mouse", "computers", 1290, 15, 4.0, false, true},
		{"Nova Phone X2", "phones", 32990, 0, 4.5, false, false},
		{"Nova Phone X2 Pro", "phones", 46990, 5, 4.6, true, true},
		{"Orbit Fold Mini", "phones", 74990, 0, 4.2, true, false},
		{"Pebble Phone SE", "phones", 17990, 12, 4.0, false, true},
		{"Titan Rugged 5G", "phones", 28990, 0, 4.1, false, false},
		{"Pulse Band 3", "wearables", 3490, 0, 4.0, false, false},
		{"Pulse Watch Active", "wearables", 9990, 10, 4.4, false, true},
		{"Zen Ring", "wearables", 12990, 0, 4.3, true, false},
		{"Stride GPS Watch", "wearables", 15990, 0, 4.5, false, false},
		{"Lumen Smart Glasses", "wearables", 21990, 7, 3.8, true, true},
		{"Volt 20W Charger", "accessories", 790, 0, 4.2, false, false},
		{"Volt Power Bank 10K", "accessories", 1890, 10, 4.3, false, true},
		{"Shield Case Nova X2", "accessories", 690, 0, 4.1, false, false},
		{"Braided USB-C Cable", "accessories", 390, 20, 4.0, false, true},
		{"Nimbus Laptop Sleeve", "accessories", 1190, 0, 4.4, true, false},
	}

	products := make([]api.Product, 0, len(rows))
	for i, r := range rows {
		products = append(products, api.Product{
			ID:                   fmt.Sprintf("prod-%03d", i+1),
			Name:                 r.name,
			Category:             r.category,
			Price:                r.price,
			DiscountedPercentage: r.discount,
			Images:               []string{fmt.Sprintf("https://assets.trendyshop.test/products/prod-%03d.jpg", i+1)},
			Rating:               r.rating,
			ReviewCount:          (i * 7) % 40,
			IsNew:                r.isNew,
			Offer:                r.offer,
		})
	}
	return products
}
