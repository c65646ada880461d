// internal/stub/router.go
package stub

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/trendyshop/storefront/internal/config"
)

// NewRouter wires the stub backend: the full API surface the SDK consumes,
// behind CORS, request logging, and a per-IP rate limit.
func NewRouter(cfg *config.Config) *gin.Engine {
	store := NewStore()
	tokens := NewTokenManager(cfg.Stub.JWTSecret, cfg.Stub.TokenTTL)
	handlers := NewHandlers(store, tokens)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(cors.Default())
	r.Use(newRateLimiter(rate.Every(time.Second/20), 40).middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	apiGroup := r.Group("/api")
	{
		product := apiGroup.Group("/product")
		{
			product.GET("/list", handlers.ListProducts)
			product.GET("/search", handlers.SearchProducts)
			product.GET("/single/:id", handlers.GetProduct)
		}

		apiGroup.POST("/auth/login", handlers.Login)

		order := apiGroup.Group("/order")
		order.Use(authRequired(tokens))
		{
			order.POST("/create", handlers.CreateOrder)
			order.PUT("/cancel", handlers.CancelOrder)
			order.GET("/user/:userId", handlers.ListUserOrders)
		}

		apiGroup.POST("/ai/chat", handlers.Chat)
		apiGroup.POST("/location/reverse-geocode", handlers.ReverseGeocode)

		apiGroup.GET("/review/:productId", handlers.ListReviews)
		apiGroup.POST("/review/add", authRequired(tokens), handlers.AddReview)
	}

	return r
}
