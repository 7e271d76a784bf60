package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/handlers"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	cartmod "github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/cart"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/contact"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/users"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/storage"
)

// Deps is the explicit service context; everything is constructed in
// cmd/web and passed down, no ambient globals.
type Deps struct {
	Logger      *slog.Logger
	Users       *users.Service
	Tokens      *users.Tokens
	Catalog     *catalog.Service
	Cart        *cartmod.Service
	Orders      *orders.Service
	Payments    *payments.Service
	Contact     *contact.Service
	Images      storage.Storage
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(corsMiddleware(d.CORSOrigins))
	r.Use(middleware.BearerAuth(d.Tokens, d.Users))

	authH := handlers.NewAuthHandler(d.Users, d.Orders)
	catalogH := handlers.NewCatalogHandler(d.Catalog, d.Images)
	cartH := handlers.NewCartHandler(d.Cart)
	ordersH := handlers.NewOrdersHandler(d.Orders)
	checkoutH := handlers.NewCheckoutHandler(d.Payments)
	webhookH := handlers.NewWebhookHandler(d.Logger, d.Payments)
	contactH := handlers.NewContactHandler(d.Contact)
	miscH := handlers.NewMiscHandler(d.Catalog)

	api := r.Group("/api")
	{
		api.GET("/", miscH.Root)
		api.POST("/seed", miscH.Seed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authH.Register)
			auth.POST("/login", authH.Login)
			auth.GET("/me", middleware.RequireAuth(), authH.Me)
			auth.PUT("/profile", middleware.RequireAuth(), authH.UpdateProfile)
			auth.GET("/orders", middleware.RequireAuth(), authH.MyOrders)
		}

		api.GET("/categories", catalogH.ListCategories)
		api.POST("/categories", catalogH.CreateCategory)

		api.GET("/products", catalogH.ListProducts)
		api.GET("/products/:id", catalogH.GetProduct)
		api.POST("/products", catalogH.CreateProduct)
		api.PUT("/products/:id", catalogH.UpdateProduct)
		api.DELETE("/products/:id", catalogH.DeleteProduct)
		api.POST("/products/:id/image", catalogH.UploadProductImage)

		cart := api.Group("/cart/:session_id")
		{
			cart.GET("", cartH.Get)
			cart.POST("/add", cartH.Add)
			cart.POST("/update", cartH.Update)
			cart.DELETE("/item/:product_id", cartH.Remove)
			cart.DELETE("", cartH.Clear)
		}

		api.POST("/orders", ordersH.Create)
		api.GET("/orders/:id", ordersH.Get)
		api.GET("/orders", ordersH.List)

		api.POST("/checkout/session", checkoutH.CreateSession)
		api.GET("/checkout/status/:session_id", checkoutH.Status)
		api.POST("/webhook/stripe", webhookH.Stripe)

		api.POST("/contact", contactH.Create)
		api.GET("/contact", contactH.List)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
