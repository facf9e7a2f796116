// Package httpapi exposes the marketplace over HTTP.
//
// @title           AppleAura Marketplace API
// @version         1.0
// @description     Catalog, cart, orders, seller and admin endpoints.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"aura/internal/blob"
	"aura/internal/observability"
	"aura/internal/repository"
	"aura/internal/service"
)

// Services everything the handlers call into
type Services struct {
	Auth       *service.AuthService
	Products   *service.ProductService
	Cart       *service.CartService
	Orders     *service.OrderService
	Reviews    *service.ReviewService
	Sellers    *service.SellerService
	Reports    *service.ReportService
	Categories repository.CategoryRepository
	Images     blob.Store
}

type Options struct {
	Logger      *slog.Logger
	ServiceName string
	// AuthRateLimit login and register attempts per minute per client IP; 0 disables
	AuthRateLimit int
}

type Server struct {
	engine  *gin.Engine
	svc     Services
	log     *slog.Logger
	limiter *ipLimiter
}

func NewServer(svc Services, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "aura"
	}
	registerValidators()

	r := gin.New()
	// handlers hand *gin.Context to the services; it must carry the request context
	r.ContextWithFallback = true
	r.MaxMultipartMemory = blob.MaxImageSize
	r.Use(gin.Recovery(), otelgin.Middleware(opts.ServiceName), requestLogger(opts.Logger))

	s := &Server{engine: r, svc: svc, log: opts.Logger}
	if opts.AuthRateLimit > 0 {
		s.limiter = newIPLimiter(opts.AuthRateLimit)
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/metrics", gin.WrapH(observability.MetricsHandler()))
	s.engine.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := s.engine.Group("/api")
	authed := s.authRequired()
	{
		a := api.Group("/auth")
		a.POST("/register", s.rateLimited(), s.register)
		a.POST("/login", s.rateLimited(), s.login)
		a.GET("/me", authed, s.me)

		api.GET("/categories", s.listCategories)

		products := api.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/:id", s.getProduct)
		products.GET("/:id/variants", s.listVariants)
		products.GET("/:id/reviews", s.listReviews)
		products.POST("/:id/reviews", authed, s.createReview)
		products.POST("", authed, s.createProduct)
		products.PUT("/:id", authed, s.updateProduct)
		products.DELETE("/:id", authed, s.deleteProduct)

		seller := api.Group("/seller", authed)
		seller.GET("/profile", s.getSellerProfile)
		seller.POST("/profile", s.createSellerProfile)
		seller.PUT("/profile", s.updateSellerProfile)
		seller.GET("/stats", s.sellerStats)
		seller.GET("/products", s.sellerProducts)
		seller.DELETE("/products/:id", s.deleteProduct)
		seller.GET("/orders", s.sellerOrders)

		cart := api.Group("/cart", authed)
		cart.GET("", s.getCart)
		cart.POST("/add", s.addToCart)
		cart.PUT("/update", s.updateCartItem)
		cart.DELETE("/remove/:variantId", s.removeFromCart)
		cart.DELETE("/clear", s.clearCart)

		orders := api.Group("/orders", authed)
		orders.GET("", s.listOrders)
		orders.POST("", s.createOrder)
		orders.GET("/:id", s.getOrder)
		orders.PUT("/:id/status", s.setOrderStatus)
		orders.POST("/:id/cancel", s.cancelOrder)

		api.POST("/upload", authed, s.uploadImage)
		api.GET("/images/:id", s.getImage)

		admin := api.Group("/admin", authed)
		admin.GET("/stats", s.adminStats)
		admin.GET("/analytics/revenue", s.revenueChart)
		admin.GET("/analytics/categories", s.categoryChart)
		admin.GET("/sellers/pending", s.pendingSellers)
		admin.POST("/sellers/:id/approve", s.approveSeller)
		admin.POST("/sellers/:id/reject", s.rejectSeller)
		admin.GET("/orders", s.adminOrders)
		admin.GET("/users", s.adminUsers)
		admin.GET("/products", s.adminProducts)
	}
}
