package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "cartrans-backend/internal/config"
	h "cartrans-backend/internal/http/handlers"
	"cartrans-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, pricing intconfig.Pricing) *gin.Engine {
	h.Configure(env, pricing)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	adminGuard := middleware.AdminRequired([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/admin/login", h.AdminLogin)

		// Cities (public reads, admin mutation)
		cities := api.Group("/cities")
		cities.GET("", h.GetCities)
		cities.GET("/:id", h.GetCityByID)
		adminCities := api.Group("/admin/cities", adminGuard)
		adminCities.GET("", h.GetCities)
		adminCities.POST("", h.CreateCity)
		adminCities.PUT("/:id", h.UpdateCity)
		adminCities.DELETE("/:id", h.DeleteCity)

		// Tariffs (public reads, admin mutation)
		tariffs := api.Group("/tariffs")
		tariffs.GET("", h.GetTariffs)
		tariffs.GET("/:id", h.GetTariffByID)
		adminTariffs := api.Group("/admin/tariffs", adminGuard)
		adminTariffs.GET("", h.GetTariffs)
		adminTariffs.GET("/:id", h.GetTariffByID)
		adminTariffs.POST("", h.CreateTariff)
		adminTariffs.PUT("/:id", h.UpdateTariff)

		// Users
		users := api.Group("/users")
		users.POST("", h.CreateUser)
		users.GET("/by-phone", h.GetUserByPhone)
		users.GET("/:id", h.GetUserByID)

		// Orders
		orders := api.Group("/orders")
		orders.POST("/calculate", h.CalculateOrder)
		orders.POST("", h.CreateOrder)
		orders.GET("/admin/list", adminGuard, h.ListOrdersAdmin)
		orders.PATCH("/admin/:id/payment-status", adminGuard, h.UpdateOrderPaymentStatus)
		orders.GET("/:id", h.GetOrderByID)
		orders.GET("/:id/invoice", h.GetOrderInvoicePDF)

		// Payment simulator
		payment := api.Group("/payment")
		payment.POST("/process", h.ProcessPayment)
	}

	return r
}
