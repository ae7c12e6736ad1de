package routes

import (
	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/config"
	"storefront/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) error {
	// Initialize services
	authService, err := services.NewAuthService(cfg)
	if err != nil {
		return err
	}
	enquiryService := services.NewEnquiryService()
	productService := services.NewProductService()
	uploadService := services.NewUploadService(cfg.Uploads.Dir)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	productHandler := handlers.NewProductHandler(productService, uploadService)

	// Middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Liveness
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/enquiry", enquiryHandler.Create)
		api.GET("/products", productHandler.List)

		admin := api.Group("/admin")
		{
			// Login and logout stay outside the session gate: login has no
			// session yet, logout must succeed with any cookie state
			admin.POST("/login", authHandler.Login)
			admin.POST("/logout", authHandler.Logout)

			protected := admin.Group("")
			protected.Use(middleware.AuthMiddleware(authService))
			{
				protected.GET("/enquiries", enquiryHandler.List)
				protected.POST("/products", productHandler.Create)
				protected.PUT("/products/:id", productHandler.Update)
				protected.DELETE("/products/:id", productHandler.Delete)
			}
		}
	}

	return nil
}
