package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aivault.backend/internal/interfaces/http/handlers"
	"aivault.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	userHandler       *handlers.UserHandler
	businessHandler   *handlers.BusinessHandler
	serviceHandler    *handlers.ServiceHandler
	mediaHandler      *handlers.MediaHandler
	couponHandler     *handlers.CouponHandler
	opInfoHandler     *handlers.OperationalInfoHandler
	aiMetadataHandler *handlers.AiMetadataHandler
	jsonldHandler     *handlers.JsonLDHandler
	visibilityHandler *handlers.VisibilityHandler
	sitemapHandler    *handlers.SitemapHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aivault-backend"})
	})
}

func registerPublicRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/public/sitemap.xml", d.sitemapHandler.Get)
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.userHandler.Login)
			auth.GET("/me", d.authMiddleware, d.userHandler.GetMe)
		}

		// User routes (registration is public, lookups are not)
		users := v1.Group("/users")
		{
			users.POST("", d.userHandler.Register)
			users.GET("", d.authMiddleware, d.userHandler.List)
			users.GET("/by-email/:email", d.authMiddleware, d.userHandler.GetByEmail)
		}

		// Business routes (public read, protected write)
		business := v1.Group("/business")
		{
			business.GET("/directory-view", d.businessHandler.Directory)
			business.GET("/:id", d.businessHandler.GetByID)
			business.POST("", d.authMiddleware, d.businessHandler.Create)
			business.PATCH("/:id", d.authMiddleware, d.businessHandler.Update)
		}

		// Service routes
		services := v1.Group("/services")
		{
			services.GET("/:id", d.serviceHandler.GetByID)
			services.POST("", d.authMiddleware, d.serviceHandler.Create)
		}

		// Media routes
		media := v1.Group("/media")
		{
			media.GET("/:id", d.mediaHandler.GetByID)
			media.POST("", d.authMiddleware, d.mediaHandler.Create)
		}

		// Coupon routes
		coupons := v1.Group("/coupons")
		{
			coupons.GET("/:id", d.couponHandler.GetByID)
			coupons.POST("", d.authMiddleware, d.couponHandler.Create)
		}

		// Operational info routes
		opInfo := v1.Group("/operational-info")
		{
			opInfo.GET("/:id", d.opInfoHandler.GetByID)
			opInfo.POST("", d.authMiddleware, d.opInfoHandler.Create)
		}

		// AI metadata routes (generation is idempotency-aware)
		aiMetadata := v1.Group("/ai-metadata")
		{
			aiMetadata.POST("/generate", d.authMiddleware, middleware.IdempotencyMiddleware(), d.aiMetadataHandler.Generate)
			aiMetadata.GET("/:id", d.aiMetadataHandler.GetByID)
		}

		// JSON-LD feed routes
		jsonld := v1.Group("/jsonld")
		{
			jsonld.POST("/generate", d.authMiddleware, middleware.IdempotencyMiddleware(), d.jsonldHandler.Generate)
			jsonld.GET("/:id", d.jsonldHandler.GetByID)
		}

		// Visibility routes
		visibility := v1.Group("/visibility")
		visibility.Use(d.authMiddleware)
		{
			visibility.POST("/run", middleware.IdempotencyMiddleware(), d.visibilityHandler.Run)
			visibility.POST("/external", d.visibilityHandler.AuditExternal)
			visibility.POST("/check", d.visibilityHandler.CreateCheckRequest)
			visibility.GET("/check/:id", d.visibilityHandler.GetCheckRequest)
			visibility.POST("/result", d.visibilityHandler.CreateResult)
			visibility.GET("/result/:id", d.visibilityHandler.GetResult)
			visibility.POST("/suggestion", d.visibilityHandler.CreateSuggestion)
			visibility.GET("/suggestion/:id", d.visibilityHandler.GetSuggestion)
		}
	}
}
