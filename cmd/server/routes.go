package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brand-connector.backend/internal/domain/entities"
	"brand-connector.backend/internal/interfaces/http/handlers"
	"brand-connector.backend/internal/interfaces/http/middleware"
	"brand-connector.backend/internal/interfaces/http/response"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	brandHandler      *handlers.BrandHandler
	influencerHandler *handlers.InfluencerHandler
	authMiddleware    gin.HandlerFunc
	authRateLimit     gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", strings.Join([]string{
			"Authorization",
			"Content-Type",
			middleware.RequestIDHeader,
			middleware.IdempotencyHeader,
		}, ", "))
		c.Header("Access-Control-Expose-Headers", middleware.RequestIDHeader+", "+response.TotalCountHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "brand-connector-backend",
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	requireBrand := middleware.RequireRole(entities.RoleBrand)
	requireInfluencer := middleware.RequireRole(entities.RoleInfluencer)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, rate limited per IP)
		auth := v1.Group("/auth")
		auth.Use(d.authRateLimit)
		{
			auth.POST("/signup", middleware.IdempotencyMiddleware(), d.authHandler.Signup)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		brands := v1.Group("/brands")
		{
			brands.GET("/filter", d.brandHandler.Filter)
			brands.GET("/trending", d.influencerHandler.Trending)
			brands.PUT("/update", d.authMiddleware, requireBrand, d.brandHandler.Update)
			brands.PUT("/:id/update", d.authMiddleware, requireBrand, d.brandHandler.UpdateByID)
		}

		influencers := v1.Group("/influencers")
		{
			influencers.GET("/filter", d.influencerHandler.Filter)
			influencers.GET("/trending", d.influencerHandler.Trending)
			influencers.GET("/suggestions", d.authMiddleware, requireInfluencer, d.brandHandler.Suggestions)
			influencers.PUT("/update", d.authMiddleware, requireInfluencer, d.influencerHandler.Update)
			influencers.POST("/:id/verify-reach", d.authMiddleware, requireBrand, middleware.IdempotencyMiddleware(), d.influencerHandler.VerifyReach)
		}
	}
}
