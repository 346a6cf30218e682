package config

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API (health y docs).
type APIConfig struct {
	Version    string
	BackendURL string
}

// DefaultAPIConfig devuelve una configuración por defecto.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version: "dev",
	}
}

// SetupAPIModule registra health check y documentación de la API.
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	health := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"service":     "register-terminal",
			"version":     cfg.Version,
			"backend_url": cfg.BackendURL,
			"time":        time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", health)
	v1.GET("/health", health)

	router.GET("/api-docs", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"service": "register-terminal",
			"endpoints": []string{
				"GET    /health",
				"GET    /api/v1/health",
				"GET    /api/v1/cart",
				"POST   /api/v1/cart/items",
				"POST   /api/v1/cart/scan",
				"PATCH  /api/v1/cart/items/:index/quantity",
				"DELETE /api/v1/cart/items/:index",
				"POST   /api/v1/cart/clear",
				"POST   /api/v1/cart/payment-method",
				"POST   /api/v1/cart/received-amount",
				"POST   /api/v1/cart/checkout",
				"GET    /api/v1/products",
				"POST   /api/v1/products/refresh",
				"GET    /api/v1/sales",
				"GET    /api/v1/sales/:sale_id",
				"GET    /api/v1/reports/daily?date=YYYY-MM-DD",
			},
		})
	})
}
