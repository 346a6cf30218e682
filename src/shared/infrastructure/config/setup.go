package config

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración de los middlewares compartidos.
type SharedConfig struct {
	EnableCORS     bool
	AllowedOrigins []string // vacío = cualquier origen
}

// DefaultSharedConfig devuelve una configuración por defecto.
// El front del terminal puede servirse desde otro origen, CORS abierto.
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS: true,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos.
func SetupSharedMiddleware(router *gin.Engine, cfg SharedConfig) {
	if cfg.EnableCORS {
		corsCfg := cors.Config{
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}
		if len(cfg.AllowedOrigins) > 0 {
			corsCfg.AllowOrigins = cfg.AllowedOrigins
		} else {
			corsCfg.AllowAllOrigins = true
		}
		router.Use(cors.New(corsCfg))
	}

	// Acá se pueden agregar más middlewares compartidos en el futuro
}
