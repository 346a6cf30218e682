package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"register/src/register/application/usecase"
)

// CatalogController maneja las peticiones HTTP del catálogo de productos.
type CatalogController struct {
	loadCatalogUC *usecase.LoadCatalogUseCase
	cache         usecase.CatalogLister
}

// NewCatalogController crea una nueva instancia del controlador.
func NewCatalogController(loadCatalogUC *usecase.LoadCatalogUseCase, cache usecase.CatalogLister) *CatalogController {
	return &CatalogController{
		loadCatalogUC: loadCatalogUC,
		cache:         cache,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("/refresh", c.RefreshCatalog)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products/refresh")
}

// ListProducts retorna el catálogo cacheado ordenado por nombre.
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	products := c.cache.All()
	ctx.JSON(http.StatusOK, gin.H{
		"products":    products,
		"total_count": len(products),
	})
}

// RefreshCatalog recarga el catálogo desde el backend y lo retorna.
func (c *CatalogController) RefreshCatalog(ctx *gin.Context) {
	products, err := c.loadCatalogUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error refreshing catalog: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products":    products,
		"total_count": len(products),
	})
}
