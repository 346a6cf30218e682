package controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"register/src/register/application/usecase"
)

// ReportController maneja las peticiones HTTP de reportes e historial
// de ventas. Passthrough al backend: la agregación vive del lado servidor.
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
	listSalesUC   *usecase.ListSalesUseCase
	getSaleUC     *usecase.GetSaleUseCase
}

// NewReportController crea una nueva instancia del controlador.
func NewReportController(
	dailyReportUC *usecase.DailyReportUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	getSaleUC *usecase.GetSaleUseCase,
) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
		listSalesUC:   listSalesUC,
		getSaleUC:     getSaleUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
}

// DailyReport retorna el reporte diario de ventas.
// Sin query param 'date' se usa la fecha de hoy.
func (c *ReportController) DailyReport(ctx *gin.Context) {
	date := ctx.Query("date")

	report, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		log.Printf("Error fetching daily report: %v", err)
		if strings.Contains(err.Error(), "invalid date format") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// ListSales retorna las ventas más recientes.
func (c *ReportController) ListSales(ctx *gin.Context) {
	sales, err := c.listSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"sales":       sales,
		"total_count": len(sales),
	})
}

// GetSale retorna el detalle de una venta persistida.
func (c *ReportController) GetSale(ctx *gin.Context) {
	saleID, err := strconv.ParseInt(ctx.Param("sale_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id"})
		return
	}

	sale, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		log.Printf("Error fetching sale %d: %v", saleID, err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sale)
}
