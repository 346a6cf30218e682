package main

import (
	"context"
	"log"
	"os"
	"time"

	apiConfig "register/src/api/config"
	registerUseCase "register/src/register/application/usecase"
	registerCache "register/src/register/infrastructure/cache"
	registerClient "register/src/register/infrastructure/client"
	registerController "register/src/register/infrastructure/controller"
	registerNotification "register/src/register/infrastructure/notification"
	registerPresenter "register/src/register/infrastructure/presenter"
	registerReceipt "register/src/register/infrastructure/receipt"
	sharedConfig "register/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Register Terminal - Iniciando...")

	// Cargar .env si existe (entorno local)
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Variables de entorno cargadas desde .env")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint for Register terminal")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Register terminal")
	}

	// Configurar CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Cliente del backend POS (productos, ventas, reportes)
	backendURL := getEnv("POS_BACKEND_URL", "http://localhost:5000")
	backend := registerClient.NewBackendClientWithURL(backendURL)
	log.Printf("Backend POS: %s", backendURL)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check y documentación)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.Version = "1.0.0"
	apiCfg.BackendURL = backendURL
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo Register
	setupRegisterModule(v1, backend)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Register Terminal iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupRegisterModule configura el módulo Register
func setupRegisterModule(router *gin.RouterGroup, backend *registerClient.BackendClient) {
	log.Println("Configurando módulo Register...")

	// Cache de productos para validar stock en las mutaciones del carrito
	productCache := registerCache.NewProductCache(backend)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := productCache.Refresh(ctx); err != nil {
		log.Printf("⚠️  Warning: Could not load product catalog: %v", err)
		log.Println("⚠️  Continuando con catálogo vacío (refresh manual disponible)")
	}

	// Sesión de caja y colaboradores
	cashier := getEnv("REGISTER_CASHIER", "Kassierer")
	session := registerUseCase.NewRegisterSession(cashier)
	cartPresenter := registerPresenter.NewCartPresenter()
	notifier := registerNotification.NewLogNotifier()
	receipts := registerReceipt.NewFormatter(
		getEnv("RECEIPT_STORE_NAME", ""),
		getEnv("RECEIPT_STORE_TAGLINE", ""),
	)

	// Crear casos de uso
	addItemUC := registerUseCase.NewAddItemUseCase(session, productCache, cartPresenter, notifier)
	scanUC := registerUseCase.NewScanBarcodeUseCase(session, backend, cartPresenter, notifier)
	changeQtyUC := registerUseCase.NewChangeQuantityUseCase(session, productCache, cartPresenter, notifier)
	removeItemUC := registerUseCase.NewRemoveItemUseCase(session, cartPresenter)
	clearCartUC := registerUseCase.NewClearCartUseCase(session, cartPresenter)
	selectPaymentUC := registerUseCase.NewSelectPaymentMethodUseCase(session, cartPresenter)
	setReceivedUC := registerUseCase.NewSetReceivedAmountUseCase(session, cartPresenter)
	completeSaleUC := registerUseCase.NewCompleteSaleUseCase(session, backend, productCache, cartPresenter, notifier, receipts)
	loadCatalogUC := registerUseCase.NewLoadCatalogUseCase(productCache)
	dailyReportUC := registerUseCase.NewDailyReportUseCase(backend)
	listSalesUC := registerUseCase.NewListSalesUseCase(backend)
	getSaleUC := registerUseCase.NewGetSaleUseCase(backend)

	// Crear controladores
	registerCtrl := registerController.NewRegisterController(
		session, addItemUC, scanUC, changeQtyUC, removeItemUC,
		clearCartUC, selectPaymentUC, setReceivedUC, completeSaleUC,
	)
	catalogCtrl := registerController.NewCatalogController(loadCatalogUC, productCache)
	reportCtrl := registerController.NewReportController(dailyReportUC, listSalesUC, getSaleUC)

	// Registrar rutas
	registerCtrl.RegisterRoutes(router)
	catalogCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Register configurado exitosamente")
}
