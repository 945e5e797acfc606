package routes

import (
	"context"
	"time"

	_ "cardapio_digital/docs" // swag-generated docs
	"cardapio_digital/internal/adapter/http/handlers"
	repository2 "cardapio_digital/internal/adapter/persistence/repository"
	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/infrastructure/awsclient"
	"cardapio_digital/internal/infrastructure/cache"
	"cardapio_digital/internal/infrastructure/config"
	"cardapio_digital/internal/infrastructure/logging"
	"cardapio_digital/internal/infrastructure/metrics"
	"cardapio_digital/internal/infrastructure/notification"
	"cardapio_digital/internal/infrastructure/resilience"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	log.Printf("[server] listening port=%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	aws := awsclient.Connect(cfg)
	blobBaseURL := repository2.BlobBaseURL(cfg.BlobPublicBaseURL, cfg.S3Endpoint, cfg.BlobBucket, cfg.AWSRegion)

	catalogStore := repository2.NewCatalogS3Store(aws.S3, cfg.BlobBucket, blobBaseURL)
	imageStore := repository2.NewImageS3Store(aws.S3, cfg.BlobBucket, blobBaseURL)
	userRepo := repository2.NewUserDynamoRepository(aws.DynamoDB, cfg.UsersTable)
	sessionRepo := repository2.NewSessionDynamoRepository(aws.DynamoDB, cfg.SessionsTable)
	cartRepo := newCartRepository(cfg)

	catalogUseCase := usecase.NewCatalogUseCase(catalogStore, resilience.NewCircuitBreaker("catalog-store"), restaurantInfo(cfg))
	adminUseCase := usecase.NewAdminCatalogUseCase(catalogUseCase)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogUseCase, cfg.StoreLocation, cfg.HandoffBaseURL)
	authUseCase := usecase.NewAuthUseCase(userRepo, sessionRepo, notification.NewLogVerificationSender(), cfg.SessionTTL)
	imageUseCase := usecase.NewImageUseCase(imageStore)

	bootstrapAdmin(authUseCase, cfg)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)
	imageHandler := handlers.NewImageHandler(imageUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, catalogHandler)
	addCartRoutes(v1, cartHandler)
	addAuthRoutes(v1, authHandler)

	// Rotas administrativas
	addAdminSecretRoutes(v1, cfg.AdminAPISecret, catalogHandler, imageHandler)
	addAdminSessionRoutes(v1, authUseCase, adminHandler)
}

func newCartRepository(cfg config.Config) interfaces.ICartRepository {
	rdb, err := cache.ConnectRedis(context.Background(), cfg)
	if err != nil {
		log.Printf("[cart][routes] redis unavailable, using in-memory carts err=%v", err)
		return repository2.NewCartMemoryRepository(cfg.CartTTL)
	}
	if rdb == nil {
		log.Printf("[cart][routes] REDIS_ADDR not set, using in-memory carts")
		return repository2.NewCartMemoryRepository(cfg.CartTTL)
	}
	return repository2.NewCartRedisRepository(rdb, cfg.CartTTL)
}

func restaurantInfo(cfg config.Config) entities.RestaurantInfo {
	info := defaults.RestaurantInfo()
	if cfg.RestaurantName != "" {
		info.Name = cfg.RestaurantName
	}
	if cfg.RestaurantWhatsApp != "" {
		info.WhatsApp = cfg.RestaurantWhatsApp
	}
	return info
}

func bootstrapAdmin(auth usecase.IAuthUseCase, cfg config.Config) {
	if cfg.AdminBootstrapEmail == "" || cfg.AdminBootstrapPassword == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := auth.BootstrapAdmin(ctx, cfg.AdminBootstrapEmail, cfg.AdminBootstrapPassword); err != nil {
		log.Printf("[auth][routes] admin bootstrap failed email=%s err=%v", cfg.AdminBootstrapEmail, err)
		return
	}
	log.Printf("[auth][routes] admin bootstrap ok email=%s", cfg.AdminBootstrapEmail)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.PrometheusMiddleware())
}
