package routes

import (
	"context"
	"log"
	_ "loki/docs" // This will be auto-generated
	"loki/internal/adapter/http/handlers"
	"loki/internal/adapter/persistence/cache"
	"loki/internal/adapter/persistence/repository"
	"loki/internal/infrastructure/auth"
	"loki/internal/infrastructure/config"
	"loki/internal/infrastructure/database"
	"loki/internal/infrastructure/payments"
	"loki/internal/usecase"
	"loki/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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
	gin.SetMode(cfg.GinMode)

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return err
	}
	if cfg.DynamoDB.AutoCreate {
		if err := database.EnsureTables(ctx, ddb, cfg.DynamoDB.Tables); err != nil {
			return err
		}
	}

	tables := cfg.DynamoDB.Tables
	houseRepo := cache.NewHouseRepository(repository.NewHouseDynamoRepository(ddb, tables.Houses), cfg.CacheTTL)
	profileRepo := cache.NewProfileRepository(repository.NewProfileDynamoRepository(ddb, tables.Profiles), cfg.CacheTTL)
	contactRepo := repository.NewContactDynamoRepository(ddb, tables.Contacts, tables.Payments)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, tables.Payments)
	bookingRepo := repository.NewBookingDynamoRepository(ddb, tables.Bookings, tables.BookingDates)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	if cfg.DevSecret {
		log.Printf("[auth][routes] JWT_SECRET not set; using the development secret")
	}
	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return err
	}

	houseHandler := handlers.NewHouseHandler(usecase.NewHouseUseCase(houseRepo))
	contactHandler := handlers.NewContactHandler(usecase.NewContactUseCase(contactRepo, houseRepo, profileRepo))
	bookingHandler := handlers.NewBookingHandler(usecase.NewBookingUseCase(bookingRepo, houseRepo, profileRepo))
	commissionHandler := handlers.NewCommissionHandler(usecase.NewCommissionUseCase(paymentRepo, paymentGateway))
	profileHandler := handlers.NewProfileHandler(usecase.NewProfileUseCase(profileRepo))
	dashboardHandler := handlers.NewDashboardHandler(usecase.NewDashboardUseCase(contactRepo, bookingRepo, paymentRepo))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHouseRoutes(v1, verifier, houseHandler, contactHandler, bookingHandler)
	addAccountRoutes(v1, verifier, profileHandler, bookingHandler, commissionHandler)
	addAdminRoutes(v1, verifier, contactHandler, bookingHandler, commissionHandler, dashboardHandler)
	return nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
