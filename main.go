package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moreyacht/internal/cache"
	"moreyacht/internal/handlers"
	"moreyacht/internal/middleware"
	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"
	"moreyacht/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "moreyacht.db")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CATALOG_CACHE_TTL", "5m")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Yacht{},
		&models.User{},
		&models.Order{},
		&models.Booking{},
		&models.RentalService{},
		&models.Review{},
		&models.CustomReport{},
		&models.ReportTemplate{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Without a broker the services still work, events are just dropped.
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// --- Redis catalog cache (optional) ---
	var catalogCache services.CatalogCache
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		ttl := viper.GetDuration("CATALOG_CACHE_TTL")
		redisCache := cache.NewRedisCache(cache.Config{
			Addr:     addr,
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		}, ttl)
		defer redisCache.Close()
		catalogCache = redisCache
	} else {
		log.Println("REDIS_ADDR not set, catalog cache disabled")
	}

	// --- Repositories ---
	yachtRepo := repositories.NewGORMYachtRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)
	serviceRepo := repositories.NewGORMRentalServiceRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	reportRepo := repositories.NewGORMReportRepository(db)

	seedDatabase(yachtRepo, serviceRepo, userRepo, reportRepo)

	// --- Services ---
	// EventPublisher is *rabbitmq.Client behind an interface; a nil client
	// means "drop events", which every service tolerates.
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}

	catalogService := services.NewCatalogService(yachtRepo, catalogCache)
	cartService := services.NewCartService(yachtRepo)
	orderService := services.NewOrderService(orderRepo, cartService, publisher)
	bookingService := services.NewBookingService(bookingRepo, yachtRepo, serviceRepo, publisher)
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(reviewRepo, yachtRepo, userRepo)
	analyticsService := services.NewAnalyticsService(bookingRepo, yachtRepo, reportRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	yachtHandler := handlers.NewYachtHandler(catalogService, bookingService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	adminUserHandler := handlers.NewAdminUserHandler(userService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)
	yachtHandler.RegisterRoutes(apiV1)
	bookingHandler.RegisterPublicRoutes(apiV1)

	// Authenticated customer routes
	authed := apiV1.Group("", middleware.AuthRequired(authService))
	cartHandler.RegisterRoutes(authed)
	orderHandler.RegisterRoutes(authed)
	bookingHandler.RegisterRoutes(authed)
	reviewHandler.RegisterRoutes(authed)

	// Back-office routes
	admin := apiV1.Group("/admin", middleware.AuthRequired(authService), middleware.AdminRequired())
	yachtHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	bookingHandler.RegisterAdminRoutes(admin)
	reviewHandler.RegisterAdminRoutes(admin)
	adminUserHandler.RegisterRoutes(admin)
	analyticsHandler.RegisterRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- RabbitMQ Consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for charter events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received charter event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured database. Postgres for deployments,
// SQLite for local development.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	if driver == "postgres" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
