package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lavka/internal/handlers"
	"lavka/internal/middleware"
	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "lavka.db?_fk=1")
	viper.SetDefault("IMAGES_DIR", "./images")
	viper.AutomaticEnv()

	appPort := ":" + viper.GetString("PORT")

	// --- Database ---
	// The handle is opened once here and held for the process lifetime.
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}, &models.Shop{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	shopRepo := repositories.NewGORMShopRepository(db)

	// Seed demo rows on an empty store
	seedProducts(productRepo)
	seedShops(shopRepo)

	// --- Services ---
	authService := services.NewAuthService(userRepo)
	productService := services.NewProductService(productRepo)
	reviewService := services.NewReviewService(reviewRepo, userRepo, productRepo)
	shopService := services.NewShopService(shopRepo)

	// --- Fiber App ---
	app := newApp(authService, productService, reviewService, shopService, viper.GetString("IMAGES_DIR"))

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

	// In-flight requests are not drained beyond what Shutdown does; the
	// persistence handle closes last.
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	log.Println("Server gracefully stopped")
}

// newApp builds the Fiber app with middleware, static assets and all routes.
func newApp(
	authService *services.AuthService,
	productService *services.ProductService,
	reviewService *services.ReviewService,
	shopService *services.ShopService,
	imagesDir string,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(cors.New()) // All origins, per the frontend contract

	// Product images are served verbatim
	app.Static("/images", imagesDir)

	// --- API Routes ---
	api := app.Group("/api")

	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api)
	handlers.NewShopHandler(shopService).RegisterRoutes(api)

	// --- Index & Health Endpoints ---
	app.Get("/", handleIndex)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// errorHandler is the catch-all for errors no handler mapped. Routing errors
// keep their status; everything else is logged and flattened to a generic 500
// so internal detail never leaks.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(handlers.Envelope{
			Success: false,
			Error:   fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(handlers.Envelope{
		Success: false,
		Error:   handlers.MsgInternalError,
	})
}

// handleIndex describes the API surface, mirroring what the frontend probes.
func handleIndex(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "API работает",
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"register": "POST /api/register",
				"login":    "POST /api/login",
			},
			"products": fiber.Map{
				"getAll":  "GET /api/products",
				"getById": "GET /api/products/:id",
				"create":  "POST /api/products",
			},
			"reviews": fiber.Map{
				"getByProduct": "GET /api/products/:id/reviews",
				"getByUser":    "GET /api/users/:id/reviews",
				"create":       "POST /api/reviews",
			},
			"shops": fiber.Map{
				"getAll": "GET /api/shops",
				"create": "POST /api/shops",
			},
		},
	})
}

// openDatabase opens the configured GORM dialect. sqlite is the default and
// runs with foreign keys on; postgres is selectable for deployments that
// outgrow a local file.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

// seedProducts inserts the demo catalog when the products table is empty.
func seedProducts(repo repositories.ProductRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Error checking products for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			Name:        "Смартфон iPhone 15",
			Price:       89999.00,
			Description: "Новейший смартфон Apple с отличной камерой и производительностью",
			ImageURL:    "/images/iphone15.png",
			Category:    "Электроника",
		},
		{
			Name:        "Ноутбук Apple MacBook Pro",
			Price:       159999.00,
			Description: "Мощный ноутбук для работы и развлечений",
			ImageURL:    "/images/macbook.png",
			Category:    "Компьютеры",
		},
		{
			Name:        "Беспроводные наушники",
			Price:       2999.00,
			Description: "Качественные беспроводные наушники с шумоподавлением",
			ImageURL:    "/images/headphones.png",
			Category:    "Аксессуары",
		},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
		}
	}
}

// seedShops inserts the demo store locations when the shops table is empty.
func seedShops(repo repositories.ShopRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Error checking shops for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	lat1, lng1 := 55.7558, 37.6176
	lat2, lng2 := 55.7950, 37.6400
	shops := []models.Shop{
		{Address: "ул. Тверская, 1", Phone: "+7 (495) 123-45-67", Latitude: &lat1, Longitude: &lng1},
		{Address: "пр. Мира, 15", Phone: "+7 (495) 234-56-78", Latitude: &lat2, Longitude: &lng2},
	}

	for i := range shops {
		if err := repo.Create(&shops[i]); err != nil {
			log.Printf("Error seeding shop %s: %v", shops[i].Address, err)
		} else {
			log.Printf("Seeded shop: %s (ID: %d)", shops[i].Address, shops[i].ID)
		}
	}
}
