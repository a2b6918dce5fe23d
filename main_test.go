package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := openDatabase("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Review{}, &models.Shop{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedProducts(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	// An empty table gets the three demo products
	seedProducts(repo)
	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for _, product := range products {
		// Demo images live under the served /images prefix
		assert.True(t, strings.HasPrefix(product.ImageURL, "/images/"))
	}

	// Seeding never runs once any row exists
	seedProducts(repo)
	products, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestSeedProducts_SkipsNonEmptyTable(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	existing := models.Product{Name: "Уже есть", Price: 1.0}
	assert.NoError(t, repo.Create(&existing))

	seedProducts(repo)
	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Уже есть", products[0].Name)
}

func TestSeedShops(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMShopRepository(db)

	seedShops(repo)
	shops, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, shops, 2)
	for _, shop := range shops {
		assert.NotNil(t, shop.Latitude)
		assert.NotNil(t, shop.Longitude)
	}

	seedShops(repo)
	shops, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, shops, 2)
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	_, err := openDatabase("oracle", "dsn")
	assert.Error(t, err)
}

// newTestApp wires the full application the way main does, over a fresh
// in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db := openTestDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	shopRepo := repositories.NewGORMShopRepository(db)

	return newApp(
		services.NewAuthService(userRepo),
		services.NewProductService(productRepo),
		services.NewReviewService(reviewRepo, userRepo, productRepo),
		services.NewShopService(shopRepo),
		t.TempDir(),
	)
}

func TestAppUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Routing errors still come back in the envelope
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
	resp.Body.Close()
}

func TestAppIndexAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "API работает")
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "healthy")
	resp.Body.Close()
}
