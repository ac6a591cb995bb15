package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog/internal/dto"
	"catalog/internal/handlers"
	"catalog/internal/mapper"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds a Fiber app over fresh in-memory repositories.
func setupApp() (*fiber.App, *repositories.InMemoryProductRepository) {
	log := zerolog.Nop()
	productRepo := repositories.NewInMemoryProductRepository()
	userRepo := repositories.NewInMemoryUserRepository()

	productService := services.NewProductService(productRepo, mapper.NewProductMapper(), nil, log)
	authService := services.NewAuthService(userRepo, "test_jwt_secret", time.Hour, log)

	validate := handlers.NewValidator()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.RequestLogger(log))

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, validate).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService, validate).RegisterRoutes(apiV1, middleware.AuthRequired(authService))

	return app, productRepo
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// loginToken registers an operator and returns a bearer token.
func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "operator",
		"email":    "operator@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "operator",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decode(t, resp, &loginResp)
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _ := setupApp()

	user := map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", user)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var registerResp map[string]interface{}
	decode(t, resp, &registerResp)
	assert.Equal(t, "User registered successfully", registerResp["message"])
	registered := registerResp["user"].(map[string]interface{})
	assert.NotContains(t, registered, "password")

	// Duplicate registration
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", user)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Wrong password
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "nope-nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Invalid registration body
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"username": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var validationResp map[string]interface{}
	decode(t, resp, &validationResp)
	assert.Equal(t, "Validation failed", validationResp["message"])
	assert.Contains(t, validationResp["errors"], "Email")
}

func TestRegisterCannotTakeOverExistingAccount(t *testing.T) {
	app, _ := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "alice-secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var aliceResp struct {
		User struct {
			ID uuid.UUID `json:"id"`
		} `json:"user"`
	}
	decode(t, resp, &aliceResp)
	aliceID := aliceResp.User.ID
	require.NotEqual(t, uuid.Nil, aliceID)

	// A client supplied id and created time are ignored.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"id":       aliceID,
		"created":  "2001-01-01T00:00:00Z",
		"username": "mallory",
		"email":    "mallory@example.com",
		"password": "mallory-secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var malloryResp struct {
		User struct {
			ID      uuid.UUID `json:"id"`
			Created time.Time `json:"created"`
		} `json:"user"`
	}
	decode(t, resp, &malloryResp)
	assert.NotEqual(t, aliceID, malloryResp.User.ID)
	assert.NotEqual(t, 2001, malloryResp.User.Created.Year())

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice",
		"password": "alice-secret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestProductWritesWithTokenOfUnknownUser(t *testing.T) {
	app, _ := setupApp()

	// Correctly signed, but issued to a user this app never stored.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  uuid.New().String(),
		"username": "ghost",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":  "Smartphone",
		"price": 799.99,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProductLifecycle(t *testing.T) {
	app, repo := setupApp()
	token := loginToken(t, app)

	// Create
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":        "Smartphone",
		"description": "Latest model smartphone",
		"price":       "799.99",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]uuid.UUID
	decode(t, resp, &created)
	id := created["id"]
	require.NotEqual(t, uuid.Nil, id)

	stored, ok := repo.FindByID(id)
	require.True(t, ok)
	assert.False(t, stored.Created.IsZero())

	// Get
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+id.String(), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched dto.InfoProduct
	decode(t, resp, &fetched)
	assert.Equal(t, id, fetched.ID)
	assert.Equal(t, "Smartphone", fetched.Name)
	assert.True(t, decimal.RequireFromString("799.99").Equal(fetched.Price))

	// Update keeps id and creation time
	resp = doJSON(t, app, http.MethodPut, "/api/v1/products/"+id.String(), token, map[string]interface{}{
		"name":        "Smartphone Pro",
		"description": "Pro edition",
		"price":       899.99,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.InfoProduct
	decode(t, resp, &updated)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "Smartphone Pro", updated.Name)
	assert.Equal(t, "Pro edition", updated.Description)
	assert.True(t, decimal.RequireFromString("899.99").Equal(updated.Price))

	afterUpdate, ok := repo.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, stored.Created, afterUpdate.Created)

	// List
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []dto.InfoProduct
	decode(t, resp, &products)
	assert.Len(t, products, 1)

	// Delete
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+id.String(), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleteResp map[string]string
	decode(t, resp, &deleteResp)
	assert.Contains(t, deleteResp["message"], "deleted successfully")

	// Verify deletion
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/"+id.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var notFound map[string]string
	decode(t, resp, &notFound)
	assert.Equal(t, fmt.Sprintf("Product with uuid: %s not found", id), notFound["message"])

	// Deleting again still succeeds
	resp = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+id.String(), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateUnknownProduct(t *testing.T) {
	app, _ := setupApp()
	token := loginToken(t, app)
	id := uuid.New()

	resp := doJSON(t, app, http.MethodPut, "/api/v1/products/"+id.String(), token, map[string]interface{}{
		"name":  "Ghost",
		"price": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, fmt.Sprintf("Product with uuid: %s not found", id), body["message"])
}

func TestProductRequestValidation(t *testing.T) {
	app, _ := setupApp()
	token := loginToken(t, app)

	// Malformed id
	resp := doJSON(t, app, http.MethodGet, "/api/v1/products/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Non-positive price and short name
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name":  "TV",
		"price": "-5",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Price")

	// Missing price
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", token, map[string]interface{}{
		"name": "Television",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Body that is not JSON
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductWritesWithoutAuth(t *testing.T) {
	app, _ := setupApp()
	id := uuid.New().String()

	for _, tc := range []struct {
		method, target, token string
	}{
		{http.MethodPost, "/api/v1/products", ""},
		{http.MethodPut, "/api/v1/products/" + id, ""},
		{http.MethodDelete, "/api/v1/products/" + id, ""},
		{http.MethodDelete, "/api/v1/products/" + id, "garbage"},
	} {
		resp := doJSON(t, app, tc.method, tc.target, tc.token, map[string]interface{}{"name": "Product", "price": 1})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", tc.method, tc.target)
		resp.Body.Close()
	}

	// Reads stay public.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
