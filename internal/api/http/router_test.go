package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/admin-dashboard/internal/auth"
	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/service"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App:   config.AppConfig{Name: "admin-dashboard", Version: "test"},
		Store: config.StoreConfig{KeyPrefix: "test_"},
		Auth: config.AuthConfig{
			AdminUsername:         "admin",
			AdminPassword:         "admin",
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
	logger := zap.NewNop()
	blobs := blobstore.NewMemoryStore()

	collections := store.NewCollections(cfg.Store, blobs, logger)
	require.NoError(t, collections.SeedDefaults(context.Background()))

	authService, err := service.NewAuthService(cfg, blobs, logger)
	require.NoError(t, err)

	app := fiber.New()
	RegisterMiddlewares(app, logger, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, blobs),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(service.NewUserService(collections.Users)),
		Tickets:        handlers.NewTicketsHandler(service.NewTicketService(collections.Tickets)),
		Products:       handlers.NewProductsHandler(service.NewProductService(collections.Products)),
		Orders:         handlers.NewOrdersHandler(service.NewOrderService(collections.Orders)),
		Dashboard:      handlers.NewDashboardHandler(service.NewStatsService(collections.Users, collections.Tickets, collections.Orders)),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/auth/login", "", map[string]string{
		"username": "admin", "password": "admin",
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	return data["auth"].(map[string]any)["token"].(string)
}

func TestLoginAndListUsers(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "GET", "/api/users/", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 5)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/auth/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["error"].(map[string]any)["code"])
}

func TestAPIRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/users/", "", nil)
	require.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]any)["code"])
}

func TestTicketCommentFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "POST", "/api/tickets/TKT-001/comments", token, map[string]string{
		"content": "Looking into it.", "authorId": "1",
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	comment := body["data"].(map[string]any)
	assert.Equal(t, "Looking into it.", comment["content"])
	assert.NotEmpty(t, comment["id"])

	resp, body = doJSON(t, app, "GET", "/api/tickets/TKT-001", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	ticket := body["data"].(map[string]any)
	assert.Len(t, ticket["comments"], 2)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "GET", "/api/dashboard/stats", token, nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["totalUsers"])
	assert.Equal(t, float64(4), data["activeUsers"])
	assert.Equal(t, float64(1), data["openTickets"])
}

func TestUpdateMissingTicketReturnsNotFound(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, "PATCH", "/api/tickets/ghost", token, map[string]string{
		"subject": "anything",
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/health/live", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "alive", body["status"])

	resp, body = doJSON(t, app, "GET", "/health/ready", "", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}
