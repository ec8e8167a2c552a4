package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/api/http/handlers"
	"github.com/manga-catalog/admin-gateway/internal/config"
	"github.com/manga-catalog/admin-gateway/internal/events"
	"github.com/manga-catalog/admin-gateway/internal/gateway"
	"github.com/manga-catalog/admin-gateway/internal/observability"
	"github.com/manga-catalog/admin-gateway/internal/repository"
	"github.com/manga-catalog/admin-gateway/internal/service"
)

const (
	testCookieName = "admin_token"
	validToken     = "tok-1"
)

// fakeBackend emulates the slice of the catalog API the panel talks to.
type fakeBackend struct {
	mux *nethttp.ServeMux

	lastAuthHeader string
	deleteManyBody string
	logoutCalls    int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{mux: nethttp.NewServeMux()}

	b.mux.HandleFunc("/auth", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case nethttp.MethodPost:
			var creds struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&creds)
			if creds.Email == "admin@example.com" && creds.Password == "secret" {
				_, _ = w.Write([]byte(`{"success":true,"data":{"token":"tok-1","type":"bearer"},"code":200}`))
				return
			}
			w.WriteHeader(nethttp.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"These credentials do not match our records.","code":401}`))
		case nethttp.MethodGet:
			if r.Header.Get("Authorization") != "Bearer "+validToken {
				w.WriteHeader(nethttp.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"message":"Unauthenticated.","code":401}`))
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"u1","name":"Admin","email":"admin@example.com","roles":["admin"]},"code":200}`))
		case nethttp.MethodDelete:
			b.logoutCalls++
			_, _ = w.Write([]byte(`{"success":true,"data":null,"code":200}`))
		}
	})

	b.mux.HandleFunc("/statics/basic", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"total_users":3,"total_mangas":9,"total_chapters":27,"total_pets":1},"code":200}`))
	})

	b.mux.HandleFunc("/mangas", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		b.lastAuthHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case nethttp.MethodGet:
			_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"m1","name":"Blame!","slug":"blame","status":"completed"}],"code":200,` +
				`"pagination":{"count":1,"total":1,"perPage":15,"currentPage":1,"totalPages":1,"links":{}}}`))
		case nethttp.MethodPost:
			var payload struct {
				Name string `json:"name"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			if payload.Name == "" {
				w.WriteHeader(nethttp.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"success":false,"message":"The given data was invalid.","code":422,"errors":{"name":["The name field is required."]}}`))
				return
			}
			w.WriteHeader(nethttp.StatusCreated)
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":"m2","name":"` + payload.Name + `"},"code":201}`))
		}
	})

	b.mux.HandleFunc("/chapters/delete-many", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, _ := io.ReadAll(r.Body)
		b.deleteManyBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null,"code":200}`))
	})

	return b
}

func newPanelApp(t *testing.T, backend *fakeBackend) *fiber.App {
	t.Helper()

	server := httptest.NewServer(backend.mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		App:     config.AppConfig{Name: "panel-test", Env: "development"},
		Backend: config.BackendConfig{BaseURL: server.URL, TimeoutSeconds: 2},
		Auth:    config.AuthConfig{CookieName: testCookieName, TokenTTLDays: 7, StatsCacheTTLSec: 60},
	}

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	api, err := gateway.NewClient(cfg.Backend, logger, metrics)
	require.NoError(t, err)

	dispatcher := events.NewInMemoryDispatcher(logger)
	statsService := service.NewStatisticsService(api, nil, cfg.Auth.StatsCacheTTL(), logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	RegisterMiddlewares(app, logger, metrics, 0)
	app.Use(SessionMiddleware(cfg, api, dispatcher, logger))

	RegisterRoutes(app, RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, "test", nil),
		Auth:       handlers.NewAuthHandler(),
		Navigation: handlers.NewNavigationHandler(),
		Dashboard:  handlers.NewDashboardHandler(statsService),
		Mangas:     handlers.NewResourceHandler(repository.NewMangaRepository(api).Resource),
		Chapters:   handlers.NewChaptersHandler(repository.NewChapterRepository(api)),
		Artists:    handlers.NewResourceHandler(repository.NewArtistRepository(api).Resource),
		Groups:     handlers.NewResourceHandler(repository.NewGroupRepository(api).Resource),
		Doujinshis: handlers.NewResourceHandler(repository.NewDoujinshiRepository(api).Resource),
		Genres:     handlers.NewResourceHandler(repository.NewGenreRepository(api).Resource),
		Users:      handlers.NewResourceHandler(repository.NewUserRepository(api).Resource),
	})
	return app
}

func jsonRequest(method, target, body string) *nethttp.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func withSession(req *nethttp.Request) *nethttp.Request {
	req.AddCookie(&nethttp.Cookie{Name: testCookieName, Value: validToken})
	return req
}

func decodeBody(t *testing.T, resp *nethttp.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func findCookie(resp *nethttp.Response, name string) *nethttp.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsCredentialCookie(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/panel/auth/login", `{"email":"admin@example.com","password":"secret"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Logged in", data["message"])
	assert.Equal(t, "Admin", data["user"].(map[string]any)["name"])

	cookie := findCookie(resp, testCookieName)
	require.NotNil(t, cookie, "login must persist the token cookie")
	assert.Equal(t, validToken, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, nethttp.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "secure is off outside production")
	assert.True(t, cookie.Expires.After(time.Now().Add(6*24*time.Hour)), "cookie lives for seven days")
}

func TestLoginRejectionEchoesBackendMessage(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/panel/auth/login", `{"email":"admin@example.com","password":"nope"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "These credentials do not match our records.", body["message"])
	assert.Nil(t, findCookie(resp, testCookieName))
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/panel/auth/login", `{"email":"admin@example.com"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestGuestGuardRedirectsAuthenticatedLogin(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	req := withSession(jsonRequest(fiber.MethodPost, "/panel/auth/login", `{"email":"admin@example.com","password":"secret"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAuthGuardRedirectsAnonymous(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	for _, target := range []string{"/panel/dashboard", "/panel/navigation", "/panel/mangas", "/panel/auth/profile"} {
		resp, err := app.Test(jsonRequest(fiber.MethodGet, target, ""), -1)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusFound, resp.StatusCode, target)
		assert.Equal(t, "/login", resp.Header.Get("Location"), target)
	}
}

func TestDashboardServesCountersWithSession(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodGet, "/panel/dashboard", "")), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	stats := body["data"].(map[string]any)
	assert.Equal(t, float64(9), stats["total_mangas"])
}

func TestMangaListForwardsBearerAndPagination(t *testing.T) {
	backend := newFakeBackend()
	app := newPanelApp(t, backend)

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodGet, "/panel/mangas", "")), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	assert.Equal(t, "Bearer "+validToken, backend.lastAuthHeader)

	body := decodeBody(t, resp)
	page := body["pagination"].(map[string]any)
	assert.Equal(t, float64(15), page["perPage"])
	assert.Equal(t, float64(1), page["currentPage"])
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Blame!", items[0].(map[string]any)["name"])
}

func TestMangaCreateRelaysValidationErrors(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodPost, "/panel/mangas", `{"name":""}`)), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "The given data was invalid.", body["message"])
	fieldErrors := body["errors"].(map[string]any)
	assert.Contains(t, fieldErrors, "name")
}

func TestChapterDeleteManyPassesIDs(t *testing.T) {
	backend := newFakeBackend()
	app := newPanelApp(t, backend)

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodPut, "/panel/chapters/delete-many", `{"ids":["c1","c2"]}`)), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ids":["c1","c2"]}`, backend.deleteManyBody)
}

func TestChapterDeleteManyRequiresIDs(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodPut, "/panel/chapters/delete-many", `{"ids":[]}`)), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsCookieAndIsIdempotent(t *testing.T) {
	backend := newFakeBackend()
	app := newPanelApp(t, backend)

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodDelete, "/panel/auth/logout", "")), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "/login", body["data"].(map[string]any)["redirect"])

	cookie := findCookie(resp, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()), "cookie must be expired")

	// a second logout without any session still succeeds
	resp, err = app.Test(jsonRequest(fiber.MethodDelete, "/panel/auth/logout", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, backend.logoutCalls, "only the first logout reaches the backend")
}

func TestProfileWithStaleTokenExpiresSession(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	req := jsonRequest(fiber.MethodGet, "/panel/auth/profile", "")
	req.AddCookie(&nethttp.Cookie{Name: testCookieName, Value: "stale"})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "session expired", body["message"])

	cookie := findCookie(resp, testCookieName)
	require.NotNil(t, cookie, "revoked session must drop the cookie")
	assert.Empty(t, cookie.Value)
}

func TestProfileReturnsUserForValidSession(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodGet, "/panel/auth/profile", "")), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", user["email"])
}

func TestNavigationListsPanelMenu(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	resp, err := app.Test(withSession(jsonRequest(fiber.MethodGet, "/panel/navigation", "")), -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	items := body["data"].([]any)
	require.NotEmpty(t, items)
	assert.Equal(t, "Dashboard", items[0].(map[string]any)["label"])
}

func TestHealthProbesAreOpen(t *testing.T) {
	app := newPanelApp(t, newFakeBackend())

	for _, target := range []string{"/health/live", "/health/ready"} {
		resp, err := app.Test(jsonRequest(fiber.MethodGet, target, ""), -1)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode, target)
	}
}
