package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"worklog/app"
	"worklog/config"
	"worklog/config/setup"
	"worklog/database"
	"worklog/identity"
	"worklog/models"
	"worklog/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// The identity middleware and server setup read the loaded config
	config.AppConfig = &config.Config{
		Port:         "0",
		Env:          "test",
		IdentityMode: config.IdentityModeDynamic,
	}
	os.Exit(m.Run())
}

// setupTestApp wires a Fiber app over a temporary database. The resolver
// defaults to dynamic; pass one to override.
func setupTestApp(t *testing.T, resolver identity.Resolver) (*fiber.App, *app.App, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "worklog-handlers-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	repo := database.NewRepository(db)
	sessionStore := session.NewStore()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if resolver == nil {
		resolver = identity.NewDynamic(repo, sessionStore, "")
	}
	if fixed, ok := resolver.(identity.Fixed); ok {
		// The constant identity must exist as a row so foreign keys hold
		require.NoError(t, repo.CreateUser(&models.User{ID: fixed.UserID}))
	}

	application := app.New(repo, sessionStore, resolver, logger)

	fiberApp := setup.NewFiberApp(logger)
	setup.RegisterRoutes(fiberApp, application)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return fiberApp, application, cleanup
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, target string, body interface{}, cookies []*http.Cookie) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func TestAnonymousIdentityFlow(t *testing.T) {
	fiberApp, _, cleanup := setupTestApp(t, nil)
	defer cleanup()

	// First contact provisions an anonymous principal and issues a cookie
	resp := doJSON(t, fiberApp, http.MethodGet, "/api/sessions", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	var sessionCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == "session_id" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "expected a session cookie on first contact")

	body := decodeBody(t, resp)
	assert.Empty(t, body["sessions"])

	// Identity is stable across requests carrying the cookie
	resp = doJSON(t, fiberApp, http.MethodGet, "/api/me", nil, []*http.Cookie{sessionCookie})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	me := decodeBody(t, resp)
	userID, _ := me["user_id"].(string)
	require.NotEmpty(t, userID)
	assert.Equal(t, true, me["anonymous"])

	// A created session is owned by the resolved identity
	resp = doJSON(t, fiberApp, http.MethodPost, "/api/sessions", fiber.Map{
		"date":       "2024-03-05",
		"start_time": "09:00",
		"end_time":   "11:00",
		"hours":      2,
	}, []*http.Cookie{sessionCookie})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	sessionRow, _ := created["session"].(map[string]interface{})
	require.NotNil(t, sessionRow)
	assert.Equal(t, userID, sessionRow["user_id"])
	assert.NotEmpty(t, sessionRow["id"])
}

func TestCrossUserIsolation(t *testing.T) {
	fiberApp, _, cleanup := setupTestApp(t, nil)
	defer cleanup()

	// Two cookie-less requests resolve to two distinct principals
	respA := doJSON(t, fiberApp, http.MethodPost, "/api/sessions", fiber.Map{
		"date": "2024-03-05", "start_time": "09:00", "end_time": "10:00", "hours": 1,
	}, nil)
	require.Equal(t, http.StatusCreated, respA.StatusCode)
	cookieA := respA.Cookies()[0]
	bodyA := decodeBody(t, respA)
	rowA, _ := bodyA["session"].(map[string]interface{})
	createdID, _ := rowA["id"].(string)
	require.NotEmpty(t, createdID)

	respB := doJSON(t, fiberApp, http.MethodGet, "/api/sessions", nil, nil)
	require.Equal(t, http.StatusOK, respB.StatusCode)
	cookieB := respB.Cookies()[0]
	bodyB := decodeBody(t, respB)
	assert.Empty(t, bodyB["sessions"], "a fresh principal sees no one else's rows")

	// B cannot read A's row by id, and deleting it affects nothing
	resp := doJSON(t, fiberApp, http.MethodGet, "/api/sessions/"+createdID, nil, []*http.Cookie{cookieB})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, fiberApp, http.MethodDelete, "/api/sessions/"+createdID, nil, []*http.Cookie{cookieB})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/sessions/"+createdID, nil, []*http.Cookie{cookieA})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "owner still sees the row")
	resp.Body.Close()
}

func TestFixedIdentityMode(t *testing.T) {
	fiberApp, _, cleanup := setupTestApp(t, identity.Fixed{UserID: "solo"})
	defer cleanup()

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Cookies(), "fixed mode issues no session cookie")

	me := decodeBody(t, resp)
	assert.Equal(t, "solo", me["user_id"])
}

func TestSummariesEndpoint(t *testing.T) {
	fiberApp, _, cleanup := setupTestApp(t, identity.Fixed{UserID: "solo"})
	defer cleanup()

	// Missing day yields a null summary, not an error
	resp := doJSON(t, fiberApp, http.MethodGet, "/api/summaries?date=2024-03-05", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Nil(t, body["summary"])

	resp = doJSON(t, fiberApp, http.MethodPut, "/api/summaries", fiber.Map{
		"date":        "2024-03-05",
		"total_hours": 4.5,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/summaries?date=2024-03-05", nil, nil)
	body = decodeBody(t, resp)
	summary, _ := body["summary"].(map[string]interface{})
	require.NotNil(t, summary)
	assert.Equal(t, 4.5, summary["total_hours"])
	assert.Equal(t, "solo", summary["user_id"])
}

func TestCreateSessionValidation(t *testing.T) {
	fiberApp, _, cleanup := setupTestApp(t, identity.Fixed{UserID: "solo"})
	defer cleanup()

	resp := doJSON(t, fiberApp, http.MethodPost, "/api/sessions", fiber.Map{
		"date":       "not-a-date",
		"start_time": "09:00",
		"end_time":   "10:00",
		"hours":      1,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRandomQuoteFallback(t *testing.T) {
	// Quotes are deliberately unseeded here
	fiberApp, _, cleanup := setupTestApp(t, nil)
	defer cleanup()

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/quotes/random", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Keep pushing forward!", body["quote"])

	// Reference data needs no identity, so no cookie is issued
	assert.Empty(t, resp.Cookies())
}
