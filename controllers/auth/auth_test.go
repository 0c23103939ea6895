package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"enemcalc/config"
	"enemcalc/database"
	authRoutes "enemcalc/routers/authRoutes"
	userRoutes "enemcalc/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestSignupLoginProfile(t *testing.T) {
	app := setupTestApp(t)

	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "abc123",
	})
	require.Equal(t, http.StatusCreated, code)
	require.True(t, env.Status)

	code, env = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "maria@example.com",
		"password": "abc123",
	})
	require.Equal(t, http.StatusOK, code)

	var loginData struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.Token)

	code, env = doRequest(t, app, http.MethodGet, "/user/profile", loginData.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var profile struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	require.Equal(t, "maria@example.com", profile.Email)
	require.Empty(t, profile.Password)
}

func TestSignupShortPassword(t *testing.T) {
	app := setupTestApp(t)

	// five characters is one short of the minimum
	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "abc12",
	})
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.False(t, env.Status)

	// Nothing was created, so the same email still signs up fine
	code, _ = doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "abc123",
	})
	require.Equal(t, http.StatusCreated, code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "abc123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Other Maria",
		"email":    "maria@example.com",
		"password": "xyz789",
	})
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "Email is already registered!", env.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Maria Silva",
		"email":    "maria@example.com",
		"password": "abc123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    "maria@example.com",
		"password": "wrong123",
	})
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestUserOperationsDisabled(t *testing.T) {
	app := setupTestApp(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/"},
		{http.MethodGet, "/user/1"},
		{http.MethodPut, "/user/1"},
		{http.MethodDelete, "/user/1"},
	} {
		code, env := doRequest(t, app, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusMethodNotAllowed, code, "%s %s", tc.method, tc.path)
		require.False(t, env.Status)
	}
}
