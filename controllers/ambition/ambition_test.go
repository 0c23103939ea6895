package ambitionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"enemcalc/config"
	"enemcalc/database"
	"enemcalc/models"
	ambitionRoutes "enemcalc/routers/ambitionRoutes"
	authRoutes "enemcalc/routers/authRoutes"

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
	ambitionRoutes.SetupAmbitionRoutes(app)
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

func signupAndLogin(t *testing.T, app *fiber.App, email string) string {
	code, _ := doRequest(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "abc123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    email,
		"password": "abc123",
	})
	require.Equal(t, http.StatusOK, code)

	var loginData struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	return loginData.Token
}

func ambitionPayload() fiber.Map {
	return fiber.Map{
		"city":               "Campinas",
		"course":             "Medicina",
		"college":            "Unicamp",
		"mathWeight":         2,
		"languagesWeight":    1,
		"scienceWeight":      3,
		"humanScienceWeight": 1,
		"essayWeight":        2,
	}
}

func TestCreateAndListAmbitions(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "list@example.com")

	first := ambitionPayload()
	code, _ := doRequest(t, app, http.MethodPost, "/ambitions", token, first)
	require.Equal(t, http.StatusCreated, code)

	second := ambitionPayload()
	second["college"] = "USP"
	second["city"] = "São Paulo"
	code, _ = doRequest(t, app, http.MethodPost, "/ambitions", token, second)
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodGet, "/ambitions", token, nil)
	require.Equal(t, http.StatusOK, code)

	var ambitions []models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &ambitions))
	require.Len(t, ambitions, 2)
	require.Equal(t, "Unicamp", ambitions[0].College)
	require.Equal(t, "USP", ambitions[1].College)
}

func TestListIsScopedToOwner(t *testing.T) {
	app := setupTestApp(t)
	owner := signupAndLogin(t, app, "owner@example.com")
	other := signupAndLogin(t, app, "other@example.com")

	code, _ := doRequest(t, app, http.MethodPost, "/ambitions", owner, ambitionPayload())
	require.Equal(t, http.StatusCreated, code)

	code, env := doRequest(t, app, http.MethodGet, "/ambitions", other, nil)
	require.Equal(t, http.StatusOK, code)

	var ambitions []models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &ambitions))
	require.Empty(t, ambitions)
}

func TestCreateAmbitionMissingField(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "missing@example.com")

	payload := ambitionPayload()
	delete(payload, "college")

	code, env := doRequest(t, app, http.MethodPost, "/ambitions", token, payload)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.False(t, env.Status)
}

func TestCreateAmbitionZeroWeight(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "zero@example.com")

	// A submitted zero is present but below the minimum, so the error names
	// the weight rule rather than a missing field.
	payload := ambitionPayload()
	payload["mathWeight"] = 0

	code, env := doRequest(t, app, http.MethodPost, "/ambitions", token, payload)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Equal(t, "Weight must be at least 1!", fields["mathWeight"])
}

func TestUpdateAmbition(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "update@example.com")

	code, env := doRequest(t, app, http.MethodPost, "/ambitions", token, ambitionPayload())
	require.Equal(t, http.StatusCreated, code)

	var created models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &created))

	payload := ambitionPayload()
	payload["course"] = "Engenharia"
	payload["mathWeight"] = 5

	code, env = doRequest(t, app, http.MethodPut, fmt.Sprintf("/ambitions/%d", created.ID), token, payload)
	require.Equal(t, http.StatusOK, code)

	var updated models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Engenharia", updated.Course)
	require.Equal(t, uint(5), updated.MathWeight)
}

func TestUpdateAmbitionNotFound(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "notfound@example.com")

	code, env := doRequest(t, app, http.MethodPut, "/ambitions/9999", token, ambitionPayload())
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "The ambition does not exist!", env.Message)
}

func TestUpdateAmbitionNotOwned(t *testing.T) {
	app := setupTestApp(t)
	owner := signupAndLogin(t, app, "owned@example.com")
	other := signupAndLogin(t, app, "intruder@example.com")

	code, env := doRequest(t, app, http.MethodPost, "/ambitions", owner, ambitionPayload())
	require.Equal(t, http.StatusCreated, code)

	var created models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &created))

	code, _ = doRequest(t, app, http.MethodPut, fmt.Sprintf("/ambitions/%d", created.ID), other, ambitionPayload())
	require.Equal(t, http.StatusNotFound, code)
}

func TestDeleteAmbitionCascadesToSimulations(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "cascade@example.com")

	code, env := doRequest(t, app, http.MethodPost, "/ambitions", token, ambitionPayload())
	require.Equal(t, http.StatusCreated, code)

	var created models.Ambition
	require.NoError(t, json.Unmarshal(env.Data, &created))

	simulation := models.Simulation{
		UserID:     created.UserID,
		AmbitionID: created.ID,
		Name:       "Simulado 1 - Medicina - Unicamp Campinas",
		FinalScore: 640,
	}
	require.NoError(t, database.Database.Db.Create(&simulation).Error)

	code, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/ambitions/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var remaining []models.Simulation
	require.NoError(t, database.Database.Db.Where("ambition_id = ?", created.ID).Find(&remaining).Error)
	require.Empty(t, remaining)
}

func TestDeleteAmbitionNotFound(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "deletemissing@example.com")

	code, _ := doRequest(t, app, http.MethodDelete, "/ambitions/9999", token, nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestGetAmbitionByIdDisabled(t *testing.T) {
	app := setupTestApp(t)
	token := signupAndLogin(t, app, "disabled@example.com")

	code, env := doRequest(t, app, http.MethodGet, "/ambitions/1", token, nil)
	require.Equal(t, http.StatusMethodNotAllowed, code)
	require.False(t, env.Status)
}
