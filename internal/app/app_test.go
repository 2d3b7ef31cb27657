package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"talenthub_backend/database"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/logger"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Config
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "app-test-secret"
	cfg.JWT.TTL = 60
	cfg.Points.PerCorrectAnswer = 10
	cfg.Points.FormationCompletion = 50
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 1 << 20
	cfg.FirstAdminEmail = "admin@test.com"
	cfg.FirstAdminPassword = "admin_password123"
	config.AppConfig = &cfg

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, seedFirstAdmin(db, &cfg))

	return SetupRouter(&cfg, db), db, &cfg
}

func sendJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email, role string) string {
	t.Helper()

	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "super_password123",
		"role":     role,
	}
	if role == "enterprise" {
		body["company_name"] = name
	}
	if role == "coach" {
		body["specialty"] = "Coaching"
	}
	rec, raw := sendJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, raw)

	var res struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestApp(t)

	rec, body := sendJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "ok")
}

func TestSeededAdminCanLogin(t *testing.T) {
	router, _, cfg := newTestApp(t)

	rec, body := sendJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    cfg.FirstAdminEmail,
		"password": cfg.FirstAdminPassword,
	})
	assert.Equal(t, http.StatusOK, rec.Code, body)
	assert.Contains(t, body, `"role":"admin"`)
}

func TestRouteAuthorization(t *testing.T) {
	router, _, cfg := newTestApp(t)

	student := registerAndLogin(t, router, "Student", "student@test.com", "student")
	enterprise := registerAndLogin(t, router, "Acme", "acme@test.com", "enterprise")

	// Unauthenticated requests are rejected.
	rec, _ := sendJSON(t, router, http.MethodGet, "/api/v1/formations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Students read the catalog but cannot author formations.
	rec, _ = sendJSON(t, router, http.MethodGet, "/api/v1/formations", student, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = sendJSON(t, router, http.MethodPost, "/api/v1/formations", student, map[string]string{"title": "Not allowed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admins do.
	recLogin, rawLogin := sendJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    cfg.FirstAdminEmail,
		"password": cfg.FirstAdminPassword,
	})
	require.Equal(t, http.StatusOK, recLogin.Code, rawLogin)
	var adminRes struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(rawLogin), &adminRes))

	rec, body := sendJSON(t, router, http.MethodPost, "/api/v1/formations", adminRes.AccessToken, map[string]interface{}{
		"title": "Admin-made formation",
		"price": 10,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, body)

	// Enterprises post offers, students apply.
	rec, body = sendJSON(t, router, http.MethodPost, "/api/v1/job-offers", enterprise, map[string]string{
		"title": "Junior Developer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	var offer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &offer))

	rec, _ = sendJSON(t, router, http.MethodPost, "/api/v1/job-offers", student, map[string]string{"title": "Nope"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = sendJSON(t, router, http.MethodPost, "/api/v1/job-offers/"+offer.ID+"/apply", student, map[string]string{
		"cover_letter": "Hire me!",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, body)

	// A second application to the same offer conflicts.
	rec, _ = sendJSON(t, router, http.MethodPost, "/api/v1/job-offers/"+offer.ID+"/apply", student, map[string]string{})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAvatarUploadRoundtrip(t *testing.T) {
	router, _, _ := newTestApp(t)
	student := registerAndLogin(t, router, "Student", "student@test.com", "student")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="avatar.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/avatar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+student)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user struct {
		ImageURL string `json:"image_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotEmpty(t, user.ImageURL)
	assert.Contains(t, user.ImageURL, "/api/v1/files/avatars/")

	// The returned URL resolves to the stored file.
	fetch, body := sendJSON(t, router, http.MethodGet, user.ImageURL, student, nil)
	assert.Equal(t, http.StatusOK, fetch.Code)
	assert.Equal(t, "not really a png", body)
}

func TestValidationErrorShape(t *testing.T) {
	router, _, _ := newTestApp(t)

	rec, body := sendJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "broken",
		"password": "x",
		"role":     "student",
		"name":     "A",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "email")
}
