package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testServer - HTTP-сервер поверх роутера приложения с in-memory
// репозиториями вместо Postgres.
type testServer struct {
	Server    *httptest.Server
	UserRepo  *repositories.FakeUserRepository
	JobRepo   *repositories.FakeJobRepository
	SavedRepo *repositories.FakeSavedJobRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 1
	cfg.Auth.PasswordPepper = "pepper"
	cfg.Auth.BcryptCost = bcrypt.MinCost

	userRepo := repositories.NewFakeUserRepository()
	jobRepo := repositories.NewFakeJobRepository()
	savedRepo := repositories.NewFakeSavedJobRepository(jobRepo)

	router := app.BuildRouter(cfg, userRepo, jobRepo, savedRepo)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{
		Server:    server,
		UserRepo:  userRepo,
		JobRepo:   jobRepo,
		SavedRepo: savedRepo,
	}
}

func (ts *testServer) sendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(resBodyBytes)
}

func (ts *testServer) putJob(job *models.Job) string {
	ts.JobRepo.Put(job)
	return job.ID
}

// TestSavedJobsFlow - сквозной сценарий: регистрация, вход, сохранение,
// повторное сохранение, удаление, пустой список
func TestSavedJobsFlow(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	jobID := ts.putJob(&models.Job{Company: "Acme", Role: "Engineer"})

	// 1. Регистрация
	res, body := ts.sendRequest(t, "POST", "/signup", "", map[string]interface{}{
		"username": "alice",
		"password": "p1",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, body, "User registered successfully")

	// 2. Вход
	res, body = ts.sendRequest(t, "POST", "/signin", "", map[string]interface{}{
		"username": "alice",
		"password": "p1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var loginResp struct {
		Success  bool   `json:"success"`
		Token    string `json:"token"`
		UserID   string `json:"userId"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
	assert.True(t, loginResp.Success)
	require.NotEmpty(t, loginResp.Token)
	assert.Equal(t, "alice", loginResp.Username)
	token := loginResp.Token

	// 3. Сохранение вакансии
	res, body = ts.sendRequest(t, "POST", "/save-jobs/"+jobID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var saveResp struct {
		Success   bool     `json:"success"`
		Message   string   `json:"message"`
		SavedJobs []string `json:"savedJobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &saveResp))
	assert.Equal(t, "Job saved successfully", saveResp.Message)
	assert.Equal(t, []string{jobID}, saveResp.SavedJobs)

	// 4. Повторное сохранение - идемпотентно
	res, body = ts.sendRequest(t, "POST", "/save-jobs/"+jobID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &saveResp))
	assert.Equal(t, "Job already saved", saveResp.Message)
	assert.Equal(t, []string{jobID}, saveResp.SavedJobs)

	// 5. Удаление
	res, body = ts.sendRequest(t, "DELETE", "/saved-jobs/"+jobID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Job removed from saved jobs")

	// 6. Список пуст
	res, body = ts.sendRequest(t, "GET", "/saved-jobs", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var listResp struct {
		Success bool              `json:"success"`
		Jobs    []json.RawMessage `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.True(t, listResp.Success)
	assert.Empty(t, listResp.Jobs)
}

// TestSignup_Validation - пустые поля отклоняются до обращения к хранилищу
func TestSignup_Validation(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/signup", "", map[string]interface{}{
		"username": "",
		"password": "",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, `"success":false`)
}

// TestSignup_Duplicate - повторная регистрация того же имени
func TestSignup_Duplicate(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, _ := ts.sendRequest(t, "POST", "/signup", "", map[string]interface{}{
		"username": "alice",
		"password": "p1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.sendRequest(t, "POST", "/signup", "", map[string]interface{}{
		"username": "alice",
		"password": "p2",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Username already exists")
}

// TestSignin_Errors - несуществующий пользователь и неверный пароль
func TestSignin_Errors(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/signin", "", map[string]interface{}{
		"username": "ghost",
		"password": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "User not found")

	res, _ = ts.sendRequest(t, "POST", "/signup", "", map[string]interface{}{
		"username": "alice",
		"password": "p1",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body = ts.sendRequest(t, "POST", "/signin", "", map[string]interface{}{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Invalid password")
}

// TestSignout - stateless: всегда успех
func TestSignout(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "POST", "/signout", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Successfully logged out.")
}

// TestProtectedRoutes_Unauthorized - без токена все защищенные маршруты дают 401
func TestProtectedRoutes_Unauthorized(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	jobID := ts.putJob(&models.Job{Company: "Acme"})

	routes := []struct {
		method string
		path   string
	}{
		{"POST", "/save-jobs/" + jobID},
		{"GET", "/saved-jobs"},
		{"DELETE", "/saved-jobs/" + jobID},
	}

	for _, rt := range routes {
		res, body := ts.sendRequest(t, rt.method, rt.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s", rt.method, rt.path)
		assert.Contains(t, body, "Unauthorized")
	}

	// Мусорный токен - отдельное сообщение
	res, body := ts.sendRequest(t, "GET", "/saved-jobs", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Invalid or expired token")
}

// TestHealth
func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	res, body := ts.sendRequest(t, "GET", "/health", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "ok")
}
