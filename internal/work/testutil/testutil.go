package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitfantasy/worktrack/internal/config"
	"github.com/bitfantasy/worktrack/internal/work/repository"
	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestEnv holds test environment resources
type TestEnv struct {
	Repos    *repository.Repositories
	Services *service.Services
	Router   *gin.Engine
	T        *testing.T
}

// NewEnv creates an isolated in-memory environment with the standard seed data
func NewEnv(t *testing.T) *TestEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Report.Dir = t.TempDir()

	store := repository.NewStore()
	repos := repository.NewRepositories(store)
	services := service.NewServices(repos, cfg, zap.NewNop())

	return &TestEnv{
		Repos:    repos,
		Services: services,
		Router:   SetupRouter(),
		T:        t,
	}
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseMap parses a JSON object response body
func ParseMap(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// ParseList parses a JSON array response body
func ParseList(w *httptest.ResponseRecorder) []interface{} {
	var result []interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
