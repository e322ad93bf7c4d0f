package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/repository"
	"todoapi/internal/domains/todo/service"
	"todoapi/internal/handlers/general"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/identifier"
	transportHTTP "todoapi/transport/http"
	"todoapi/transport/http/middleware"
	"todoapi/transport/http/router"
	"todoapi/transport/http/state"
)

func newServer() *transportHTTP.HTTP {
	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Name = "todo-api"
	cfg.App.Version = "1.0.0"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.App.CORS.AllowedHeaders = []string{"*"}

	svc := service.New(repository.New(identifier.New(), ot), ot)
	serverState := state.New()

	r := router.New(cfg, middleware.NewAppMiddleware(ot, cfg, nil), router.DomainHandlers{
		General: general.New(cfg, svc, serverState, ot),
		Todo:    todo.New(svc, ot),
	})

	return transportHTTP.New(cfg, r, serverState, ot)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHTTP_Lifecycle(t *testing.T) {
	server := newServer()

	rec := serve(server, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"TODO API"`)

	rec = serve(server, http.MethodPost, "/todos", `{"title":"Complete project","priority":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	id, _ := created["id"].(string)

	rec = serve(server, http.MethodPut, "/todos/"+id, `{"status":"in_progress"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"in_progress"`)

	rec = serve(server, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"healthy","total_todos":1}`, rec.Body.String())

	rec = serve(server, http.MethodDelete, "/todos/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(server, http.MethodGet, "/todos/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"todo item with id '`+id+`' not found"}`, rec.Body.String())
}

func TestHTTP_CORSPreflight(t *testing.T) {
	server := newServer()

	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_Docs(t *testing.T) {
	server := newServer()

	rec := serve(server, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)

	rec = serve(server, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/todos/stats/summary"`)
}

func TestHTTP_HealthDuringShutdown(t *testing.T) {
	server := newServer()

	rec := serve(server, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	server.State.Set(state.ServerStateInGracePeriod)

	rec = serve(server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(server, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusOK, rec.Code, "regular traffic is served during the grace period")
}
