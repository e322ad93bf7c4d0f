package general_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/internal/domains/todo/service"
	"todoapi/internal/handlers/general"
	"todoapi/shared/identifier"
	"todoapi/transport/http/state"
)

func setup() (http.Handler, service.Todo, *state.Server) {
	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Version = "1.0.0"

	svc := service.New(repository.New(identifier.New(), ot), ot)
	serverState := state.New()

	handler := general.New(cfg, svc, serverState, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc, serverState
}

func TestHandler_Root(t *testing.T) {
	router, _, _ := setup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "TODO API",
		"version": "1.0.0",
		"endpoints": {"docs": "/docs", "health": "/health", "todos": "/todos"}
	}`, rec.Body.String())
}

func TestHandler_Health(t *testing.T) {
	router, svc, serverState := setup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","total_todos":0}`, rec.Body.String())

	for _, title := range []string{"A", "B", "C"} {
		_, err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: title})
		require.NoError(t, err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"healthy","total_todos":3}`, rec.Body.String())

	serverState.Set(state.ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
