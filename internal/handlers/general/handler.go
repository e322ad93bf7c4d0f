package general

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared/constant"
	"todoapi/transport/http/response"
	"todoapi/transport/http/state"
)

const (
	HealthStatusHealthy = "healthy"
)

type InfoResponse struct {
	Message   string            `json:"message" example:"TODO API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status     string `json:"status" example:"healthy"`
	TotalTodos int    `json:"total_todos" example:"3"`
}

type Handler struct {
	config  *config.Config
	service service.Todo
	state   *state.Server
	otel    otel.Otel
}

func New(cfg *config.Config, service service.Todo, state *state.Server, otel otel.Otel) Handler {
	return Handler{
		config:  cfg,
		service: service,
		state:   state,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/health", handler.Health)
}

// Root describes the API.
// @Summary API information
// @Tags General
// @Produce json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (handler *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, InfoResponse{
		Message: "TODO API",
		Version: handler.config.App.Version,
		Endpoints: map[string]string{
			"docs":   "/docs",
			"health": "/health",
			"todos":  "/todos",
		},
	})
}

// Health reports liveness and the number of stored todo items.
// @Summary Health check
// @Tags General
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} response.Error
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if !handler.state.Ready() {
		scope.SetAttribute("server.state", handler.state.Get().String())
		response.WithPreparingShutdown(w)

		return
	}

	total, err := handler.service.Count(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, HealthResponse{
		Status:     HealthStatusHealthy,
		TotalTodos: total,
	})
}
