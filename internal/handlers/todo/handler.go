package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared"
	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/validator"
	"todoapi/transport/http/response"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get("/stats/summary", handler.GetTodoStats)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a new todo item. Status defaults to pending and priority to 1.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.TodoResponse "Created todo item"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created " + todo.ID)

	response.WithJSON(writer, http.StatusCreated, todo)
}

// GetTodos retrieves all todo items, optionally filtered.
// @Summary Get all todo items
// @Description Retrieve todo items ordered by priority (highest first), then creation time.
// @Tags Todo
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, in_progress, completed)
// @Param priority query integer false "Filter by priority" minimum(1) maximum(5)
// @Success 200 {array} dto.TodoResponse "List of todo items"
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	query := r.URL.Query()

	priority, err := shared.ConvertStringToInt(query.Get(constant.RequestParamPriority))
	if err != nil {
		scope.TraceError(failure.InvalidPriorityParam)

		response.WithError(w, failure.InvalidPriorityParam)

		return
	}

	req := dto.FilterTodosRequest{
		Status:   query.Get(constant.RequestParamStatus),
		Priority: priority,
	}

	todos, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("todo.count", len(todos))

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves a todo item by its ID.
// @Summary Get a todo item by ID
// @Description Retrieve a todo item by its unique identifier.
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Todo item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo updates an existing todo item by its ID.
// @Summary Update a todo item by ID
// @Description Only supplied fields change. Sending description as null clears it.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} dto.TodoResponse "Updated todo item"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTodoRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated " + id)

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo item by ID
// @Description Permanently delete a todo item.
// @Tags Todo
// @Param id path string true "Todo ID"
// @Success 204 "Todo deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted " + id)

	response.WithNoContent(w)
}

// GetTodoStats summarizes the collection.
// @Summary Get todo statistics
// @Description Counts by status and by priority. Every bucket is present, zero counts included.
// @Tags Todo
// @Produce json
// @Success 200 {object} dto.StatsResponse "Todo statistics"
// @Failure 500 {object} response.Error
// @Router /todos/stats/summary [get]
func (handler *Handler) GetTodoStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
