package todo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/internal/domains/todo/service"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/identifier"
)

func newRouter() http.Handler {
	ot := mocks.NewOtel()
	svc := service.New(repository.New(identifier.New(), ot), ot)
	handler := todo.New(svc, ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func create(t *testing.T, router http.Handler, body string) dto.TodoResponse {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/todos", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[dto.TodoResponse](t, rec)
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	return decode[map[string]string](t, rec)["error"]
}

func TestHandler_CreateTodo(t *testing.T) {
	router := newRouter()

	rec := do(t, router, http.MethodPost, "/todos", `{"title":"Complete project","description":"Finish the backend","priority":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Regexp(t, `^todo-[0-9a-f]{8}$`, body["id"])
	assert.Equal(t, "Complete project", body["title"])
	assert.Equal(t, "Finish the backend", body["description"])
	assert.Equal(t, "pending", body["status"])
	assert.EqualValues(t, 4, body["priority"])
	assert.Equal(t, body["created_at"], body["updated_at"])
}

func TestHandler_CreateTodoInvalid(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing title", body: `{"description":"x"}`, wantMsg: "title is required"},
		{name: "blank title", body: `{"title":"   "}`, wantMsg: "title cannot be empty or just whitespace"},
		{name: "title too long", body: `{"title":"` + strings.Repeat("a", 201) + `"}`, wantMsg: "title must be at most 200 characters"},
		{name: "priority out of range", body: `{"title":"A","priority":6}`, wantMsg: "priority must be less than or equal to 5"},
		{name: "unknown status", body: `{"title":"A","status":"archived"}`, wantMsg: "status must be one of pending in_progress completed"},
		{name: "malformed json", body: `{"title":`},
		{name: "wrong type", body: `{"title":"A","priority":"high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/todos", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			msg := errorMessage(t, rec)
			assert.NotEmpty(t, msg)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}

	list := do(t, router, http.MethodGet, "/todos", "")
	assert.JSONEq(t, "[]", list.Body.String(), "rejected creates must not be stored")
}

func TestHandler_CreateTodoEmptyBody(t *testing.T) {
	rec := do(t, newRouter(), http.MethodPost, "/todos", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "request body is required", errorMessage(t, rec))
}

func TestHandler_GetTodos(t *testing.T) {
	router := newRouter()

	low := create(t, router, `{"title":"low","priority":1}`)
	high := create(t, router, `{"title":"high","priority":5,"status":"in_progress"}`)
	mid := create(t, router, `{"title":"mid","priority":3}`)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "all ordered by priority", target: "/todos", want: []string{high.ID, mid.ID, low.ID}},
		{name: "by status", target: "/todos?status=pending", want: []string{mid.ID, low.ID}},
		{name: "by priority", target: "/todos?priority=5", want: []string{high.ID}},
		{name: "combined", target: "/todos?status=pending&priority=5", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			todos := decode[[]dto.TodoResponse](t, rec)

			ids := make([]string, len(todos))
			for i, item := range todos {
				ids[i] = item.ID
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestHandler_GetTodosInvalidFilter(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown status", target: "/todos?status=done"},
		{name: "priority not a number", target: "/todos?priority=high"},
		{name: "priority out of range", target: "/todos?priority=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.NotEmpty(t, errorMessage(t, rec))
		})
	}
}

func TestHandler_GetTodoByID(t *testing.T) {
	router := newRouter()
	created := create(t, router, `{"title":"A"}`)

	rec := do(t, router, http.MethodGet, "/todos/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[dto.TodoResponse](t, rec))

	rec = do(t, router, http.MethodGet, "/todos/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "todo item with id 'nonexistent' not found", errorMessage(t, rec))
}

func TestHandler_UpdateTodo(t *testing.T) {
	router := newRouter()
	created := create(t, router, `{"title":"A","description":"d","priority":2}`)

	rec := do(t, router, http.MethodPut, "/todos/"+created.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[dto.TodoResponse](t, rec)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)

	rec = do(t, router, http.MethodPut, "/todos/"+created.ID, `{"description":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":null`)
}

func TestHandler_UpdateTodoInvalid(t *testing.T) {
	router := newRouter()
	created := create(t, router, `{"title":"A"}`)

	tests := []struct {
		name     string
		id       string
		body     string
		wantCode int
	}{
		{name: "null title", id: created.ID, body: `{"title":null}`, wantCode: http.StatusUnprocessableEntity},
		{name: "blank title", id: created.ID, body: `{"title":"  "}`, wantCode: http.StatusUnprocessableEntity},
		{name: "bad priority", id: created.ID, body: `{"priority":7}`, wantCode: http.StatusUnprocessableEntity},
		{name: "malformed", id: created.ID, body: `{"status"`, wantCode: http.StatusUnprocessableEntity},
		{name: "missing id", id: "nonexistent", body: `{"title":"B"}`, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPut, "/todos/"+tt.id, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	rec := do(t, router, http.MethodGet, "/todos/"+created.ID, "")
	assert.Equal(t, created, decode[dto.TodoResponse](t, rec), "failed updates leave the item unchanged")
}

func TestHandler_DeleteTodo(t *testing.T) {
	router := newRouter()
	created := create(t, router, `{"title":"A"}`)

	rec := do(t, router, http.MethodDelete, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_GetTodoStats(t *testing.T) {
	router := newRouter()

	rec := do(t, router, http.MethodGet, "/todos/stats/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total": 0,
		"by_status": {"pending": 0, "in_progress": 0, "completed": 0},
		"by_priority": {"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	}`, rec.Body.String())

	create(t, router, `{"title":"A","priority":1}`)
	create(t, router, `{"title":"B","status":"in_progress","priority":3}`)
	create(t, router, `{"title":"C","status":"completed","priority":5}`)
	create(t, router, `{"title":"D","priority":1}`)

	rec = do(t, router, http.MethodGet, "/todos/stats/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total": 4,
		"by_status": {"pending": 2, "in_progress": 1, "completed": 1},
		"by_priority": {"1": 2, "2": 0, "3": 1, "4": 0, "5": 1}
	}`, rec.Body.String())
}

func TestHandler_Scenario(t *testing.T) {
	router := newRouter()

	created := create(t, router, `{"title":"A","priority":3}`)
	assert.Equal(t, 3, created.Priority)
	assert.Equal(t, "pending", created.Status)

	rec := do(t, router, http.MethodPut, "/todos/"+created.ID, `{"priority":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[dto.TodoResponse](t, rec)
	assert.Equal(t, 5, updated.Priority)
	assert.Equal(t, "A", updated.Title)

	rec = do(t, router, http.MethodDelete, "/todos/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/todos/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateBoundaries(t *testing.T) {
	router := newRouter()

	for _, body := range []string{
		`{"title":""}`,
		`{"title":"A","priority":6}`,
		`{"title":"A","description":"` + strings.Repeat("d", 1001) + `"}`,
	} {
		rec := do(t, router, http.MethodPost, "/todos", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
	}

	rec := do(t, router, http.MethodPost, "/todos", `{"title":"`+strings.Repeat("a", 200)+`","description":"`+strings.Repeat("d", 1000)+`"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, "limits are inclusive")
}
