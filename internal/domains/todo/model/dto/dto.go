package dto

import (
	"strconv"
	"strings"

	"todoapi/internal/domains/todo/model"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"
	"todoapi/shared/optional"
)

type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,notblank,max=200" example:"Complete FastAPI backend"`
	Description *string `json:"description" validate:"omitempty,max=1000" example:"Implement CRUD operations"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed" example:"pending"`
	Priority    *int    `json:"priority" validate:"omitempty,gte=1,lte=5" example:"1"`
}

// ToModel applies defaults and normalizes the title. Id and timestamps are
// assigned by the store.
func (c *CreateTodoRequest) ToModel() model.Todo {
	todo := model.Todo{
		Title:       strings.TrimSpace(c.Title),
		Description: c.Description,
		Status:      model.StatusPending,
		Priority:    model.DefaultPriority,
	}

	if c.Status != "" {
		todo.Status = model.Status(c.Status)
	}

	if c.Priority != nil {
		todo.Priority = *c.Priority
	}

	return todo.Clone()
}

// UpdateTodoRequest distinguishes omitted keys from explicit nulls. Only
// description is nullable.
type UpdateTodoRequest struct {
	Title       optional.Field[string] `json:"title" validate:"omitempty,notblank,max=200" swaggertype:"string"`
	Description optional.Field[string] `json:"description" validate:"omitempty,max=1000" swaggertype:"string"`
	Status      optional.Field[string] `json:"status" validate:"omitempty,oneof=pending in_progress completed" swaggertype:"string"`
	Priority    optional.Field[int]    `json:"priority" validate:"omitempty,gte=1,lte=5" swaggertype:"integer"`
}

func (r *UpdateTodoRequest) ToPatch() (model.Patch, error) {
	nonNullable := []struct {
		name string
		null bool
	}{
		{name: model.FieldTitle, null: r.Title.IsNull()},
		{name: model.FieldStatus, null: r.Status.IsNull()},
		{name: model.FieldPriority, null: r.Priority.IsNull()},
	}

	for _, field := range nonNullable {
		if field.null {
			return model.Patch{}, failure.UnprocessableEntity(field.name + " cannot be null") //nolint:wrapcheck
		}
	}

	patch := model.Patch{
		Description: r.Description,
		Priority:    r.Priority,
	}

	if title, ok := r.Title.Get(); ok {
		patch.Title = optional.Of(strings.TrimSpace(title))
	}

	if status, ok := r.Status.Get(); ok {
		patch.Status = optional.Of(model.Status(status))
	}

	return patch, nil
}

type FilterTodosRequest struct {
	Status   string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority *int   `json:"priority" validate:"omitempty,gte=1,lte=5"`
}

func (f *FilterTodosRequest) ToModel() model.Filter {
	filter := model.Filter{Priority: f.Priority}

	if f.Status != "" {
		status := model.Status(f.Status)
		filter.Status = &status
	}

	return filter
}

type TodoResponse struct {
	ID          string  `json:"id" example:"todo-1a2b3c4d"`
	Title       string  `json:"title" example:"Complete FastAPI backend"`
	Description *string `json:"description" example:"Implement CRUD operations"`
	Status      string  `json:"status" example:"in_progress"`
	Priority    int     `json:"priority" example:"4"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	todo = todo.Clone()

	r.ID = todo.ID
	r.Title = todo.Title
	r.Description = todo.Description
	r.Status = string(todo.Status)
	r.Priority = todo.Priority
	r.Metadata.FromModel(todo.Metadata)
}

func FromModels(todos []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		res[i].FromModel(todo)
	}

	return res
}

type StatsResponse struct {
	Total      int            `json:"total" example:"4"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.Total = stats.Total

	r.ByStatus = make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		r.ByStatus[string(status)] = count
	}

	r.ByPriority = make(map[string]int, len(stats.ByPriority))
	for priority, count := range stats.ByPriority {
		r.ByPriority[strconv.Itoa(priority)] = count
	}
}
