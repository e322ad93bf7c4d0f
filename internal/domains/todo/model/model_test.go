package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapi/internal/domains/todo/model"
	"todoapi/shared/optional"
)

func strPtr(v string) *string {
	return &v
}

func TestStatus_Valid(t *testing.T) {
	for _, status := range model.Statuses() {
		assert.True(t, status.Valid(), status)
	}

	assert.False(t, model.Status("done").Valid())
	assert.False(t, model.Status("").Valid())
}

func TestTodo_Clone(t *testing.T) {
	original := model.Todo{ID: "todo-1", Title: "A", Description: strPtr("desc")}

	clone := original.Clone()
	*clone.Description = "changed"

	assert.Equal(t, "desc", *original.Description)
	assert.Equal(t, original.ID, clone.ID)
}

func TestFilter_Match(t *testing.T) {
	pending := model.StatusPending
	three := 3

	todo := model.Todo{Status: model.StatusPending, Priority: 3}
	other := model.Todo{Status: model.StatusCompleted, Priority: 3}

	assert.True(t, model.Filter{}.Match(todo))
	assert.True(t, model.Filter{Status: &pending}.Match(todo))
	assert.False(t, model.Filter{Status: &pending}.Match(other))
	assert.True(t, model.Filter{Status: &pending, Priority: &three}.Match(todo))
	assert.False(t, model.Filter{Status: &pending, Priority: &three}.Match(other))
}

func TestPatch_Apply(t *testing.T) {
	tests := []struct {
		name  string
		patch model.Patch
		want  model.Todo
	}{
		{
			name:  "empty patch changes nothing",
			patch: model.Patch{},
			want:  model.Todo{Title: "A", Description: strPtr("d"), Status: model.StatusPending, Priority: 1},
		},
		{
			name:  "only supplied fields change",
			patch: model.Patch{Priority: optional.Of(5)},
			want:  model.Todo{Title: "A", Description: strPtr("d"), Status: model.StatusPending, Priority: 5},
		},
		{
			name: "every field",
			patch: model.Patch{
				Title:       optional.Of("B"),
				Description: optional.Of("e"),
				Status:      optional.Of(model.StatusCompleted),
				Priority:    optional.Of(2),
			},
			want: model.Todo{Title: "B", Description: strPtr("e"), Status: model.StatusCompleted, Priority: 2},
		},
		{
			name:  "null description clears it",
			patch: model.Patch{Description: optional.Null[string]()},
			want:  model.Todo{Title: "A", Status: model.StatusPending, Priority: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := model.Todo{Title: "A", Description: strPtr("d"), Status: model.StatusPending, Priority: 1}

			tt.patch.Apply(&todo)

			assert.Equal(t, tt.want, todo)
		})
	}
}

func TestStats(t *testing.T) {
	stats := model.NewStats()

	assert.Equal(t, 0, stats.Total)
	assert.Len(t, stats.ByStatus, 3)
	assert.Len(t, stats.ByPriority, 5)

	stats.Add(model.Todo{Status: model.StatusPending, Priority: 1})
	stats.Add(model.Todo{Status: model.StatusPending, Priority: 4})

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[model.StatusPending])
	assert.Equal(t, 0, stats.ByStatus[model.StatusCompleted])
	assert.Equal(t, 1, stats.ByPriority[4])
}
