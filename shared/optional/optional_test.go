package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/shared/optional"
)

type payload struct {
	Title       optional.Field[string] `json:"title"`
	Description optional.Field[string] `json:"description"`
	Priority    optional.Field[int]    `json:"priority"`
}

func TestField_UnmarshalJSON(t *testing.T) {
	var p payload

	require.NoError(t, json.Unmarshal([]byte(`{"description":null,"priority":4}`), &p))

	assert.False(t, p.Title.IsSet(), "omitted key must stay unset")
	assert.False(t, p.Title.IsNull())

	assert.True(t, p.Description.IsSet())
	assert.True(t, p.Description.IsNull())
	_, ok := p.Description.Get()
	assert.False(t, ok)

	priority, ok := p.Priority.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, priority)
	assert.False(t, p.Priority.IsNull())
}

func TestField_UnmarshalJSONTypeMismatch(t *testing.T) {
	var p payload

	assert.Error(t, json.Unmarshal([]byte(`{"priority":"high"}`), &p))
}

func TestField_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(payload{
		Title:       optional.Of("A"),
		Description: optional.Null[string](),
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"A","description":null,"priority":null}`, string(out))
}

func TestField_Accessors(t *testing.T) {
	var absent optional.Field[int]

	assert.Nil(t, absent.Ptr())
	assert.Nil(t, absent.ValidationValue())
	assert.Nil(t, optional.Null[int]().ValidationValue())

	value := optional.Of(3)
	assert.Equal(t, 3, *value.Ptr())
	assert.Equal(t, 3, *value.ValidationValue().(*int))
}
