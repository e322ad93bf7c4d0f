package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todoapi/shared/model"
)

func TestMetadata_Touch(t *testing.T) {
	created := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "clock advanced", now: created.Add(time.Minute), want: created.Add(time.Minute)},
		{name: "clock unchanged", now: created, want: created.Add(time.Nanosecond)},
		{name: "clock went backwards", now: created.Add(-time.Hour), want: created.Add(time.Nanosecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := model.Metadata{CreatedAt: created, UpdatedAt: created}

			meta.Touch(tt.now)

			assert.Equal(t, tt.want, meta.UpdatedAt)
			assert.Equal(t, created, meta.CreatedAt)
		})
	}
}
