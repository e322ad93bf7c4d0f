package model

import "time"

type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch moves UpdatedAt to now, or just past its previous value when the
// clock has not advanced, so that every mutation is observable.
func (m *Metadata) Touch(now time.Time) {
	if !now.After(m.UpdatedAt) {
		now = m.UpdatedAt.Add(time.Nanosecond)
	}

	m.UpdatedAt = now
}
