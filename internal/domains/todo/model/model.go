package model

import (
	"todoapi/shared/model"
	"todoapi/shared/optional"
)

const (
	EntityName = "todo"

	FieldTitle    = "title"
	FieldStatus   = "status"
	FieldPriority = "priority"
)

const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MinPriority
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in workflow order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Todo struct {
	ID          string
	Title       string
	Description *string
	Status      Status
	Priority    int
	model.Metadata
}

// Clone returns a copy that shares no memory with t.
func (t Todo) Clone() Todo {
	if t.Description != nil {
		description := *t.Description
		t.Description = &description
	}

	return t
}

// Filter narrows a listing. Nil fields impose no constraint.
type Filter struct {
	Status   *Status
	Priority *int
}

func (f Filter) Match(t Todo) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}

	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}

	return true
}

// Patch describes a partial update. Unset fields keep their value; a null
// Description clears it.
type Patch struct {
	Title       optional.Field[string]
	Description optional.Field[string]
	Status      optional.Field[Status]
	Priority    optional.Field[int]
}

// Apply writes the set fields of p onto t. It does not touch timestamps.
func (p Patch) Apply(t *Todo) {
	if title, ok := p.Title.Get(); ok {
		t.Title = title
	}

	if p.Description.IsSet() {
		t.Description = p.Description.Ptr()
	}

	if status, ok := p.Status.Get(); ok {
		t.Status = status
	}

	if priority, ok := p.Priority.Get(); ok {
		t.Priority = priority
	}
}

type Stats struct {
	Total      int
	ByStatus   map[Status]int
	ByPriority map[int]int
}

// NewStats returns Stats with a zero bucket for every status and priority.
func NewStats() Stats {
	stats := Stats{
		ByStatus:   make(map[Status]int, len(Statuses())),
		ByPriority: make(map[int]int, MaxPriority),
	}

	for _, status := range Statuses() {
		stats.ByStatus[status] = 0
	}

	for priority := MinPriority; priority <= MaxPriority; priority++ {
		stats.ByPriority[priority] = 0
	}

	return stats
}

func (s *Stats) Add(t Todo) {
	s.Total++
	s.ByStatus[t.Status]++
	s.ByPriority[t.Priority]++
}
