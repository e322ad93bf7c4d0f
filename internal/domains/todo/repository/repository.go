package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/identifier"
	"todoapi/shared/timezone"
)

const maxIDAttempts = 16

var (
	ErrNotFound    = errors.New("todo not found")
	ErrIDExhausted = errors.New("could not allocate a unique todo id")
)

// Todo owns the canonical TODO collection. Every value it returns is a copy.
type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	Get(ctx context.Context, id string) (model.Todo, error)
	GetAll(ctx context.Context, filter model.Filter) ([]model.Todo, error)
	Update(ctx context.Context, id string, patch model.Patch) (model.Todo, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (model.Stats, error)
}

type Clock func() time.Time

func New(generator identifier.Generator, otel otel.Otel) Todo {
	return NewWithClock(generator, otel, timezone.Now)
}

func NewWithClock(generator identifier.Generator, otel otel.Otel, clock Clock) Todo {
	return &memoryImpl{
		todos:     make(map[string]record),
		generator: generator,
		clock:     clock,
		otel:      otel,
	}
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
