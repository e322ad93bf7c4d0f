package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/constant"
	"todoapi/shared/identifier"
)

type record struct {
	todo model.Todo
	seq  uint64
}

type memoryImpl struct {
	mu        sync.RWMutex
	todos     map[string]record
	seq       uint64
	generator identifier.Generator
	clock     Clock
	otel      otel.Otel
}

func (repo *memoryImpl) scope(ctx context.Context, operation string) otel.Scope {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation))

	return scope
}

// newID must be called with the write lock held.
func (repo *memoryImpl) newID() (string, error) {
	for range maxIDAttempts {
		id := repo.generator.NewID()
		if _, taken := repo.todos[id]; !taken {
			return id, nil
		}
	}

	return "", ErrIDExhausted
}

func (repo *memoryImpl) Insert(ctx context.Context, todo model.Todo) (res model.Todo, err error) {
	scope := repo.scope(ctx, "insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	id, err := repo.newID()
	if err != nil {
		return model.Todo{}, err
	}

	now := repo.clock()

	todo = todo.Clone()
	todo.ID = id
	todo.CreatedAt = now
	todo.UpdatedAt = now

	repo.seq++
	repo.todos[id] = record{todo: todo, seq: repo.seq}

	scope.SetAttribute("todo.id", id)

	return todo.Clone(), nil
}

func (repo *memoryImpl) Get(ctx context.Context, id string) (res model.Todo, err error) {
	scope := repo.scope(ctx, "get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rec, ok := repo.todos[id]
	if !ok {
		return model.Todo{}, notFound(id)
	}

	return rec.todo.Clone(), nil
}

// GetAll orders by priority descending, then creation time, then insertion.
func (repo *memoryImpl) GetAll(ctx context.Context, filter model.Filter) ([]model.Todo, error) {
	scope := repo.scope(ctx, "getAll")
	defer scope.End()

	repo.mu.RLock()

	matched := make([]record, 0, len(repo.todos))
	for _, rec := range repo.todos {
		if filter.Match(rec.todo) {
			matched = append(matched, rec)
		}
	}

	repo.mu.RUnlock()

	slices.SortFunc(matched, func(a, b record) int {
		return cmp.Or(
			cmp.Compare(b.todo.Priority, a.todo.Priority),
			a.todo.CreatedAt.Compare(b.todo.CreatedAt),
			cmp.Compare(a.seq, b.seq),
		)
	})

	res := make([]model.Todo, len(matched))
	for i, rec := range matched {
		res[i] = rec.todo.Clone()
	}

	scope.SetAttribute("todo.count", len(res))

	return res, nil
}

func (repo *memoryImpl) Update(ctx context.Context, id string, patch model.Patch) (res model.Todo, err error) {
	scope := repo.scope(ctx, "update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	rec, ok := repo.todos[id]
	if !ok {
		return model.Todo{}, notFound(id)
	}

	todo := rec.todo.Clone()
	patch.Apply(&todo)
	todo.Touch(repo.clock())

	rec.todo = todo
	repo.todos[id] = rec

	return todo.Clone(), nil
}

func (repo *memoryImpl) Delete(ctx context.Context, id string) (err error) {
	scope := repo.scope(ctx, "delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.todos[id]; !ok {
		return notFound(id)
	}

	delete(repo.todos, id)

	return nil
}

func (repo *memoryImpl) Count(ctx context.Context) (int, error) {
	scope := repo.scope(ctx, "count")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.todos), nil
}

func (repo *memoryImpl) Stats(ctx context.Context) (model.Stats, error) {
	scope := repo.scope(ctx, "stats")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stats := model.NewStats()
	for _, rec := range repo.todos {
		stats.Add(rec.todo)
	}

	return stats, nil
}
