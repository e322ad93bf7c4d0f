package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/validator"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req dto.FilterTodosRequest) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Count(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo."+operation)
}

// translate maps store errors to caller-facing failures.
func translate(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound(fmt.Sprintf("todo item with id '%s' not found", id)) //nolint:wrapcheck
	}

	return err
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.scope(ctx, "Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	todo, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	log.Debug().Str("id", todo.ID).Msg("todo created")

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.FilterTodosRequest) (res []dto.TodoResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	todos, err := s.repo.GetAll(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, translate(err, id)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.scope(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	patch, err := req.ToPatch()
	if err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	todo, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("id", id).Msg("failed to update todo")
		}

		return res, translate(err, id)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("id", id).Msg("failed to delete todo")
		}

		return translate(err, id)
	}

	log.Debug().Str("id", id).Msg("todo deleted")

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.scope(ctx, "Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute todo stats")

		return res, fmt.Errorf("failed to compute todo stats: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context) (int, error) {
	ctx, scope := s.scope(ctx, "Count")
	defer scope.End()

	count, err := s.repo.Count(ctx)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count todos: %w", err)
	}

	return count, nil
}
