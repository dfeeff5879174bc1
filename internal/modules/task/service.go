package task

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tasktracker/internal/domain"
	"tasktracker/internal/repository"
)

// Service contains the task business logic. Every operation takes the
// requesting user's id and scopes reads and writes to it; a task owned by
// another user is reported as absent.
type Service struct {
	tasks TaskRepositoryInterface
}

func NewService(tasks TaskRepositoryInterface) *Service {
	return &Service{tasks: tasks}
}

func (s *Service) List(ctx context.Context, userID string, q ListQuery) ([]domain.Task, Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	filter := repository.TaskFilter{
		Status: domain.TaskStatus(q.Status),
		Query:  q.Query,
		Page:   q.Page,
		Limit:  q.Limit,
	}

	tasks, total, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		totalPages++
	}

	return tasks, Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, userID string, req CreateTaskRequest) (*domain.Task, error) {
	t := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		UserID:      userID,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateTaskRequest) (*domain.Task, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = domain.TaskStatus(*req.Status)
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id, userID)
}

// Toggle advances the task one step along the status cycle.
func (s *Service) Toggle(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	t.Status = t.Status.Next()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
