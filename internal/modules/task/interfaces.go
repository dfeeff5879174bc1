package task

import (
	"context"

	"tasktracker/internal/domain"
	"tasktracker/internal/repository"
)

// TaskRepositoryInterface — only the methods the task service uses
type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id, userID string) (*domain.Task, error)
	List(ctx context.Context, userID string, f repository.TaskFilter) ([]domain.Task, int64, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id, userID string) error
}
