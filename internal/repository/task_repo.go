package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"tasktracker/internal/domain"
)

// TaskFilter narrows a task listing. Zero values mean "no constraint".
type TaskFilter struct {
	Status domain.TaskStatus
	Query  string
	Page   int
	Limit  int
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// GetByID scopes the lookup to the owning user. A task owned by someone else
// is indistinguishable from a missing one.
func (r *TaskRepository) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, f TaskFilter) ([]domain.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Task{}).Where("user_id = ?", userID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []domain.Task
	err := q.Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{}).Error
}
