package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tasktracker/internal/domain"
	"tasktracker/internal/repository"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) List(ctx context.Context, userID string, f repository.TaskFilter) ([]domain.Task, int64, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Task), args.Get(1).(int64), args.Error(2)
}

func (m *mockTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestGet_OtherUsersTaskIsNotFound(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	// Repo scopes by user, so a foreign task surfaces as a missing record.
	repo.On("GetByID", mock.Anything, "task-1", "mallory").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "mallory", "task-1")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestToggle_AdvancesCycle(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "task-1", "user-1").Return(&domain.Task{
		ID:     "task-1",
		UserID: "user-1",
		Status: domain.StatusInProgress,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)

	got, err := svc.Toggle(context.Background(), "user-1", "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, got.Status)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "task-1", "user-1").Return(&domain.Task{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "old title",
		Description: "old description",
		Status:      domain.StatusTodo,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)

	newTitle := "new title"
	got, err := svc.Update(context.Background(), "user-1", "task-1", UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "old description", got.Description)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestDelete_MissingTask(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "gone", "user-1").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "user-1", "gone")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestList_PaginationMath(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	repo.On("List", mock.Anything, "user-1", repository.TaskFilter{Page: 2, Limit: 10}).
		Return([]domain.Task{{ID: "task-11"}}, int64(25), nil)

	tasks, pagination, err := svc.List(context.Background(), "user-1", ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, tasks, 1)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, int64(3), pagination.TotalPages)
}

func TestList_ForwardsFilter(t *testing.T) {
	repo := new(mockTaskRepo)
	svc := NewService(repo)

	want := repository.TaskFilter{Status: domain.StatusDone, Query: "groceries", Page: 1, Limit: 10}
	repo.On("List", mock.Anything, "user-1", want).Return([]domain.Task{}, int64(0), nil)

	_, pagination, err := svc.List(context.Background(), "user-1", ListQuery{
		Page: 1, Limit: 10, Status: "DONE", Query: "groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), pagination.TotalPages)
	repo.AssertExpectations(t)
}
