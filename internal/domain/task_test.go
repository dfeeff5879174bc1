package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Next(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusTodo.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusTodo, StatusDone.Next())
}

func TestTaskStatus_Next_UnknownRestartsCycle(t *testing.T) {
	assert.Equal(t, StatusTodo, TaskStatus("CANCELLED").Next())
	assert.Equal(t, StatusTodo, TaskStatus("").Next())
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, TaskStatus("ARCHIVED").Valid())
}

func TestRefreshToken_IsExpired(t *testing.T) {
	now := time.Now()
	tok := RefreshToken{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, tok.IsExpired(now))
	assert.True(t, tok.IsExpired(now.Add(2*time.Minute)))
}
