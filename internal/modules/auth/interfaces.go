package auth

import (
	"context"

	"tasktracker/internal/domain"
	"tasktracker/internal/pkg/token"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepositoryInterface — the revocation ledger
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByToken(ctx context.Context, tok string) (*domain.RefreshToken, error)
	DeleteByToken(ctx context.Context, tok string) error
}

// TokenCodec signs and verifies the two token kinds.
type TokenCodec interface {
	IssueAccess(p token.Payload) (string, error)
	IssueRefresh(p token.Payload) (string, error)
	VerifyRefresh(tok string) (token.Payload, error)
}
