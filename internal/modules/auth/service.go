package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktracker/internal/domain"
	"tasktracker/internal/pkg/token"
)

// Service contains all business logic for authentication
type Service struct {
	users      UserRepositoryInterface
	ledger     RefreshTokenRepositoryInterface
	codec      TokenCodec
	refreshTTL time.Duration
}

type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepositoryInterface,
	ledger RefreshTokenRepositoryInterface,
	codec TokenCodec,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:      users,
		ledger:     ledger,
		codec:      codec,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issuePair(ctx, user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same failure as a wrong password: no account enumeration.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(ctx, user)
}

// issuePair mints an access+refresh pair and records the refresh token in
// the ledger. Every call creates a fresh ledger row, so concurrent sessions
// per user are independent.
func (s *Service) issuePair(ctx context.Context, user *domain.User) (*AuthResult, error) {
	payload := token.Payload{UserID: user.ID, Email: user.Email}

	accessToken, err := s.codec.IssueAccess(payload)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.IssueRefresh(payload)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Create(ctx, &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token from a live refresh token. The refresh
// token itself is not rotated; it stays valid until logout or natural
// expiry. The ledger is authoritative: a cryptographically valid token with
// no row fails.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	stored, err := s.ledger.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	if stored.IsExpired(time.Now()) {
		// Lazy cleanup of the stale row before rejecting.
		if err := s.ledger.DeleteByToken(ctx, refreshToken); err != nil {
			return "", err
		}
		return "", ErrInvalidRefreshToken
	}

	return s.codec.IssueAccess(payload)
}

// Logout revokes a refresh token. It succeeds whether or not the token ever
// existed: the caller's only goal is that the token must not work anymore.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.ledger.DeleteByToken(ctx, refreshToken)
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
