package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tasktracker/internal/domain"
)

// RefreshTokenRepository is the ledger of issued refresh tokens, keyed by
// the token string itself.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteByToken removes any rows matching the token value. Deleting an
// absent token is a no-op, which makes logout idempotent.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.RefreshToken{}).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&domain.RefreshToken{})
	return res.RowsAffected, res.Error
}
