package domain

import "time"

// RefreshToken is the server-side ledger entry for an issued refresh token.
// The signed token itself carries an expiry claim, but revocation (logout)
// is only possible through this table: no row, no refresh.
type RefreshToken struct {
	Token string `json:"-" gorm:"primaryKey;size:512"`

	UserID string `json:"user_id" gorm:"index;size:36;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
