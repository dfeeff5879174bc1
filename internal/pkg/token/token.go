package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Payload is the claim set embedded in both token kinds. It is derived from
// the user at issuance time and never re-checked against current user state.
type Payload struct {
	UserID string
	Email  string
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwtlib.RegisteredClaims
}

// signer holds the key material and lifetime for one token kind. Access and
// refresh each get their own signer so a token of one kind never verifies
// under the other.
type signer struct {
	secret []byte
	ttl    time.Duration
}

func (s signer) issue(p Payload, now time.Time) (string, error) {
	claims := Claims{
		UserID: p.UserID,
		Email:  p.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			// JTI keeps two same-second issuances from colliding byte for byte.
			ID:        uuid.NewString(),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

func (s signer) verify(tokenStr string) (Payload, error) {
	tok, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return Payload{}, ErrTokenInvalid
	}

	return Payload{UserID: claims.UserID, Email: claims.Email}, nil
}

// Codec signs and verifies access and refresh tokens under independent
// secrets and lifetimes.
type Codec struct {
	access  signer
	refresh signer
}

func NewCodec(accessSecret string, accessTTL time.Duration, refreshSecret string, refreshTTL time.Duration) *Codec {
	return &Codec{
		access:  signer{secret: []byte(accessSecret), ttl: accessTTL},
		refresh: signer{secret: []byte(refreshSecret), ttl: refreshTTL},
	}
}

func (c *Codec) IssueAccess(p Payload) (string, error) {
	return c.access.issue(p, time.Now())
}

func (c *Codec) IssueRefresh(p Payload) (string, error) {
	return c.refresh.issue(p, time.Now())
}

func (c *Codec) VerifyAccess(tokenStr string) (Payload, error) {
	return c.access.verify(tokenStr)
}

func (c *Codec) VerifyRefresh(tokenStr string) (Payload, error) {
	return c.refresh.verify(tokenStr)
}
