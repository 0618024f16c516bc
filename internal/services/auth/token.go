package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/pkg/clock"
)

// DefaultTokenTTL is the fixed bearer-token lifetime. There is no
// refresh-token rotation and no revocation list; expiry is the only
// invalidation mechanism.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenManager issues and verifies stateless HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// TokenManagerConfig configures a TokenManager.
type TokenManagerConfig struct {
	Secret []byte
	TTL    time.Duration
	Clock  clock.Clock
}

// NewTokenManager creates a TokenManager.
func NewTokenManager(cfg *TokenManagerConfig) (*TokenManager, error) {
	if cfg == nil || len(cfg.Secret) == 0 {
		return nil, errors.InvalidArgument("token secret is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &TokenManager{
		secret: cfg.Secret,
		ttl:    ttl,
		clock:  c,
	}, nil
}

// Issue mints a token whose subject is the user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses a bearer token and returns its subject. Expired and
// malformed tokens both map to Unauthenticated; callers distinguish
// them only by error message category.
func (m *TokenManager) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.Unauthenticated("token expired")
		}
		return "", errors.Unauthenticated("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.Unauthenticated("invalid token")
	}
	return claims.Subject, nil
}
