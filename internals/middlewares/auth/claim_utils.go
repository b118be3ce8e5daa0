package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing id claim")
	}
	return uuid.Parse(raw)
}

// validateTokenExpiry checks exp with a small clock-skew leeway.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	var expAt time.Time
	switch v := exp.(type) {
	case float64:
		expAt = time.Unix(int64(v), 0)
	case int64:
		expAt = time.Unix(v, 0)
	default:
		return errors.New("invalid exp claim")
	}
	if time.Now().After(expAt.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}
