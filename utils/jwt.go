package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token audiences: customers and vendors live in separate tables,
// so a token carries which one its subject id belongs to.
const (
	AudienceUser   = "user"
	AudienceVendor = "vendor"
)

type Claims struct {
	SubjectID uint   `json:"subjectId"`
	Role      string `json:"role"`
	Audience  string `json:"aud,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(subjectID uint, role, audience, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		Audience:  audience,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
