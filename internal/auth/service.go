package auth

import (
	"fmt"

	apperrors "conservation-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Service validates bearer tokens issued by the external identity provider.
// This backend never issues tokens; it only derives an actor identity from
// already-signed claims.
type Service struct {
	secret []byte
}

// NewService creates a new auth service
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Claims represents the actor identity carried in a bearer token
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies a bearer token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: fmt.Sprintf("invalid token: %v", err)}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, &apperrors.AuthenticationError{Message: "invalid token claims"}
	}
	return claims, nil
}
