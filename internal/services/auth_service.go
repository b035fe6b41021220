package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"stockit/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService authenticates the single configured admin principal and
// issues HMAC-signed tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	jwtSecret     string
	adminUser     string
	adminPassword string
}

func NewAuthService(jwtSecret, adminUser, adminPassword string) AuthService {
	return &authService{
		jwtSecret:     jwtSecret,
		adminUser:     adminUser,
		adminPassword: adminPassword,
	}
}

func (s *authService) Login(_ context.Context, username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) != 1 {
		return "", ErrInvalidLogin
	}
	if !s.passwordMatches(password) {
		return "", ErrInvalidLogin
	}

	claims := &middleware.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// passwordMatches accepts either a bcrypt hash or, for development, a
// plaintext value in ADMIN_PASSWORD.
func (s *authService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}
