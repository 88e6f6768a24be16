package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Config carries the signing material explicitly; there is no package-level
// secret lookup.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Provider struct {
	config Config
}

func NewProvider(config Config) *Provider {
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &Provider{config: config}
}

func (p *Provider) GenerateToken(userId string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.config.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.config.JWTSecret))
}

// ValidateToken returns the userId the token was issued for.
func (p *Provider) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, status.Error(codes.Unauthenticated, "Unexpected signing method.")
		}
		return []byte(p.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", status.Error(codes.Unauthenticated, "Invalid token.")
	}
	return claims.Subject, nil
}

// UserIdFromContext resolves the caller from bearer metadata on an incoming
// request context.
func (p *Provider) UserIdFromContext(ctx context.Context) (string, error) {
	tokenString, err := grpc_auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return "", err
	}
	return p.ValidateToken(tokenString)
}

func (p *Provider) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (p *Provider) VerifyPassword(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
