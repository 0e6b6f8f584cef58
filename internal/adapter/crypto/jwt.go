package crypto

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gitlab.com/codequiz-2025.net/internal/config"
	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

var _ primary.TokenService = (*TokenServiceImpl)(nil)

var ErrInvalidToken = fmt.Errorf("invalid token")

type TokenServiceImpl struct {
	HMACSecretKey string
}

func NewTokenService(jwtConfig *config.JwtConfig) primary.TokenService {
	return &TokenServiceImpl{
		HMACSecretKey: jwtConfig.Secret,
	}
}

func (s TokenServiceImpl) GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error) {
	signingMethod := jwt.GetSigningMethod(method)
	if signingMethod == nil {
		return "", fmt.Errorf("unsupported signing method: %s", method)
	}

	// Ensure the claims map contains an expiration time
	if _, exists := claims["exp"]; !exists {
		claims["exp"] = time.Now().Add(time.Hour * 1).Unix()
	}

	tok := jwt.NewWithClaims(signingMethod, jwt.MapClaims(claims))
	return tok.SignedString([]byte(s.HMACSecretKey))
}

func (s TokenServiceImpl) VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error) {
	signingMethod := jwt.GetSigningMethod(method)
	if signingMethod == nil {
		return false, fmt.Errorf("unsupported signing method: %s", method)
	}

	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.HMACSecretKey), nil
	})
	if err != nil {
		return false, err
	}

	return parsedToken.Valid, nil
}

func (s TokenServiceImpl) DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.HMACSecretKey), nil
	})
	if err != nil || !parsedToken.Valid {
		return domain.AuthPayload{}, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return domain.AuthPayload{}, ErrInvalidToken
	}

	payload := domain.AuthPayload{}
	if sub, ok := claims["sub"].(string); ok {
		payload.UserID = sub
	}
	if username, ok := claims["username"].(string); ok {
		payload.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		payload.Role = role
	}
	if payload.UserID == "" {
		return domain.AuthPayload{}, ErrInvalidToken
	}

	return payload, nil
}

func (s TokenServiceImpl) EncryptPassword(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s TokenServiceImpl) VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pwd)); err != nil {
		return false, nil
	}
	return true, nil
}
