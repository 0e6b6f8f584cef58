package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/adapter/crypto"
	"gitlab.com/codequiz-2025.net/internal/config"
	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/static/errs"
)

type stubUserPort struct {
	user *domain.Users
}

func (s *stubUserPort) Create(ctx context.Context, user *domain.Users) error {
	s.user = user
	return nil
}

func (s *stubUserPort) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	if s.user != nil && s.user.UserName == userName {
		return s.user, nil
	}
	return nil, nil
}

func TestLocalLogin(t *testing.T) {
	ctx := context.Background()
	tokenService := crypto.NewTokenService(&config.JwtConfig{Secret: "test-secret"})

	hash, err := tokenService.EncryptPassword(ctx, "s3cret")
	if err != nil {
		t.Fatalf("EncryptPassword() error = %v", err)
	}
	userPort := &stubUserPort{user: &domain.Users{
		ID:           uuid.New(),
		UserName:     "alice",
		PasswordHash: &hash,
		Role:         "student",
	}}

	svc := NewLocalAuthService(userPort, tokenService)

	resp, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	payload, err := tokenService.DecodeTokenPayload(ctx, resp.Token)
	if err != nil {
		t.Fatalf("DecodeTokenPayload() error = %v", err)
	}
	if payload.Username != "alice" || payload.UserID != userPort.user.ID.String() {
		t.Fatalf("payload = %+v", payload)
	}

	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, errs.InvalidCredentials) {
		t.Fatalf("error = %v, want %v", err, errs.InvalidCredentials)
	}
	if _, err := svc.Login(ctx, "bob", "s3cret"); !errors.Is(err, errs.InvalidCredentials) {
		t.Fatalf("error = %v, want %v", err, errs.InvalidCredentials)
	}
}
