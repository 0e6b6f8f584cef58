package auth

import (
	"context"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

type IAuthService interface {
	Login(ctx context.Context, userName, password string) (*domain.LoginResponse, error)
}
