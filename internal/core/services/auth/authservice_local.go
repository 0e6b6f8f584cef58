package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	userPort      secondary.UserPort
	tokenProvider primary.TokenService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	tokenProvider primary.TokenService,
) IAuthService {
	return &localAuthService{
		userPort:      userPort,
		tokenProvider: tokenProvider,
	}
}

func (g localAuthService) Login(ctx context.Context, userName, password string) (*domain.LoginResponse, error) {
	usr, err := g.userPort.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.PasswordHash == nil {
		return nil, errs.InvalidCredentials
	}
	valid, err := g.tokenProvider.VerifyPassword(ctx, *usr.PasswordHash, password)
	if err != nil {
		return nil, errs.InvalidCredentials
	}
	if !valid {
		return nil, errs.InvalidCredentials
	}

	token, err := g.tokenProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, map[string]interface{}{
		"sub":      usr.ID.String(),
		"username": usr.UserName,
		"role":     usr.Role,
	})
	if err != nil {
		return nil, errs.GeneratingToken
	}
	return &domain.LoginResponse{Token: token}, nil
}
