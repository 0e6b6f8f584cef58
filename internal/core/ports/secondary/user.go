package secondary

import (
	"context"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error
	GetByUserName(ctx context.Context, userName string) (*domain.Users, error)
}
