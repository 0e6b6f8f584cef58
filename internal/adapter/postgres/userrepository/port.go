package userrepository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

var _ secondary.UserPort = (*UserRepository)(nil)

type UserRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.Users) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.users (id, user_name, password_hash, student_code, role)
		VALUES ($1, $2, $3, $4, $5)
	`, r.schema)

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.PasswordHash,
		user.StudentCode,
		user.Role,
	)
	if err != nil {
		r.logger.Error("Failed to create user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	query := fmt.Sprintf(`
		SELECT id, user_name, password_hash, student_code, role
		FROM %s.users
		WHERE user_name = $1
	`, r.schema)

	var user domain.Users
	err := r.db.GetContext(ctx, &user, query, userName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get user", "userName", userName, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
