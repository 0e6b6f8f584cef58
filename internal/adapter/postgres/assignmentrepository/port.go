// package assignmentrepository contains the PostgreSQL implementation of the
// assignment repository
package assignmentrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

// AssignmentRepository implements the AssignmentRepository interface with
// PostgreSQL. Questions are stored as JSONB; the stored correct choices are
// the records the grade aggregator trusts.
type AssignmentRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewAssignmentRepository creates a new PostgreSQL assignment repository
func NewAssignmentRepository(db *sqlx.DB, logger primary.Logger) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAssignment saves an assignment to PostgreSQL
func (r *AssignmentRepository) SaveAssignment(ctx context.Context, assignment *domain.Assignment) error {
	questionsJSON, err := json.Marshal(assignment.Questions)
	if err != nil {
		r.logger.Error("Failed to marshal assignment questions", "error", err)
		return fmt.Errorf("failed to marshal assignment questions: %w", err)
	}

	query := `
		INSERT INTO assignments (id, created_by, title, questions, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			questions = EXCLUDED.questions
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		assignment.ID,
		assignment.CreatedBy,
		assignment.Title,
		questionsJSON,
		assignment.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save assignment", "error", err)
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return nil
}

// GetAssignment retrieves an assignment from PostgreSQL by ID
func (r *AssignmentRepository) GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error) {
	query := `
		SELECT id, created_by, title, questions, created_at
		FROM assignments
		WHERE id = $1
	`

	var assignment domain.Assignment
	var questionsJSON []byte

	err := r.db.QueryRowContext(ctx, query, assignmentID).Scan(
		&assignment.ID,
		&assignment.CreatedBy,
		&assignment.Title,
		&questionsJSON,
		&assignment.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get assignment", "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := json.Unmarshal(questionsJSON, &assignment.Questions); err != nil {
		r.logger.Error("Failed to unmarshal assignment questions", "error", err)
		return nil, fmt.Errorf("failed to unmarshal assignment questions: %w", err)
	}

	return &assignment, nil
}
