package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

type AssignmentRepository interface {
	// SaveAssignment saves an assignment with its question list
	SaveAssignment(ctx context.Context, assignment *domain.Assignment) error

	// GetAssignment retrieves an assignment by ID, nil if not found
	GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error)
}
