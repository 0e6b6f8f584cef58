package domain

import (
	"time"

	"github.com/google/uuid"
)

// CodeSubmission represents a code submission to be validated and executed.
// Immutable once constructed; owned by the request that created it.
type CodeSubmission struct {
	ID          uuid.UUID
	OwnerID     string
	SourceCode  string
	Language    Language
	TestCases   []TestCase
	SubmittedAt time.Time
}

// NewCodeSubmission creates a new code submission
func NewCodeSubmission(ownerID, sourceCode string, language Language, testCases []TestCase) *CodeSubmission {
	return &CodeSubmission{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		SourceCode:  sourceCode,
		Language:    language,
		TestCases:   testCases,
		SubmittedAt: time.Now(),
	}
}
