package domain

import "math"

// GradeStatus tracks the grade field of a submission. Reachable transitions:
// UNSET -> PENDING, UNSET -> FINAL, PENDING -> FINAL. A FINAL grade may be
// recomputed on a regrade but is always rebuilt from stored records.
type GradeStatus string

const (
	GradeStatusUnset   GradeStatus = "UNSET"
	GradeStatusPending GradeStatus = "PENDING"
	GradeStatusFinal   GradeStatus = "FINAL"
)

// CompositeGrade is the only value ever persisted as a submission's grade.
// A nil Value means pending manual review.
type CompositeGrade struct {
	Value *float64
}

// GradeBreakdown is returned from a grade revision so the caller can see how
// the composite was combined.
type GradeBreakdown struct {
	Grade            float64 `json:"grade"`
	MCGrade          float64 `json:"mcGrade"`
	ShortAnswerAvg   float64 `json:"shortAnswerAvg"`
	MCCount          int     `json:"mcCount"`
	ShortAnswerCount int     `json:"shortAnswerCount"`
}

// RoundGrade rounds a grade to two decimal places. Applied consistently to
// every grade this service produces.
func RoundGrade(v float64) float64 {
	return math.Round(v*100) / 100
}
