package domain

// ReasonCode classifies why the validator rejected a submission
type ReasonCode string

const (
	ReasonSizeLimit        ReasonCode = "SIZE_LIMIT"
	ReasonBlockedPattern   ReasonCode = "BLOCKED_PATTERN"
	ReasonObfuscation      ReasonCode = "OBFUSCATION"
	ReasonExcessiveNesting ReasonCode = "EXCESSIVE_NESTING"
)

// ValidationVerdict is produced once per submission. A rejection is terminal:
// the submission never reaches the execution service.
type ValidationVerdict struct {
	Accepted bool
	Reason   ReasonCode
	Detail   string
}

// Accept returns the verdict for a submission that passed every check
func Accept() ValidationVerdict {
	return ValidationVerdict{Accepted: true}
}

// Reject returns a terminal verdict with the given reason. Detail is for
// server-side logs only and is never echoed to the caller.
func Reject(reason ReasonCode, detail string) ValidationVerdict {
	return ValidationVerdict{Accepted: false, Reason: reason, Detail: detail}
}
