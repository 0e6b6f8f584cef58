package validation

import (
	"fmt"
	"strings"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

var _ IValidationService = (*ValidationService)(nil)

// ValidationService implements the pre-sandbox denylist gate. It is a fast
// pre-filter in front of the real isolation boundary, not a sandbox itself.
type ValidationService struct {
	logger primary.Logger
}

// NewValidationService creates a new validation service
func NewValidationService(logger primary.Logger) *ValidationService {
	return &ValidationService{
		logger: logger,
	}
}

// Validate applies the size, denylist, obfuscation and nesting checks, in
// that order. The first failing check is terminal.
func (s *ValidationService) Validate(sourceCode string, testCases []domain.TestCase) domain.ValidationVerdict {
	if verdict := checkLimits(sourceCode, testCases); !verdict.Accepted {
		s.logRejection(verdict)
		return verdict
	}

	// Test-case inputs are concatenated into the executed program, so they
	// go through the same pattern checks as the source itself.
	texts := make([]string, 0, len(testCases)+1)
	texts = append(texts, sourceCode)
	for _, tc := range testCases {
		texts = append(texts, tc.Input)
	}

	for _, text := range texts {
		if verdict := checkBlockedPatterns(text); !verdict.Accepted {
			s.logRejection(verdict)
			return verdict
		}
	}

	for _, text := range texts {
		if verdict := checkObfuscation(text); !verdict.Accepted {
			s.logRejection(verdict)
			return verdict
		}
	}

	if verdict := checkNestingDepth(sourceCode); !verdict.Accepted {
		s.logRejection(verdict)
		return verdict
	}

	return domain.Accept()
}

func (s *ValidationService) logRejection(verdict domain.ValidationVerdict) {
	// Detail stays server-side; the HTTP layer replies with a generic
	// validation failure.
	s.logger.Warn("Submission rejected by validator",
		"reason", verdict.Reason,
		"detail", verdict.Detail)
}

// checkLimits enforces the size and shape constraints
func checkLimits(sourceCode string, testCases []domain.TestCase) domain.ValidationVerdict {
	if len(sourceCode) > domain.MaxSourceLen {
		return domain.Reject(domain.ReasonSizeLimit,
			fmt.Sprintf("source length %d exceeds %d", len(sourceCode), domain.MaxSourceLen))
	}
	if len(testCases) > domain.MaxTestCases {
		return domain.Reject(domain.ReasonSizeLimit,
			fmt.Sprintf("%d test cases exceed %d", len(testCases), domain.MaxTestCases))
	}
	for i, tc := range testCases {
		if len(tc.Input) > domain.MaxTestCaseInput {
			return domain.Reject(domain.ReasonSizeLimit,
				fmt.Sprintf("test case %d input length %d exceeds %d", i, len(tc.Input), domain.MaxTestCaseInput))
		}
	}
	return domain.Accept()
}

// checkBlockedPatterns scans one text against the fixed denylist catalogue
func checkBlockedPatterns(text string) domain.ValidationVerdict {
	for _, p := range blockedPatterns {
		if p.re.MatchString(text) {
			return domain.Reject(domain.ReasonBlockedPattern, p.category)
		}
	}
	return domain.Accept()
}

// checkObfuscation detects attempts to rebuild a denylisted keyword through
// character-by-character string concatenation or character-code
// construction.
func checkObfuscation(text string) domain.ValidationVerdict {
	if charCodeBuild.MatchString(text) {
		return domain.Reject(domain.ReasonObfuscation, "character-code string construction")
	}

	for _, chain := range charConcatChain.FindAllString(text, -1) {
		var sb strings.Builder
		for _, m := range quotedChar.FindAllStringSubmatch(chain, -1) {
			sb.WriteString(m[1])
		}
		joined := strings.ToLower(sb.String())
		for _, keyword := range denylistedKeywords {
			if strings.Contains(joined, keyword) {
				return domain.Reject(domain.ReasonObfuscation,
					fmt.Sprintf("concatenation chain assembles %q", keyword))
			}
		}
	}
	return domain.Accept()
}

// checkNestingDepth rejects pathologically nested code as a cheap
// denial-of-service guard.
func checkNestingDepth(sourceCode string) domain.ValidationVerdict {
	depth := 0
	maxDepth := 0
	for _, r := range sourceCode {
		switch r {
		case '(', '[', '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		}
	}
	if maxDepth > domain.MaxNestingDepth {
		return domain.Reject(domain.ReasonExcessiveNesting,
			fmt.Sprintf("nesting depth %d exceeds %d", maxDepth, domain.MaxNestingDepth))
	}
	return domain.Accept()
}
