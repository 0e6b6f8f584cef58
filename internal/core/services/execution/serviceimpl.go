package execution

import (
	"context"
	"strings"
	"sync"
	"time"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

var _ IExecutionService = (*ExecutionService)(nil)

// perCaseTimeout bounds one sandbox round trip: compile budget plus run
// budget plus transport headroom.
const perCaseTimeout = 15 * time.Second

// ExecutionService dispatches each test case to the remote sandbox service
// and compares captured output against the expected output.
type ExecutionService struct {
	sandbox secondary.SandboxRunner
	logger  primary.Logger
}

// NewExecutionService creates a new execution service
func NewExecutionService(sandbox secondary.SandboxRunner, logger primary.Logger) *ExecutionService {
	return &ExecutionService{
		sandbox: sandbox,
		logger:  logger,
	}
}

// Execute runs every test case of the submission. Cases are independent:
// they are dispatched concurrently, each with its own timeout, and a failure
// in one never aborts the others. One attempt per case, no retry, to keep
// total wall-clock time bounded for a student waiting on the result.
func (s *ExecutionService) Execute(ctx context.Context, submission *domain.CodeSubmission) (*domain.ExecutionReport, error) {
	results := make([]domain.CaseResult, len(submission.TestCases))

	// Dispatched cases run to completion even if the caller goes away; a
	// disconnect discards the results, it does not abort sandbox work.
	dispatchCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i, tc := range submission.TestCases {
		wg.Add(1)
		go func(i int, tc domain.TestCase) {
			defer wg.Done()
			caseCtx, cancel := context.WithTimeout(dispatchCtx, perCaseTimeout)
			defer cancel()
			results[i] = s.runCase(caseCtx, submission, tc)
		}(i, tc)
	}
	wg.Wait()

	report := domain.NewExecutionReport(results)
	s.logger.Info("Execution finished",
		"submissionId", submission.ID,
		"language", submission.Language,
		"passed", report.PassedCount,
		"total", report.TotalCount)

	return report, nil
}

// runCase executes one test case. Transport and sandbox failures are
// converted into a failed CaseResult with the best available diagnostic
// rather than propagated.
func (s *ExecutionService) runCase(ctx context.Context, submission *domain.CodeSubmission, tc domain.TestCase) domain.CaseResult {
	program, stdin := BuildProgram(submission.Language, submission.SourceCode, tc.Input)

	res, err := s.sandbox.Run(ctx, secondary.RunRequest{
		Language: submission.Language,
		Program:  program,
		Stdin:    stdin,
	})
	if err != nil {
		s.logger.Error("Sandbox call failed",
			"submissionId", submission.ID,
			"error", err)
		return failedCase(tc, err.Error())
	}

	if res.CompileFailed() {
		return failedCase(tc, bestDiagnostic(res.CompileStderr, res.CompileStdout, "compilation failed"))
	}

	if res.ExitCode != 0 {
		return failedCase(tc, bestDiagnostic(res.Stderr, res.Stdout, "runtime error"))
	}

	actual := res.Stdout
	passed := strings.TrimSpace(actual) == strings.TrimSpace(tc.ExpectedOutput)
	return domain.CaseResult{
		TestCase:     tc,
		ActualOutput: &actual,
		Passed:       passed,
	}
}

func failedCase(tc domain.TestCase, detail string) domain.CaseResult {
	return domain.CaseResult{
		TestCase:    tc,
		Passed:      false,
		ErrorDetail: &detail,
	}
}

// bestDiagnostic picks the most useful non-empty diagnostic text
func bestDiagnostic(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
