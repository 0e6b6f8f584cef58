package submissions

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/core/services/execution"
	"gitlab.com/codequiz-2025.net/internal/core/services/validation"
	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/handlers"
	"gitlab.com/codequiz-2025.net/internal/handlers/response"
)

// SubmissionHandler handles code execution requests. Pipeline per request:
// rate limit, validate, execute. A submission that fails validation never
// reaches the execution service.
type SubmissionHandler struct {
	validationSvc validation.IValidationService
	executionSvc  execution.IExecutionService
	rateLimiter   secondary.RateLimiter
	logger        primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(
	validationSvc validation.IValidationService,
	executionSvc execution.IExecutionService,
	rateLimiter secondary.RateLimiter,
	logger primary.Logger,
) *SubmissionHandler {
	return &SubmissionHandler{
		validationSvc: validationSvc,
		executionSvc:  executionSvc,
		rateLimiter:   rateLimiter,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions/execute", h.Execute).Methods("POST")
}

// Execute handles submission-for-grading requests
func (h *SubmissionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	identity, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	decision, err := h.rateLimiter.Allow(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Rate limit check failed", "caller", identity.UserID, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "internal error",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}
	if !decision.Allowed {
		response.WriteError(w, response.ErrorMessage{
			Message:    "rate limit exceeded",
			StatusCode: http.StatusTooManyRequests,
			RetryAfter: int(math.Ceil(decision.RetryAfter.Seconds())),
		})
		return
	}

	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	language, err := domain.ParseLanguage(req.Language)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	testCases := make([]domain.TestCase, len(req.TestCases))
	for i, tc := range req.TestCases {
		testCases[i] = domain.TestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		}
	}

	verdict := h.validationSvc.Validate(req.Code, testCases)
	if !verdict.Accepted {
		// Deliberately generic: the matched pattern is logged server-side
		// but never echoed, so an attacker cannot iterate on the denylist.
		response.WriteError(w, response.ErrorMessage{
			Message:    "validation failed",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	submission := domain.NewCodeSubmission(identity.UserID, req.Code, language, testCases)
	report, err := h.executionSvc.Execute(r.Context(), submission)
	if err != nil {
		h.logger.Error("Execution failed", "submissionId", submission.ID, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "internal error",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	results := make([]CaseResultPayload, len(report.Results))
	for i, res := range report.Results {
		results[i] = CaseResultPayload{
			Input:          res.TestCase.Input,
			ExpectedOutput: res.TestCase.ExpectedOutput,
			ActualOutput:   res.ActualOutput,
			Passed:         res.Passed,
			Error:          res.ErrorDetail,
		}
	}

	response.WriteSuccess(w, ExecuteResponse{
		Success:     true,
		AllPassed:   report.AllPassed,
		PassedCount: report.PassedCount,
		TotalCount:  report.TotalCount,
		Results:     results,
	})
}
