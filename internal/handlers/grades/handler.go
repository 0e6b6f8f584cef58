package grades

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/core/services/grading"
	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/handlers"
	"gitlab.com/codequiz-2025.net/internal/handlers/response"
	"gitlab.com/codequiz-2025.net/internal/static/errs"
)

// GradeHandler handles assignment submission and grade revision requests.
// All grade values it returns come from the grading service; nothing in a
// request body can set a grade.
type GradeHandler struct {
	gradingSvc     grading.IGradingService
	assignmentRepo secondary.AssignmentRepository
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(
	gradingSvc grading.IGradingService,
	assignmentRepo secondary.AssignmentRepository,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
) *GradeHandler {
	return &GradeHandler{
		gradingSvc:     gradingSvc,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for GradeHandler
func (h *GradeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/assignments", h.CreateAssignment).Methods("POST")
	router.HandleFunc("/api/assignments/{assignmentId}", h.GetAssignment).Methods("GET")
	router.HandleFunc("/api/assignments/{assignmentId}/submit", h.Submit).Methods("POST")
	router.HandleFunc("/api/grades/revise", h.Revise).Methods("POST")
}

// CreateAssignment handles assignment creation requests
func (h *GradeHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	identity, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	assignment := domain.NewAssignment(identity.UserID, req.Title, req.Questions)
	if err := h.assignmentRepo.SaveAssignment(r.Context(), assignment); err != nil {
		h.logger.Error("Failed to save assignment", "error", err)
		http.Error(w, "Failed to save assignment", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateAssignmentResponse{AssignmentID: assignment.ID})
}

// GetAssignment handles assignment retrieval requests. Correct choices are
// stripped unless the caller created the assignment.
func (h *GradeHandler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	identity, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	assignmentID, err := uuid.Parse(mux.Vars(r)["assignmentId"])
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignmentRepo.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		h.logger.Error("Failed to get assignment", "error", err)
		http.Error(w, "Failed to get assignment", http.StatusInternalServerError)
		return
	}
	if assignment == nil {
		http.Error(w, "Assignment not found", http.StatusNotFound)
		return
	}

	if assignment.CreatedBy != identity.UserID {
		for i := range assignment.Questions {
			assignment.Questions[i].CorrectChoice = nil
		}
	}

	response.WriteSuccess(w, assignment)
}

// Submit handles initial submission grading requests
func (h *GradeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	assignmentID, err := uuid.Parse(mux.Vars(r)["assignmentId"])
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	assignment, err := h.assignmentRepo.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		h.logger.Error("Failed to get assignment", "error", err)
		http.Error(w, "Failed to get assignment", http.StatusInternalServerError)
		return
	}
	if assignment == nil {
		http.Error(w, "Assignment not found", http.StatusNotFound)
		return
	}

	submission := domain.NewStudentSubmission(assignmentID, identity.UserID, req.Answers)

	// A resubmission replaces the caller's existing record for this
	// assignment instead of accumulating rows.
	existing, err := h.submissionRepo.GetByAssignmentAndOwner(r.Context(), assignmentID, identity.UserID)
	if err != nil {
		h.logger.Error("Failed to look up existing submission", "error", err)
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		submission.ID = existing.ID
	}

	if err := h.submissionRepo.SaveSubmission(r.Context(), submission); err != nil {
		h.logger.Error("Failed to save submission", "error", err)
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}

	grade, err := h.gradingSvc.GradeInitial(r.Context(), assignment, submission)
	if err != nil {
		h.logger.Error("Failed to grade submission", "submissionId", submission.ID, "error", err)
		http.Error(w, "Failed to grade submission", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, SubmitResponse{
		SubmissionID: submission.ID,
		Grade:        grade.Value,
		Status:       submission.GradeStatus,
	})
}

// Revise handles post-hoc grade revision requests
func (h *GradeHandler) Revise(w http.ResponseWriter, r *http.Request) {
	identity, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ReviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	scores := make(map[int]float64, len(req.ShortAnswerGrades))
	for key, score := range req.ShortAnswerGrades {
		idx, err := strconv.Atoi(key)
		if err != nil {
			http.Error(w, "Invalid question index", http.StatusBadRequest)
			return
		}
		scores[idx] = score
	}

	breakdown, err := h.gradingSvc.ReviseGrade(r.Context(), identity.UserID, req.AssignmentID, scores)
	if err != nil {
		h.writeRevisionError(w, err)
		return
	}

	response.WriteSuccess(w, breakdown)
}

func (h *GradeHandler) writeRevisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.AssignmentNotFound):
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusNotFound,
		})
	case errors.Is(err, errs.NotSubmissionOwner), errors.Is(err, errs.SubmissionNotCompleted):
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusForbidden,
		})
	default:
		h.logger.Error("Failed to revise grade", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    "internal error",
			StatusCode: http.StatusInternalServerError,
		})
	}
}
