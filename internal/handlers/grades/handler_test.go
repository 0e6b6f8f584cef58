package grades

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codequiz-2025.net/internal/domain"
	"gitlab.com/codequiz-2025.net/internal/handlers"
	"gitlab.com/codequiz-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type stubAssignmentRepo struct {
	assignment *domain.Assignment
}

func (s *stubAssignmentRepo) SaveAssignment(ctx context.Context, a *domain.Assignment) error {
	s.assignment = a
	return nil
}

func (s *stubAssignmentRepo) GetAssignment(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	if s.assignment != nil && s.assignment.ID == id {
		return s.assignment, nil
	}
	return nil, nil
}

type stubSubmissionRepo struct {
	saved *domain.StudentSubmission
}

func (s *stubSubmissionRepo) SaveSubmission(ctx context.Context, sub *domain.StudentSubmission) error {
	s.saved = sub
	return nil
}

func (s *stubSubmissionRepo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.StudentSubmission, error) {
	return s.saved, nil
}

func (s *stubSubmissionRepo) GetByAssignmentAndOwner(ctx context.Context, assignmentID uuid.UUID, ownerID string) (*domain.StudentSubmission, error) {
	return s.saved, nil
}

func (s *stubSubmissionRepo) UpdateGrade(ctx context.Context, id uuid.UUID, grade *float64, status domain.GradeStatus) error {
	return nil
}

type stubGradingService struct {
	grade     *domain.CompositeGrade
	breakdown *domain.GradeBreakdown
	reviseErr error

	gotCaller string
	gotScores map[int]float64
}

func (s *stubGradingService) GradeInitial(ctx context.Context, a *domain.Assignment, sub *domain.StudentSubmission) (*domain.CompositeGrade, error) {
	return s.grade, nil
}

func (s *stubGradingService) ReviseGrade(ctx context.Context, callerID string, assignmentID uuid.UUID, scores map[int]float64) (*domain.GradeBreakdown, error) {
	s.gotCaller = callerID
	s.gotScores = scores
	if s.reviseErr != nil {
		return nil, s.reviseErr
	}
	return s.breakdown, nil
}

func newRouter(h *GradeHandler) *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func doRequest(router *mux.Router, method, path string, body []byte, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if userID != "" {
		req = req.WithContext(handlers.WithIdentity(req.Context(), domain.AuthPayload{UserID: userID}))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitReturnsComputedGrade(t *testing.T) {
	value := 66.67
	assignmentRepo := &stubAssignmentRepo{}
	assignment := domain.NewAssignment("instructor-1", "quiz", nil)
	assignmentRepo.assignment = assignment

	h := NewGradeHandler(
		&stubGradingService{grade: &domain.CompositeGrade{Value: &value}},
		assignmentRepo,
		&stubSubmissionRepo{},
		nopLogger{},
	)

	body, _ := json.Marshal(SubmitRequest{Answers: []domain.Answer{}})
	w := doRequest(newRouter(h), http.MethodPost, "/api/assignments/"+assignment.ID.String()+"/submit", body, "student-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SubmitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Grade == nil || *resp.Grade != 66.67 {
		t.Fatalf("grade = %v, want 66.67", resp.Grade)
	}
}

func TestResubmitKeepsOneSubmissionRecord(t *testing.T) {
	value := 50.0
	assignmentRepo := &stubAssignmentRepo{}
	assignment := domain.NewAssignment("instructor-1", "quiz", nil)
	assignmentRepo.assignment = assignment

	submissionRepo := &stubSubmissionRepo{}
	h := NewGradeHandler(
		&stubGradingService{grade: &domain.CompositeGrade{Value: &value}},
		assignmentRepo,
		submissionRepo,
		nopLogger{},
	)
	router := newRouter(h)
	path := "/api/assignments/" + assignment.ID.String() + "/submit"

	body, _ := json.Marshal(SubmitRequest{Answers: []domain.Answer{}})
	var first, second SubmitResponse

	w := doRequest(router, http.MethodPost, path, body, "student-1")
	if w.Code != http.StatusOK {
		t.Fatalf("first submit status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	w = doRequest(router, http.MethodPost, path, body, "student-1")
	if w.Code != http.StatusOK {
		t.Fatalf("second submit status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if first.SubmissionID != second.SubmissionID {
		t.Fatalf("resubmission minted a new record: %s vs %s", first.SubmissionID, second.SubmissionID)
	}
	if submissionRepo.saved.ID != first.SubmissionID {
		t.Fatalf("stored submission = %s, want %s", submissionRepo.saved.ID, first.SubmissionID)
	}
}

func TestSubmitUnknownAssignment(t *testing.T) {
	h := NewGradeHandler(
		&stubGradingService{},
		&stubAssignmentRepo{},
		&stubSubmissionRepo{},
		nopLogger{},
	)

	body, _ := json.Marshal(SubmitRequest{})
	w := doRequest(newRouter(h), http.MethodPost, "/api/assignments/"+uuid.NewString()+"/submit", body, "student-1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestReviseParsesScoresAndUsesCallerIdentity(t *testing.T) {
	svc := &stubGradingService{breakdown: &domain.GradeBreakdown{
		Grade:            77.5,
		MCGrade:          80,
		ShortAnswerAvg:   75,
		MCCount:          2,
		ShortAnswerCount: 2,
	}}
	h := NewGradeHandler(svc, &stubAssignmentRepo{}, &stubSubmissionRepo{}, nopLogger{})

	assignmentID := uuid.New()
	body, _ := json.Marshal(ReviseRequest{
		AssignmentID: assignmentID,
		ShortAnswerGrades: map[string]float64{
			"2": 60,
			"3": 90,
		},
	})

	w := doRequest(newRouter(h), http.MethodPost, "/api/grades/revise", body, "student-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if svc.gotCaller != "student-1" {
		t.Fatalf("caller = %s, want the authenticated identity", svc.gotCaller)
	}
	if svc.gotScores[2] != 60 || svc.gotScores[3] != 90 {
		t.Fatalf("scores = %v", svc.gotScores)
	}

	var resp domain.GradeBreakdown
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Grade != 77.5 || resp.MCCount != 2 {
		t.Fatalf("breakdown = %+v", resp)
	}
}

func TestReviseAuthorizationFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not owner", errs.NotSubmissionOwner, http.StatusForbidden},
		{"not completed", errs.SubmissionNotCompleted, http.StatusForbidden},
		{"unknown assignment", errs.AssignmentNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGradeHandler(
				&stubGradingService{reviseErr: tt.err},
				&stubAssignmentRepo{},
				&stubSubmissionRepo{},
				nopLogger{},
			)

			body, _ := json.Marshal(ReviseRequest{AssignmentID: uuid.New()})
			w := doRequest(newRouter(h), http.MethodPost, "/api/grades/revise", body, "student-1")
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestGetAssignmentHidesCorrectChoices(t *testing.T) {
	correct := 1
	assignmentRepo := &stubAssignmentRepo{}
	assignment := domain.NewAssignment("instructor-1", "quiz", []domain.Question{
		{Index: 0, Kind: domain.QuestionMultipleChoice, Mode: domain.GradingModeAuto, CorrectChoice: &correct},
	})
	assignmentRepo.assignment = assignment

	h := NewGradeHandler(&stubGradingService{}, assignmentRepo, &stubSubmissionRepo{}, nopLogger{})

	w := doRequest(newRouter(h), http.MethodGet, "/api/assignments/"+assignment.ID.String(), nil, "student-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("correctChoice")) {
		t.Fatalf("correct choices leaked to a non-owner: %s", w.Body.String())
	}
}
