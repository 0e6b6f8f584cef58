package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	auth2 "gitlab.com/codequiz-2025.net/internal/core/services/auth"
	"gitlab.com/codequiz-2025.net/internal/core/services/execution"
	"gitlab.com/codequiz-2025.net/internal/core/services/grading"
	"gitlab.com/codequiz-2025.net/internal/core/services/validation"
	"gitlab.com/codequiz-2025.net/internal/handlers"
	"gitlab.com/codequiz-2025.net/internal/handlers/auth"
	"gitlab.com/codequiz-2025.net/internal/handlers/grades"
	"gitlab.com/codequiz-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	validationSvc validation.IValidationService
	executionSvc  execution.IExecutionService
	gradingSvc    grading.IGradingService
	localAuth     auth2.IAuthService

	tokenService   primary.TokenService
	rateLimiter    secondary.RateLimiter
	assignmentRepo secondary.AssignmentRepository
	submissionRepo secondary.SubmissionRepository
}

func NewServiceProvider(
	validationSvc validation.IValidationService,
	executionSvc execution.IExecutionService,
	gradingSvc grading.IGradingService,
	localAuth auth2.IAuthService,
	tokenService primary.TokenService,
	rateLimiter secondary.RateLimiter,
	assignmentRepo secondary.AssignmentRepository,
	submissionRepo secondary.SubmissionRepository,
) *ServiceProvider {
	return &ServiceProvider{
		validationSvc:  validationSvc,
		executionSvc:   executionSvc,
		gradingSvc:     gradingSvc,
		localAuth:      localAuth,
		tokenService:   tokenService,
		rateLimiter:    rateLimiter,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	sp := s.ServiceProvider

	auth.NewHandler(sp.localAuth).RegisterRoutes(r)

	// Everything below requires an authenticated caller
	protected := r.NewRoute().Subrouter()
	protected.Use(handlers.New(sp.tokenService).JWTMiddleware)
	submissions.
		NewSubmissionHandler(sp.validationSvc, sp.executionSvc, sp.rateLimiter, s.logger).
		RegisterRoutes(protected)
	grades.
		NewGradeHandler(sp.gradingSvc, sp.assignmentRepo, sp.submissionRepo, s.logger).
		RegisterRoutes(protected)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
