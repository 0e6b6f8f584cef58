package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codequiz-2025.net/internal/core/services/auth"
	"gitlab.com/codequiz-2025.net/internal/handlers/response"
)

type LoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	authService auth.IAuthService
}

func NewHandler(authService auth.IAuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
}

// Login verifies credentials and issues a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	loginResponse, err := h.authService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid credentials",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, loginResponse)
}
