package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shoplist/shoplist-go/internal/model"
	"github.com/shoplist/shoplist-go/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignup handles POST /api/auth/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("All fields are required"))
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse("All fields are required"))
		case errors.Is(err, service.ErrUserExists):
			writeJSON(w, http.StatusBadRequest, errorResponse("User already exists"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid credentials"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, errorResponse("Invalid credentials"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("Server error"))
		return
	}

	// 201 on login as well as signup; clients depend on it.
	writeJSON(w, http.StatusCreated, resp)
}
