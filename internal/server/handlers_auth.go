package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adisurya/fintrack/internal/auth"
	"github.com/adisurya/fintrack/internal/middleware"
	"github.com/adisurya/fintrack/internal/models"
)

type credentialsRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type sessionResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// writeAuthError maps auth errors onto transport status codes.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		middleware.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrWeakPassword):
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		middleware.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		middleware.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// handleRegister handles POST /api/auth/register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.DisplayName == "" || req.Password == "" {
		middleware.WriteError(w, http.StatusBadRequest, "email, displayName and password are required")
		return
	}

	user, token, err := s.auth.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, sessionResponse{User: user, Token: token})
}

// handleLogin handles POST /api/auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		middleware.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, sessionResponse{User: user, Token: token})
}

// handleCurrentUser handles GET /api/auth/me
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := s.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, user)
}
