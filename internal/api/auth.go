package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloghaus/blog-backend/internal/auth"
)

// signupRequest is the request body for POST /auth/signup.
type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// signupResponse is the response body for POST /auth/signup.
type signupResponse struct {
	Created bool   `json:"created"`
	Reason  string `json:"reason"`
}

// loginRequest is the request body for POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /auth/login.
type loginResponse struct {
	UserName    string `json:"user_name"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// meResponse is the response body for GET /auth/me.
type meResponse struct {
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// handleSignup registers a new user account.
//
// Policy rejections come back with the machine-readable reason: 409 for a
// taken username, 400 for invalid input.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	created, reason, err := s.auth.Signup(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		s.logger.Error("signup failed", "username", req.Username, "error", err)
		writeInternalError(w, "signup failed")
		return
	}

	resp := signupResponse{Created: created, Reason: string(reason)}
	switch {
	case created:
		writeJSON(w, http.StatusCreated, resp)
	case reason == auth.ReasonUsernameTaken:
		writeJSON(w, http.StatusConflict, resp)
	default:
		writeJSON(w, http.StatusBadRequest, resp)
	}
}

// handleLogin authenticates a user and returns an access token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	result, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("login failed", "username", req.Username, "error", err)
		writeInternalError(w, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UserName:    result.Username,
		AccessToken: result.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	})
}

// handleGetUser returns the stored identity for any username.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	identity, err := s.auth.LoadIdentity(r.Context(), username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, "user not found")
			return
		}
		s.logger.Error("user lookup failed", "username", username, "error", err)
		writeInternalError(w, "user lookup failed")
		return
	}

	authorities := make([]string, 0, len(identity.Authorities))
	for _, a := range identity.Authorities {
		authorities = append(authorities, string(a))
	}

	writeJSON(w, http.StatusOK, meResponse{
		Username:    identity.Username,
		Authorities: authorities,
	})
}

// handleMe returns the identity behind the presented token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())
	if identity == nil {
		writeUnauthorized(w, "authentication required")
		return
	}

	authorities := make([]string, 0, len(identity.Authorities))
	for _, a := range identity.Authorities {
		authorities = append(authorities, string(a))
	}

	writeJSON(w, http.StatusOK, meResponse{
		Username:    identity.Username,
		Authorities: authorities,
	})
}
