package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/ivanmsk/gw-contacts/internal/services"
)

var validate = validator.New()

// Authenticator defines the interface that the identity service must implement.
type Authenticator interface {
	Register(ctx context.Context, email, name, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GoogleAuth(ctx context.Context, googleID, email, name string, avatarURL *string) (string, *models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Display name
	// required: true
	// example: John Doe
	Name string `json:"name" validate:"required,min=2,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// GoogleAuthRequest represents the JSON body for google login
// swagger:model GoogleAuthRequest
type GoogleAuthRequest struct {
	// Google subject id
	// required: true
	GoogleID string `json:"google_id" validate:"required,min=1"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Display name
	// required: true
	// example: John Doe
	Name string `json:"name" validate:"required"`

	// Avatar URL
	AvatarURL *string `json:"avatar_url"`
}

// AuthResponse represents a successful authentication response
// swagger:model AuthResponse
type AuthResponse struct {
	// Session token
	Token string `json:"token"`

	// Public user projection
	User *models.User `json:"user"`
}

// AuthErrorResponse represents an error response for auth operations
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	// example: Email already registered
	Error string `json:"error"`
}

// NewAuthHandler returns the HTTP handler for the identity service. The
// operation is selected by the "action" field of the JSON body.
// @Summary Register, login or google-login a user
// @Description Dispatches on the body "action" field: register, login or google. Returns a session token and the public user projection.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} handlers.AuthResponse "Token and user"
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid body, validation failure or duplicate email"
// @Failure 401 {object} handlers.AuthErrorResponse "Invalid email or password"
// @Router /auth [post]
func NewAuthHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var probe struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(body, &probe); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		switch probe.Action {
		case "register":
			handleRegister(w, r, svc, body)
		case "login":
			handleLogin(w, r, svc, body)
		case "google":
			handleGoogleAuth(w, r, svc, body)
		default:
			writeError(w, http.StatusBadRequest, "Invalid action")
		}
	}
}

func handleRegister(w http.ResponseWriter, r *http.Request, svc Authenticator, body []byte) {
	var req RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := svc.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Email already registered")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AuthResponse{Token: token, User: user})
}

func handleLogin(w http.ResponseWriter, r *http.Request, svc Authenticator, body []byte) {
	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AuthResponse{Token: token, User: user})
}

func handleGoogleAuth(w http.ResponseWriter, r *http.Request, svc Authenticator, body []byte) {
	var req GoogleAuthRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := svc.GoogleAuth(r.Context(), req.GoogleID, req.Email, req.Name, req.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Email already registered")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AuthResponse{Token: token, User: user})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(AuthErrorResponse{Error: message})
}
