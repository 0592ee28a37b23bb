package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/middlewares"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/ivanmsk/gw-contacts/internal/services"
)

// ContactsQuerier defines the read operations the GET handler needs.
type ContactsQuerier interface {
	List(ctx context.Context, userID int64) ([]models.Contact, error)
	IncomingRequests(ctx context.Context, userID int64) ([]models.IncomingRequest, error)
	SentRequests(ctx context.Context, userID int64) ([]models.SentRequest, error)
}

// ContactsActioner defines the write operations the POST handler needs.
type ContactsActioner interface {
	Search(ctx context.Context, userID int64, query string) ([]models.User, error)
	SendRequest(ctx context.Context, userID int64, contactEmail string) error
	HandleRequest(ctx context.Context, userID, requestID int64, action string) error
}

// SearchRequest represents the JSON body for a user search
// swagger:model SearchRequest
type SearchRequest struct {
	// Substring matched against name and email
	// required: true
	// example: ann
	Query string `json:"query" validate:"required,min=1"`
}

// ContactRequest represents the JSON body for sending a contact request
// swagger:model ContactRequest
type ContactRequest struct {
	// Email of the user to request
	// required: true
	// example: ann@example.com
	ContactEmail string `json:"contact_email" validate:"required,min=1"`
}

// HandleRequestRequest represents the JSON body for accepting or rejecting a request
// swagger:model HandleRequestRequest
type HandleRequestRequest struct {
	// Contact edge id
	// required: true
	RequestID int64 `json:"request_id" validate:"required"`

	// accept or reject
	// required: true
	Action string `json:"action_type" validate:"required,oneof=accept reject"`
}

// ContactListResponse wraps the accepted contacts of the caller
// swagger:model ContactListResponse
type ContactListResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

// IncomingRequestsResponse wraps the pending requests addressed to the caller
// swagger:model IncomingRequestsResponse
type IncomingRequestsResponse struct {
	Requests []models.IncomingRequest `json:"requests"`
}

// SentRequestsResponse wraps the pending requests sent by the caller
// swagger:model SentRequestsResponse
type SentRequestsResponse struct {
	SentRequests []models.SentRequest `json:"sent_requests"`
}

// SearchResponse wraps user search results
// swagger:model SearchResponse
type SearchResponse struct {
	Results []models.User `json:"results"`
}

// ContactActionResponse reports the outcome of a write action
// swagger:model ContactActionResponse
type ContactActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewContactsQueryHandler returns the GET handler for the contact graph. The
// operation is selected by the "action" query parameter, defaulting to list.
// @Summary List contacts, incoming requests or sent requests
// @Description action=list returns accepted contacts, action=requests pending incoming requests, action=sent pending outgoing requests. Newest first.
// @Tags contacts
// @Produce json
// @Param action query string false "list, requests or sent" default(list)
// @Success 200 {object} handlers.ContactListResponse
// @Failure 400 {object} handlers.AuthErrorResponse "Unknown action"
// @Failure 401 {object} handlers.AuthErrorResponse "Missing or invalid token"
// @Router /contacts [get]
// @Security UserToken
func NewContactsQueryHandler(svc ContactsQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

		action := r.URL.Query().Get("action")
		if action == "" {
			action = "list"
		}

		switch action {
		case "list":
			contacts, err := svc.List(r.Context(), userID)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(ContactListResponse{Contacts: contacts})
		case "requests":
			requests, err := svc.IncomingRequests(r.Context(), userID)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(IncomingRequestsResponse{Requests: requests})
		case "sent":
			sent, err := svc.SentRequests(r.Context(), userID)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(SentRequestsResponse{SentRequests: sent})
		default:
			writeError(w, http.StatusBadRequest, "Invalid action")
		}
	}
}

// NewContactsActionHandler returns the POST handler for the contact graph.
// The operation is selected by the "action" field of the JSON body.
// @Summary Search users, send a contact request or handle one
// @Description Dispatches on the body "action" field: search, send_request or handle_request.
// @Tags contacts
// @Accept json
// @Produce json
// @Success 200 {object} handlers.ContactActionResponse
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid body, validation failure or duplicate request"
// @Failure 401 {object} handlers.AuthErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.AuthErrorResponse "Unknown user or request"
// @Router /contacts [post]
// @Security UserToken
func NewContactsActionHandler(svc ContactsActioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authorization required")
			return
		}

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
		case "search":
			handleSearch(w, r, svc, userID, body)
		case "send_request":
			handleSendRequest(w, r, svc, userID, body)
		case "handle_request":
			handleHandleRequest(w, r, svc, userID, body)
		default:
			writeError(w, http.StatusBadRequest, "Invalid action")
		}
	}
}

func handleSearch(w http.ResponseWriter, r *http.Request, svc ContactsActioner, userID int64, body []byte) {
	var req SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := svc.Search(r.Context(), userID, req.Query)
	if err != nil {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SearchResponse{Results: results})
}

func handleSendRequest(w http.ResponseWriter, r *http.Request, svc ContactsActioner, userID int64, body []byte) {
	var req ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := svc.SendRequest(r.Context(), userID, req.ContactEmail); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrRequestAlreadyExists):
			writeError(w, http.StatusBadRequest, "Request already sent")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ContactActionResponse{Success: true, Message: "Request sent"})
}

func handleHandleRequest(w http.ResponseWriter, r *http.Request, svc ContactsActioner, userID int64, body []byte) {
	var req HandleRequestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := svc.HandleRequest(r.Context(), userID, req.RequestID, req.Action); err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "Request not found")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ContactActionResponse{Success: true, Message: "Request handled"})
}
