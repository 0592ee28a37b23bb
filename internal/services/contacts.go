package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/models"
)

// Error variables
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRequestAlreadyExists = errors.New("contact request already exists")
	ErrRequestNotFound      = errors.New("contact request not found")
)

// UserFinder defines the user lookups the contact service needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	Search(ctx context.Context, excludeID int64, query string) ([]models.User, error)
}

// ContactReader defines read operations over contact edges.
type ContactReader interface {
	ListAccepted(ctx context.Context, userID int64) ([]models.Contact, error)
	ListIncomingPending(ctx context.Context, userID int64) ([]models.IncomingRequest, error)
	ListOutgoingPending(ctx context.Context, userID int64) ([]models.SentRequest, error)
}

// ContactWriter defines write operations over contact edges. Both methods
// report via their bool whether a row was actually written.
type ContactWriter interface {
	Save(ctx context.Context, userID, contactUserID int64) (bool, error)
	UpdateStatus(ctx context.Context, requestID, recipientID int64, status string) (bool, error)
}

// ContactService handles the contact graph: search, the request lifecycle and
// the list reads.
type ContactService struct {
	users       UserFinder
	reader      ContactReader
	writer      ContactWriter
	kafkaWriter KafkaWriter
}

// NewContactService creates a new ContactService.
func NewContactService(users UserFinder, reader ContactReader, writer ContactWriter, kafkaWriter KafkaWriter) *ContactService {
	return &ContactService{
		users:       users,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller's accepted contacts, newest first.
func (svc *ContactService) List(ctx context.Context, userID int64) ([]models.Contact, error) {
	contacts, err := svc.reader.ListAccepted(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list contacts", "userID", userID, "error", err)
		return nil, err
	}
	return contacts, nil
}

// IncomingRequests returns pending requests addressed to the caller, newest first.
func (svc *ContactService) IncomingRequests(ctx context.Context, userID int64) ([]models.IncomingRequest, error) {
	requests, err := svc.reader.ListIncomingPending(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list incoming requests", "userID", userID, "error", err)
		return nil, err
	}
	return requests, nil
}

// SentRequests returns pending requests the caller has sent, newest first.
func (svc *ContactService) SentRequests(ctx context.Context, userID int64) ([]models.SentRequest, error) {
	sent, err := svc.reader.ListOutgoingPending(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list sent requests", "userID", userID, "error", err)
		return nil, err
	}
	return sent, nil
}

// Search finds users matching query by name or email, excluding the caller.
func (svc *ContactService) Search(ctx context.Context, userID int64, query string) ([]models.User, error) {
	results, err := svc.users.Search(ctx, userID, query)
	if err != nil {
		logger.Log.Errorw("failed to search users", "userID", userID, "error", err)
		return nil, err
	}
	return results, nil
}

// SendRequest creates a pending edge from the caller to the user owning
// contactEmail. An existing edge in any status blocks the request.
func (svc *ContactService) SendRequest(ctx context.Context, userID int64, contactEmail string) error {
	target, err := svc.users.GetByEmail(ctx, contactEmail)
	if err != nil {
		logger.Log.Errorw("failed to resolve contact email", "error", err)
		return err
	}
	if target == nil {
		logger.Log.Errorw("contact email not found", "email", contactEmail)
		return ErrUserNotFound
	}

	inserted, err := svc.writer.Save(ctx, userID, target.ID)
	if err != nil {
		logger.Log.Errorw("failed to save contact request", "userID", userID, "contactUserID", target.ID, "error", err)
		return err
	}
	if !inserted {
		logger.Log.Errorw("contact request already exists", "userID", userID, "contactUserID", target.ID)
		return ErrRequestAlreadyExists
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:       uuid.NewString(),
		Type:          models.EventContactRequestSent,
		Timestamp:     time.Now().Unix(),
		UserID:        userID,
		ContactUserID: target.ID,
	})

	return nil
}

// HandleRequest accepts or rejects a pending request addressed to the caller.
// action must be "accept" or "reject"; anything else is the handler's problem.
func (svc *ContactService) HandleRequest(ctx context.Context, userID, requestID int64, action string) error {
	status := models.ContactStatusRejected
	if action == "accept" {
		status = models.ContactStatusAccepted
	}

	updated, err := svc.writer.UpdateStatus(ctx, requestID, userID, status)
	if err != nil {
		logger.Log.Errorw("failed to update contact request", "requestID", requestID, "userID", userID, "error", err)
		return err
	}
	if !updated {
		logger.Log.Errorw("contact request not found", "requestID", requestID, "userID", userID)
		return ErrRequestNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventContactRequestHandled,
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		RequestID: requestID,
		Detail:    status,
	})

	return nil
}
