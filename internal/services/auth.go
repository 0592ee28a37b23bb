package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users. Both methods return
// (nil, nil) when a uniqueness constraint rejected the insert.
type UserWriter interface {
	Save(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	SaveGoogle(ctx context.Context, email, name, googleID string, avatarURL *string) (*models.User, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and the two login flows.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenIssuer
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a password-based user and returns a session token plus the
// public user projection.
func (svc *AuthService) Register(ctx context.Context, email, name, password string) (string, *models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, email, name, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", nil, ErrEmailAlreadyRegistered
	}

	token, err := svc.tokens.Issue(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to issue session token", "err", err)
		return "", nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventUserRegistered,
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Detail:    "password",
	})

	return token, user, nil
}

// Login authenticates an email/password pair. Unknown email, wrong password
// and password-less google accounts all yield the same ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil || user.PasswordHash == nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Issue(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to issue session token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GoogleAuth logs a user in by google id, creating the account on first
// contact. Repeat logins with the same google id return the existing user
// without syncing name or avatar.
func (svc *AuthService) GoogleAuth(ctx context.Context, googleID, email, name string, avatarURL *string) (string, *models.User, error) {
	existing, err := svc.reader.GetByGoogleID(ctx, googleID)
	if err != nil {
		logger.Log.Errorw("failed to get user by google id", "err", err)
		return "", nil, err
	}

	if existing != nil {
		token, err := svc.tokens.Issue(ctx, existing.ID)
		if err != nil {
			logger.Log.Errorw("failed to issue session token", "err", err)
			return "", nil, err
		}
		return token, existing.Public(), nil
	}

	user, err := svc.writer.SaveGoogle(ctx, email, name, googleID, avatarURL)
	if err != nil {
		logger.Log.Errorw("failed to save google user", "err", err)
		return "", nil, err
	}
	if user == nil {
		// The email is already bound to another account. Linking is not
		// implemented, so this surfaces as a duplicate registration.
		logger.Log.Errorw("email already registered", "email", email)
		return "", nil, ErrEmailAlreadyRegistered
	}

	token, err := svc.tokens.Issue(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to issue session token", "err", err)
		return "", nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventUserRegistered,
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Detail:    "google",
	})

	return token, user, nil
}
