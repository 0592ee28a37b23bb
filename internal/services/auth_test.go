package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/ivanmsk/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		email     string
		userName  string
		password  string
		savedUser *models.User
		writerErr error
		wantErr   error
	}{
		{
			name:      "successful registration",
			email:     "alice@example.com",
			userName:  "Alice",
			password:  "pass123",
			savedUser: &models.User{ID: 1, Email: "alice@example.com", Name: "Alice"},
		},
		{
			name:     "email already registered",
			email:    "bob@example.com",
			userName: "Bob",
			password: "pass123",
			wantErr:  services.ErrEmailAlreadyRegistered,
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			userName:  "Carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockTokens := services.NewMockTokenIssuer(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockKafka)

			mockWriter.EXPECT().
				Save(gomock.Any(), tt.email, tt.userName, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, passwordHash string) (*models.User, error) {
					if tt.writerErr != nil {
						return nil, tt.writerErr
					}
					if tt.savedUser == nil {
						return nil, nil
					}
					// The stored hash must verify against the plain password.
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
					return tt.savedUser, nil
				})

			if tt.savedUser != nil {
				mockTokens.EXPECT().
					Issue(gomock.Any(), tt.savedUser.ID).
					Return("token123", nil)
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			token, user, err := svc.Register(context.Background(), tt.email, tt.userName, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.savedUser, user)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	hashStr := string(hash)

	existing := &models.UserDB{ID: 1, Email: "alice@example.com", Name: "Alice", PasswordHash: &hashStr}

	tests := []struct {
		name     string
		email    string
		password string
		dbUser   *models.UserDB
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: "pass123",
			dbUser:   existing,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			dbUser:   existing,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "pass123",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "google-only account has no password",
			email:    "bob@example.com",
			password: "pass123",
			dbUser:   &models.UserDB{ID: 2, Email: "bob@example.com", Name: "Bob"},
			wantErr:  services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockTokens := services.NewMockTokenIssuer(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.dbUser, nil)

			if tt.wantErr == nil {
				mockTokens.EXPECT().
					Issue(gomock.Any(), tt.dbUser.ID).
					Return("token456", nil)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token456", token)
				assert.Equal(t, tt.dbUser.ID, user.ID)
				assert.Equal(t, tt.dbUser.Email, user.Email)
			}
		})
	}
}

func TestAuthService_GoogleAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("existing google user logs in without a new row", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockTokens := services.NewMockTokenIssuer(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

		googleID := "goog-1"
		existing := &models.UserDB{ID: 5, Email: "eve@example.com", Name: "Eve", GoogleID: &googleID}

		mockReader.EXPECT().
			GetByGoogleID(gomock.Any(), "goog-1").
			Return(existing, nil)
		mockTokens.EXPECT().
			Issue(gomock.Any(), int64(5)).
			Return("tokenA", nil)

		token, user, err := svc.GoogleAuth(context.Background(), "goog-1", "eve@example.com", "Eve Renamed", nil)
		assert.NoError(t, err)
		assert.Equal(t, "tokenA", token)
		// No profile sync on repeat login.
		assert.Equal(t, "Eve", user.Name)
	})

	t.Run("first login creates the user", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockTokens := services.NewMockTokenIssuer(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockKafka)

		created := &models.User{ID: 6, Email: "frank@example.com", Name: "Frank"}

		mockReader.EXPECT().
			GetByGoogleID(gomock.Any(), "goog-2").
			Return(nil, nil)
		mockWriter.EXPECT().
			SaveGoogle(gomock.Any(), "frank@example.com", "Frank", "goog-2", nil).
			Return(created, nil)
		mockTokens.EXPECT().
			Issue(gomock.Any(), int64(6)).
			Return("tokenB", nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		token, user, err := svc.GoogleAuth(context.Background(), "goog-2", "frank@example.com", "Frank", nil)
		assert.NoError(t, err)
		assert.Equal(t, "tokenB", token)
		assert.Equal(t, created, user)
	})

	t.Run("email bound to another account", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockTokens := services.NewMockTokenIssuer(ctrl)

		svc := services.NewAuthService(mockReader, mockWriter, mockTokens, nil)

		mockReader.EXPECT().
			GetByGoogleID(gomock.Any(), "goog-3").
			Return(nil, nil)
		mockWriter.EXPECT().
			SaveGoogle(gomock.Any(), "alice@example.com", "Alice", "goog-3", nil).
			Return(nil, nil)

		_, _, err := svc.GoogleAuth(context.Background(), "goog-3", "alice@example.com", "Alice", nil)
		assert.ErrorIs(t, err, services.ErrEmailAlreadyRegistered)
	})
}
