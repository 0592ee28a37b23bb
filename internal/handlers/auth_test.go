package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/ivanmsk/gw-contacts/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Email: "ann@example.com", Name: "Ann"}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockAuthenticator)
		expectedCode  int
		expectedToken string
		expectedError bool
	}{
		{
			name: "success",
			body: `{"action":"register","email":"ann@example.com","name":"Ann","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Register(gomock.Any(), "ann@example.com", "Ann", "secret1").
					Return("tok123", user, nil)
			},
			expectedCode:  200,
			expectedToken: "tok123",
		},
		{
			name: "duplicate email",
			body: `{"action":"register","email":"ann@example.com","name":"Ann","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Register(gomock.Any(), "ann@example.com", "Ann", "secret1").
					Return("", nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode:  400,
			expectedError: true,
		},
		{
			name:          "malformed email rejected before service",
			body:          `{"action":"register","email":"not-an-email","name":"Ann","password":"secret1"}`,
			expectedCode:  400,
			expectedError: true,
		},
		{
			name:          "short password rejected before service",
			body:          `{"action":"register","email":"ann@example.com","name":"Ann","password":"abc"}`,
			expectedCode:  400,
			expectedError: true,
		},
		{
			name:          "short name rejected before service",
			body:          `{"action":"register","email":"ann@example.com","name":"A","password":"secret1"}`,
			expectedCode:  400,
			expectedError: true,
		},
		{
			name: "internal server error",
			body: `{"action":"register","email":"ann@example.com","name":"Ann","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Register(gomock.Any(), "ann@example.com", "Ann", "secret1").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAuthHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.expectedError {
				assert.NotEmpty(t, resp["error"])
			} else {
				assert.Equal(t, tt.expectedToken, resp["token"])
				userResp := resp["user"].(map[string]any)
				assert.Equal(t, "ann@example.com", userResp["email"])
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Email: "ann@example.com", Name: "Ann"}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockAuthenticator)
		expectedCode  int
		expectedBody  map[string]string
		expectedToken string
	}{
		{
			name: "success",
			body: `{"action":"login","email":"ann@example.com","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Login(gomock.Any(), "ann@example.com", "secret1").
					Return("tok456", user, nil)
			},
			expectedCode:  200,
			expectedToken: "tok456",
		},
		{
			name: "wrong password",
			body: `{"action":"login","email":"ann@example.com","password":"wrong12"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Login(gomock.Any(), "ann@example.com", "wrong12").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid email or password"},
		},
		{
			name: "unknown email gets the same message",
			body: `{"action":"login","email":"ghost@example.com","password":"secret1"}`,
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret1").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid email or password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAuthHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			} else {
				var resp map[string]any
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedToken, resp["token"])
			}
		})
	}
}

func TestAuthHandler_Google(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avatar := "https://example.com/a.png"
	user := &models.User{ID: 2, Email: "bob@example.com", Name: "Bob", AvatarURL: &avatar}

	mockSvc := NewMockAuthenticator(ctrl)
	mockSvc.EXPECT().
		GoogleAuth(gomock.Any(), "goog-123", "bob@example.com", "Bob", &avatar).
		Return("tok789", user, nil)

	handler := NewAuthHandler(mockSvc)

	body := `{"action":"google","google_id":"goog-123","email":"bob@example.com","name":"Bob","avatar_url":"https://example.com/a.png"}`
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tok789", resp["token"])
	userResp := resp["user"].(map[string]any)
	assert.Equal(t, "https://example.com/a.png", userResp["avatar_url"])
}

func TestAuthHandler_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown action", body: `{"action":"frobnicate"}`},
		{name: "missing action", body: `{}`},
		{name: "invalid json", body: `{invalid json}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			handler := NewAuthHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, 400, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
