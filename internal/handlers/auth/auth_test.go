package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmarkov/coindrop/internal/domain"
	authservice "github.com/dmarkov/coindrop/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"username": "testdonor", "email": "donor@example.com", "password": "testpassword", "role": "DONOR"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testdonor", "donor@example.com", "testpassword", domain.RoleDonor).
					Return(&domain.User{ID: 1, Username: "testdonor"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid role",
			body: `{"username": "testuser", "email": "user@example.com", "password": "testpassword", "role": "ADMIN"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testuser", "user@example.com", "testpassword", "ADMIN").
					Return(nil, authservice.ErrInvalidRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Username already taken",
			body: `{"username": "testdonor", "email": "other@example.com", "password": "testpassword", "role": "DONOR"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "testdonor", "other@example.com", "testpassword", domain.RoleDonor).
					Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Email already registered",
			body: `{"username": "othername", "email": "donor@example.com", "password": "testpassword", "role": "DONOR"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "othername", "donor@example.com", "testpassword", domain.RoleDonor).
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful verification",
			body: `{"email": "donor@example.com", "code": "123456"}`,
			prepareMock: func() {
				service.EXPECT().Verify(gomock.Any(), "donor@example.com", "123456").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong code",
			body: `{"email": "donor@example.com", "code": "000000"}`,
			prepareMock: func() {
				service.EXPECT().Verify(gomock.Any(), "donor@example.com", "000000").Return(authservice.ErrInvalidOTP)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Expired code",
			body: `{"email": "donor@example.com", "code": "123456"}`,
			prepareMock: func() {
				service.EXPECT().Verify(gomock.Any(), "donor@example.com", "123456").Return(authservice.ErrExpiredOTP)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/verify", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Verify(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectToken  bool
	}{
		{
			name: "Successful login",
			body: `{"email": "donor@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "testpassword").
					Return(&domain.User{ID: 1, Role: domain.RoleDonor, Verified: true}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleDonor).Return("signed.token", nil)
			},
			expectedCode: http.StatusOK,
			expectToken:  true,
		},
		{
			name: "Invalid credentials",
			body: `{"email": "donor@example.com", "password": "wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Unverified account",
			body: `{"email": "donor@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "testpassword").
					Return(nil, authservice.ErrNotVerified)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Token generation failure",
			body: `{"email": "donor@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "donor@example.com", "testpassword").
					Return(&domain.User{ID: 1, Role: domain.RoleDonor, Verified: true}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleDonor).Return("", assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectToken {
				assert.Equal(t, "Bearer signed.token", w.Header().Get("Authorization"))
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "login successful", resp["message"])
			}
		})
	}
}
