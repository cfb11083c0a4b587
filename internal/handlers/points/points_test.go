package points

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/dto"
	"github.com/dmarkov/coindrop/pkg/auth"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, path string, userID int) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestGetPointsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     dto.PointsResponseDTO
	}{
		{
			name: "Points returned",
			prepareMock: func() {
				service.EXPECT().GetPoints(gomock.Any(), 1).Return(&domain.SocialImpactPoint{UserID: 1, Points: 45}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.PointsResponseDTO{UserID: 1, Points: 45},
		},
		{
			name: "Zero points for a fresh user",
			prepareMock: func() {
				service.EXPECT().GetPoints(gomock.Any(), 1).Return(&domain.SocialImpactPoint{UserID: 1, Points: 0}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     dto.PointsResponseDTO{UserID: 1, Points: 0},
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetPoints(gomock.Any(), 1).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newAuthedRequest(http.MethodGet, "/api/user/points", 1)
			w := httptest.NewRecorder()

			handler.GetPoints(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.PointsResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}

func TestLeaderboardHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		path         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Explicit limit",
			path: "/api/leaderboard?limit=2",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 2).Return([]domain.SocialImpactPoint{
					{UserID: 3, Points: 500},
					{UserID: 1, Points: 65},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Missing limit falls through as zero",
			path: "/api/leaderboard",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 0).Return([]domain.SocialImpactPoint{
					{UserID: 3, Points: 500},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Service failure",
			path: "/api/leaderboard",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 0).Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newAuthedRequest(http.MethodGet, tt.path, 1)
			w := httptest.NewRecorder()

			handler.Leaderboard(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.LeaderboardEntryDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
