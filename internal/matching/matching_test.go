package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmarkov/coindrop/internal/domain"
)

func TestOldestDoneePickBeneficiary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	userRepo := NewMockUserRepo(ctrl)
	matcher := NewOldestDonee(userRepo)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.User
		expectedError error
	}{
		{
			name: "Picks the oldest registered donee",
			prepareMock: func() {
				userRepo.EXPECT().FindOldestByRole(gomock.Any(), domain.RoleDonee).Return(&domain.User{ID: 7, Role: domain.RoleDonee}, nil)
			},
			expected: &domain.User{ID: 7, Role: domain.RoleDonee},
		},
		{
			name: "No donee registered",
			prepareMock: func() {
				userRepo.EXPECT().FindOldestByRole(gomock.Any(), domain.RoleDonee).Return(nil, nil)
			},
			expectedError: ErrNoBeneficiary,
		},
		{
			name: "Repository failure",
			prepareMock: func() {
				userRepo.EXPECT().FindOldestByRole(gomock.Any(), domain.RoleDonee).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := matcher.PickBeneficiary(context.Background())

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}
