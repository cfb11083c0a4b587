package donationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmarkov/coindrop/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetDonations(t *testing.T) {
	service, repo := NewMock(t)

	donations := []domain.Donation{
		{
			ID:            uuid.New(),
			PledgeID:      uuid.New(),
			BeneficiaryID: 7,
			AmountCents:   5000,
			CreatedAt:     time.Now(),
		},
	}

	tests := []struct {
		name          string
		userID        int
		role          string
		prepareMock   func()
		expected      []domain.Donation
		expectedError error
	}{
		{
			name:   "Donee lists received donations",
			userID: 7,
			role:   domain.RoleDonee,
			prepareMock: func() {
				repo.EXPECT().GetDonationsByBeneficiaryID(gomock.Any(), 7).Return(donations, nil)
			},
			expected: donations,
		},
		{
			name:   "Donee with no donations gets an empty list",
			userID: 8,
			role:   domain.RoleDonee,
			prepareMock: func() {
				repo.EXPECT().GetDonationsByBeneficiaryID(gomock.Any(), 8).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:          "Donor cannot list donations",
			userID:        1,
			role:          domain.RoleDonor,
			prepareMock:   func() {},
			expectedError: ErrForbidden,
		},
		{
			name:   "Repository failure",
			userID: 7,
			role:   domain.RoleDonee,
			prepareMock: func() {
				repo.EXPECT().GetDonationsByBeneficiaryID(gomock.Any(), 7).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.GetDonations(context.Background(), tt.userID, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
