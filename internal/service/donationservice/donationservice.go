package donationservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dmarkov/coindrop/internal/domain"
)

type Repo interface {
	GetDonationsByBeneficiaryID(ctx context.Context, beneficiaryID int) ([]domain.Donation, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrForbidden = errors.New("operation not permitted for this user")

// GetDonations lists the donations received by a donee, newest first.
// Donors have no donations addressed to them, so the endpoint is
// donee-only.
func (s *Service) GetDonations(ctx context.Context, userID int, role string) ([]domain.Donation, error) {
	if role != domain.RoleDonee {
		zap.L().Info("donation listing rejected for role", zap.String("role", role), zap.Int("user_id", userID))
		return nil, ErrForbidden
	}

	donations, err := s.repo.GetDonationsByBeneficiaryID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
