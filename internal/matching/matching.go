package matching

import (
	"context"
	"errors"

	"github.com/dmarkov/coindrop/internal/domain"
)

var ErrNoBeneficiary = errors.New("no beneficiary available for matching")

// Strategy picks the beneficiary for a completed pledge. The default is
// a deterministic placeholder; a real matching algorithm plugs in here
// without touching the pledge orchestrator.
type Strategy interface {
	PickBeneficiary(ctx context.Context) (*domain.User, error)
}

type UserRepo interface {
	FindOldestByRole(ctx context.Context, role string) (*domain.User, error)
}

// OldestDonee matches every completed pledge to the oldest-registered
// DONEE user.
type OldestDonee struct {
	userRepo UserRepo
}

func NewOldestDonee(userRepo UserRepo) *OldestDonee {
	return &OldestDonee{userRepo: userRepo}
}

func (m *OldestDonee) PickBeneficiary(ctx context.Context) (*domain.User, error) {
	user, err := m.userRepo.FindOldestByRole(ctx, domain.RoleDonee)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoBeneficiary
	}
	return user, nil
}
