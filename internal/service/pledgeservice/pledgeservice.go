package pledgeservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/lifecycle"
	"github.com/dmarkov/coindrop/internal/matching"
	"github.com/dmarkov/coindrop/internal/pg"
	"github.com/dmarkov/coindrop/internal/points"
	"github.com/dmarkov/coindrop/pkg/validate"
)

type PledgeRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pledge, error)
	FindByDonorID(ctx context.Context, donorID int) ([]domain.Pledge, error)
	Save(ctx context.Context, pledge *domain.Pledge) error
	Update(ctx context.Context, pledge *domain.Pledge) error
}

type DonationRepo interface {
	CreateDonation(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	CountByPledgeID(ctx context.Context, pledgeID uuid.UUID) (int, error)
}

type PointsRepo interface {
	AddPoints(ctx context.Context, userID int, delta int) (*domain.SocialImpactPoint, error)
}

type Service struct {
	pledgeRepo   PledgeRepo
	donationRepo DonationRepo
	pointsRepo   PointsRepo
	matcher      matching.Strategy
	txManager    pg.TXManager
}

func New(pledgeRepo PledgeRepo, donationRepo DonationRepo, pointsRepo PointsRepo, matcher matching.Strategy, txManager pg.TXManager) *Service {
	return &Service{
		pledgeRepo:   pledgeRepo,
		donationRepo: donationRepo,
		pointsRepo:   pointsRepo,
		matcher:      matcher,
		txManager:    txManager,
	}
}

var (
	ErrForbidden      = errors.New("operation not permitted for this user")
	ErrPledgeNotFound = errors.New("pledge not found")
)

// AmountSentResult describes the outcome of ReportAmountSent.
type AmountSentResult struct {
	Pledge               *domain.Pledge
	AmountAddedCents     int64
	NewTotalSentCents    int64
	CompletionPercentage float64
	StatusChanged        bool
	NewStatus            string
}

// CreatePledge persists a new pledge for a donor. Task 1 is the act of
// pledging, so the pledge is created directly in TASK1_COMPLETE and the
// creation, task-1 and tier-bonus points are awarded in the same
// transaction as the insert.
func (s *Service) CreatePledge(ctx context.Context, userID int, role string, amount decimal.Decimal) (*domain.Pledge, error) {
	if role != domain.RoleDonor {
		zap.L().Info("pledge creation rejected for role", zap.String("role", role), zap.Int("user_id", userID))
		return nil, ErrForbidden
	}

	amountCents, err := validate.PledgeAmountToCents(amount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pledge := &domain.Pledge{
		ID:                   uuid.New(),
		DonorID:              userID,
		AmountCents:          amountCents,
		AmountSentCents:      0,
		CompletionPercentage: 0,
		Status:               lifecycle.StatusTask1Complete,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	delta := points.CreationPoints(amountCents)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.pledgeRepo.Save(ctx, pledge); err != nil {
			return err
		}
		if _, err := s.pointsRepo.AddPoints(ctx, userID, delta); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create pledge", zap.Error(err))
		return nil, err
	}

	zap.L().Info("pledge created",
		zap.String("pledge_id", pledge.ID.String()),
		zap.Int64("amount_cents", amountCents),
		zap.Int("points_awarded", delta),
	)
	return pledge, nil
}

// UpdateStatus advances a pledge one step through the task workflow.
// Status write, points award and (on completion) the donation record are
// committed as one unit or not at all.
func (s *Service) UpdateStatus(ctx context.Context, userID int, pledgeID uuid.UUID, newStatus, evidence string) (*domain.Pledge, error) {
	pledge, err := s.loadOwned(ctx, userID, pledgeID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ValidateTransition(pledge.Status, newStatus, evidence); err != nil {
		return nil, err
	}

	pledge.Status = newStatus
	pledge.UpdatedAt = time.Now()
	delta := points.TaskPoints(newStatus)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.pledgeRepo.Update(ctx, pledge); err != nil {
			return err
		}
		if _, err := s.pointsRepo.AddPoints(ctx, userID, delta); err != nil {
			return err
		}
		if newStatus == lifecycle.StatusCompleted {
			if err := s.createDonation(ctx, pledge); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update pledge status", zap.Error(err))
		return nil, err
	}

	zap.L().Info("pledge status updated",
		zap.String("pledge_id", pledge.ID.String()),
		zap.String("status", newStatus),
		zap.Int("points_awarded", delta),
	)
	return pledge, nil
}

// ReportAmountSent accumulates a partial fund transfer onto the pledge.
// Driving the total to 100% completes the pledge through the amount path:
// the donor gets the floor(amount*10) completion reward and the donation
// record is created, same as task-path completion.
func (s *Service) ReportAmountSent(ctx context.Context, userID int, pledgeID uuid.UUID, amount decimal.Decimal) (*AmountSentResult, error) {
	pledge, err := s.loadOwned(ctx, userID, pledgeID)
	if err != nil {
		return nil, err
	}

	deltaCents, err := validate.DeltaAmountToCents(amount)
	if err != nil {
		return nil, err
	}

	progress, err := lifecycle.ApplyAmount(pledge.Status, pledge.AmountCents, pledge.AmountSentCents, deltaCents)
	if err != nil {
		return nil, err
	}

	pledge.AmountSentCents = progress.AmountSentCents
	pledge.CompletionPercentage = progress.CompletionPercentage
	pledge.Status = progress.Status
	pledge.UpdatedAt = time.Now()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.pledgeRepo.Update(ctx, pledge); err != nil {
			return err
		}
		if progress.StatusChanged {
			reward := points.CompletionReward(pledge.AmountCents)
			if _, err := s.pointsRepo.AddPoints(ctx, userID, reward); err != nil {
				return err
			}
			if err := s.createDonation(ctx, pledge); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't report amount sent", zap.Error(err))
		return nil, err
	}

	zap.L().Info("amount sent reported",
		zap.String("pledge_id", pledge.ID.String()),
		zap.Int64("delta_cents", deltaCents),
		zap.Float64("completion_percentage", progress.CompletionPercentage),
		zap.Bool("status_changed", progress.StatusChanged),
	)
	return &AmountSentResult{
		Pledge:               pledge,
		AmountAddedCents:     deltaCents,
		NewTotalSentCents:    progress.AmountSentCents,
		CompletionPercentage: progress.CompletionPercentage,
		StatusChanged:        progress.StatusChanged,
		NewStatus:            progress.Status,
	}, nil
}

func (s *Service) GetPledges(ctx context.Context, userID int) ([]domain.Pledge, error) {
	pledges, err := s.pledgeRepo.FindByDonorID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get pledges", zap.Error(err))
		return nil, err
	}
	return pledges, nil
}

// GetTasks derives the three fixed task states from the pledge status.
func (s *Service) GetTasks(ctx context.Context, userID int, pledgeID uuid.UUID) ([]domain.PledgeTask, error) {
	pledge, err := s.loadOwned(ctx, userID, pledgeID)
	if err != nil {
		return nil, err
	}

	statuses, err := lifecycle.TaskStatuses(pledge.Status)
	if err != nil {
		return nil, err
	}
	names := lifecycle.TaskNames()

	tasks := make([]domain.PledgeTask, len(statuses))
	for i := range statuses {
		tasks[i] = domain.PledgeTask{
			ID:     i + 1,
			Name:   names[i],
			Status: statuses[i],
		}
	}
	return tasks, nil
}

func (s *Service) loadOwned(ctx context.Context, userID int, pledgeID uuid.UUID) (*domain.Pledge, error) {
	pledge, err := s.pledgeRepo.FindByID(ctx, pledgeID)
	if err != nil {
		return nil, err
	}
	if pledge == nil {
		return nil, ErrPledgeNotFound
	}
	if pledge.DonorID != userID {
		zap.L().Info("pledge access denied",
			zap.String("pledge_id", pledgeID.String()),
			zap.Int("user_id", userID),
		)
		return nil, ErrForbidden
	}
	return pledge, nil
}

func (s *Service) createDonation(ctx context.Context, pledge *domain.Pledge) error {
	count, err := s.donationRepo.CountByPledgeID(ctx, pledge.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("donation already exists for pledge", zap.String("pledge_id", pledge.ID.String()))
		return nil
	}

	beneficiary, err := s.matcher.PickBeneficiary(ctx)
	if err != nil {
		return err
	}
	donation := &domain.Donation{
		ID:            uuid.New(),
		PledgeID:      pledge.ID,
		BeneficiaryID: beneficiary.ID,
		AmountCents:   pledge.AmountCents,
		CreatedAt:     time.Now(),
	}
	if _, err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		return err
	}
	zap.L().Info("donation created",
		zap.String("pledge_id", pledge.ID.String()),
		zap.Int("beneficiary_id", beneficiary.ID),
	)
	return nil
}
