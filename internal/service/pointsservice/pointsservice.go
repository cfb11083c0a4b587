package pointsservice

import (
	"context"

	"github.com/dmarkov/coindrop/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetUserPoints(ctx context.Context, userID int) (*domain.SocialImpactPoint, error)
	AddPoints(ctx context.Context, userID int, delta int) (*domain.SocialImpactPoint, error)
	Top(ctx context.Context, limit int) ([]domain.SocialImpactPoint, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const defaultLeaderboardLimit = 10

// GetPoints returns the user's running total. A user with no ledger row
// yet simply has zero points.
func (s *Service) GetPoints(ctx context.Context, userID int) (*domain.SocialImpactPoint, error) {
	sip, err := s.repo.GetUserPoints(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get points", zap.Error(err))
		return nil, err
	}
	if sip == nil {
		return &domain.SocialImpactPoint{UserID: userID, Points: 0}, nil
	}
	return sip, nil
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]domain.SocialImpactPoint, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	totals, err := s.repo.Top(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	return totals, nil
}
