package otp

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CodeRepo interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type UserRepo interface {
	DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor periodically removes expired verification codes and purges
// accounts that never completed verification.
type Janitor struct {
	codeRepo      CodeRepo
	userRepo      UserRepo
	sweepInterval time.Duration
	purgeWindow   time.Duration
}

func NewJanitor(codeRepo CodeRepo, userRepo UserRepo) *Janitor {
	return &Janitor{
		codeRepo:      codeRepo,
		userRepo:      userRepo,
		sweepInterval: time.Minute * 5,
		purgeWindow:   time.Hour * 24,
	}
}

func (j *Janitor) Start(ctx context.Context) {
	zap.L().Info("OTP janitor started")
	go j.run(ctx)
}

func (j *Janitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping janitor")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	now := time.Now()

	var g errgroup.Group
	g.Go(func() error {
		deleted, err := j.codeRepo.DeleteExpired(ctx, now)
		if err != nil {
			return err
		}
		if deleted > 0 {
			zap.L().Info("expired otp codes removed", zap.Int64("count", deleted))
		}
		return nil
	})
	g.Go(func() error {
		purged, err := j.userRepo.DeleteUnverifiedBefore(ctx, now.Add(-j.purgeWindow))
		if err != nil {
			return err
		}
		if purged > 0 {
			zap.L().Info("stale unverified users purged", zap.Int64("count", purged))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("janitor sweep failed", zap.Error(err))
	}
}
