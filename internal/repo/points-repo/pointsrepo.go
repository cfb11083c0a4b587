package pointsrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserPoints(ctx context.Context, userID int) (*domain.SocialImpactPoint, error) {
	query := `
        SELECT user_id, points
        FROM social_impact_points
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var sip domain.SocialImpactPoint
	err := row.Scan(&sip.UserID, &sip.Points)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user points", zap.Error(err))
		return nil, err
	}
	return &sip, nil
}

// AddPoints upsert-increments the user's ledger row by delta. The row is
// created on the first award; the total is never decremented here.
func (r *Repository) AddPoints(ctx context.Context, userID int, delta int) (*domain.SocialImpactPoint, error) {
	var updated domain.SocialImpactPoint
	query := `
		INSERT INTO social_impact_points (user_id, points)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET points = social_impact_points.points + EXCLUDED.points
		RETURNING user_id, points
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, userID, delta)
		err := row.Scan(&updated.UserID, &updated.Points)
		if err != nil {
			zap.L().Error("failed to add user points", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Top(ctx context.Context, limit int) ([]domain.SocialImpactPoint, error) {
	query := `
        SELECT user_id, points
        FROM social_impact_points
        ORDER BY points DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.SocialImpactPoint
	for rows.Next() {
		var sip domain.SocialImpactPoint
		if err := rows.Scan(&sip.UserID, &sip.Points); err != nil {
			zap.L().Error("failed to scan points row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, sip)
	}
	return totals, nil
}
