package pledgerepo

import (
	"context"
	"errors"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrVersionConflict means the pledge row changed between read and write.
// Callers are expected to surface it as a retryable conflict.
var ErrVersionConflict = errors.New("pledge was modified concurrently")

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

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pledge, error) {
	query := `
        SELECT id, donor_id, amount_cents, amount_sent_cents, completion_percentage, status, version, created_at, updated_at
        FROM pledges
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var pledge domain.Pledge
	err := row.Scan(&pledge.ID, &pledge.DonorID, &pledge.AmountCents, &pledge.AmountSentCents,
		&pledge.CompletionPercentage, &pledge.Status, &pledge.Version, &pledge.CreatedAt, &pledge.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pledge", zap.Error(err))
		return nil, err
	}
	return &pledge, nil
}

func (r *Repository) FindByDonorID(ctx context.Context, donorID int) ([]domain.Pledge, error) {
	query := `
        SELECT id, donor_id, amount_cents, amount_sent_cents, completion_percentage, status, version, created_at, updated_at
        FROM pledges
        WHERE donor_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, donorID)
	if err != nil {
		zap.L().Error("can't get pledges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pledges []domain.Pledge
	for rows.Next() {
		var pledge domain.Pledge
		err := rows.Scan(&pledge.ID, &pledge.DonorID, &pledge.AmountCents, &pledge.AmountSentCents,
			&pledge.CompletionPercentage, &pledge.Status, &pledge.Version, &pledge.CreatedAt, &pledge.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan pledge row", zap.Error(err))
			return nil, err
		}
		pledges = append(pledges, pledge)
	}
	return pledges, nil
}

func (r *Repository) Save(ctx context.Context, pledge *domain.Pledge) error {
	query := `
        INSERT INTO pledges (id, donor_id, amount_cents, amount_sent_cents, completion_percentage, status, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, pledge.ID, pledge.DonorID, pledge.AmountCents, pledge.AmountSentCents,
			pledge.CompletionPercentage, pledge.Status, pledge.Version, pledge.CreatedAt, pledge.UpdatedAt)
		if err != nil {
			zap.L().Error("can't save pledge", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// Update writes the mutable pledge fields guarded by the version the
// caller read. On success the stored version is bumped and the passed
// pledge is updated to match; a missed match means a concurrent writer
// won and ErrVersionConflict is returned.
func (r *Repository) Update(ctx context.Context, pledge *domain.Pledge) error {
	query := `
        UPDATE pledges
        SET amount_sent_cents = $1, completion_percentage = $2, status = $3, version = version + 1, updated_at = $4
        WHERE id = $5 AND version = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, pledge.AmountSentCents, pledge.CompletionPercentage,
			pledge.Status, pledge.UpdatedAt, pledge.ID, pledge.Version)
		if err != nil {
			zap.L().Error("failed to update pledge", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			zap.L().Warn("pledge version conflict", zap.String("pledge_id", pledge.ID.String()))
			return ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		return err
	}
	pledge.Version++
	return nil
}
