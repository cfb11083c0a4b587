package donationrepo

import (
	"context"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateDonation inserts the write-once donation record for a completed
// pledge. The unique constraint on pledge_id guarantees at most one per
// pledge regardless of which completion path fired.
func (r *Repository) CreateDonation(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
		INSERT INTO donations (id, pledge_id, beneficiary_id, amount_cents, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, donation.ID, donation.PledgeID, donation.BeneficiaryID, donation.AmountCents, donation.CreatedAt).
		Scan(&donation.ID)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) GetDonationsByBeneficiaryID(ctx context.Context, beneficiaryID int) ([]domain.Donation, error) {
	query := `
        SELECT id, pledge_id, beneficiary_id, amount_cents, created_at
        FROM donations
        WHERE beneficiary_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, beneficiaryID)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		err := rows.Scan(&d.ID, &d.PledgeID, &d.BeneficiaryID, &d.AmountCents, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}

	return donations, nil
}

func (r *Repository) CountByPledgeID(ctx context.Context, pledgeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM donations
		WHERE pledge_id = $1
	`
	var count int
	if err := r.db.QueryRow(ctx, query, pledgeID).Scan(&count); err != nil {
		zap.L().Error("failed to count donations", zap.Error(err))
		return 0, err
	}
	return count, nil
}
