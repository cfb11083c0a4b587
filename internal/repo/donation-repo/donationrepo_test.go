package donationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dmarkov/coindrop/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_CreateDonation(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	donation := &domain.Donation{
		ID:            uuid.New(),
		PledgeID:      uuid.New(),
		BeneficiaryID: 7,
		AmountCents:   5000,
		CreatedAt:     now,
	}

	t.Run("Donation created", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(donation.ID)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donations")).
			WithArgs(donation.ID, donation.PledgeID, donation.BeneficiaryID, donation.AmountCents, donation.CreatedAt).
			WillReturnRows(rows)

		created, err := repo.CreateDonation(context.Background(), donation)
		assert.NoError(t, err)
		assert.Equal(t, donation.ID, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate pledge violates the unique constraint", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donations")).
			WithArgs(donation.ID, donation.PledgeID, donation.BeneficiaryID, donation.AmountCents, donation.CreatedAt).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		created, err := repo.CreateDonation(context.Background(), donation)
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetDonationsByBeneficiaryID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Returns donations newest first", func(t *testing.T) {
		firstID, secondID := uuid.New(), uuid.New()
		rows := pgxmock.NewRows([]string{"id", "pledge_id", "beneficiary_id", "amount_cents", "created_at"}).
			AddRow(firstID, uuid.New(), 7, int64(5000), now).
			AddRow(secondID, uuid.New(), 7, int64(1000), now.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("FROM donations")).
			WithArgs(7).
			WillReturnRows(rows)

		donations, err := repo.GetDonationsByBeneficiaryID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, donations, 2)
		assert.Equal(t, firstID, donations[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM donations")).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		donations, err := repo.GetDonationsByBeneficiaryID(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, donations)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CountByPledgeID(t *testing.T) {
	repo, mock := NewMock(t)
	pledgeID := uuid.New()

	t.Run("Counts donations for a pledge", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
			WithArgs(pledgeID).
			WillReturnRows(rows)

		count, err := repo.CountByPledgeID(context.Background(), pledgeID)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
