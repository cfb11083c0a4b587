package otprepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/pg"
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

// Set stores the current code for an email, replacing any previous one.
func (r *Repository) Set(ctx context.Context, code *domain.OTPCode) error {
	query := `
		INSERT INTO otp_codes (email, code, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at
	`
	if _, err := r.db.Exec(ctx, query, code.Email, code.Code, code.ExpiresAt); err != nil {
		zap.L().Error("can't save otp code", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, email string) (*domain.OTPCode, error) {
	query := `
        SELECT email, code, expires_at
        FROM otp_codes
        WHERE email = $1
    `
	var code domain.OTPCode
	err := r.db.QueryRow(ctx, query, email).Scan(&code.Email, &code.Code, &code.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get otp code", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

func (r *Repository) Delete(ctx context.Context, email string) error {
	query := `
		DELETE FROM otp_codes
		WHERE email = $1
	`
	if _, err := r.db.Exec(ctx, query, email); err != nil {
		zap.L().Error("can't delete otp code", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM otp_codes
		WHERE expires_at < $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't delete expired otp codes", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
