package userrepo

import (
	"context"
	"time"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/pg"
	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, verified, created_at
		FROM users
		WHERE email = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Verified, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, verified, created_at
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Verified, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role, user.Verified).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) MarkVerified(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET verified = TRUE
		WHERE email = $1
	`
	if _, err := repo.db.Exec(ctx, query, email); err != nil {
		zap.L().Error("can't mark user verified", zap.Error(err))
		return err
	}
	return nil
}

// FindOldestByRole returns the earliest-registered verified user with the
// given role, or nil when there is none.
func (repo *Repository) FindOldestByRole(ctx context.Context, role string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, verified, created_at
		FROM users
		WHERE role = $1 AND verified = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, role).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Verified, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by role", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) DeleteUnverifiedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM users
		WHERE verified = FALSE AND created_at < $1
	`
	tag, err := repo.db.Exec(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't delete unverified users", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
