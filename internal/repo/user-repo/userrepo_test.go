package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var userColumns = []string{"id", "username", "email", "password_hash", "role", "verified", "created_at"}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User exists",
			email: "donor@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "testdonor", "donor@example.com", "hashedpassword", domain.RoleDonor, true, now)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
					WithArgs("donor@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Username:     "testdonor",
				Email:        "donor@example.com",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleDonor,
				Verified:     true,
				CreatedAt:    now,
			},
		},
		{
			name:  "User does not exist",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "donor@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
					WithArgs("donor@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("User created", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("testdonor", "donor@example.com", "hashedpassword", domain.RoleDonor, false).
			WillReturnRows(rows)

		user, err := repo.Create(context.Background(), &domain.User{
			Username:     "testdonor",
			Email:        "donor@example.com",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleDonor,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("testdonor", "donor@example.com", "hashedpassword", domain.RoleDonor, false).
			WillReturnError(errors.New("database error"))

		user, err := repo.Create(context.Background(), &domain.User{
			Username:     "testdonor",
			Email:        "donor@example.com",
			PasswordHash: "hashedpassword",
			Role:         domain.RoleDonor,
		})
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindOldestByRole(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Oldest verified donee", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(7, "firstdonee", "donee@example.com", "hashedpassword", domain.RoleDonee, true, now)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
			WithArgs(domain.RoleDonee).
			WillReturnRows(rows)

		user, err := repo.FindOldestByRole(context.Background(), domain.RoleDonee)
		assert.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No user with the role", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
			WithArgs(domain.RoleDonee).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindOldestByRole(context.Background(), domain.RoleDonee)
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteUnverifiedBefore(t *testing.T) {
	repo, mock := NewMock(t)
	cutoff := time.Now().Add(-24 * time.Hour)

	t.Run("Stale accounts removed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WithArgs(cutoff).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		removed, err := repo.DeleteUnverifiedBefore(context.Background(), cutoff)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
