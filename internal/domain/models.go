package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleDonor string = "DONOR"
	RoleDonee string = "DONEE"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Verified     bool      `db:"verified"`
	CreatedAt    time.Time `db:"created_at"`
}

// Amounts are stored as integer cents; the HTTP boundary converts
// to and from decimal values.
type Pledge struct {
	ID                   uuid.UUID `db:"id"`
	DonorID              int       `db:"donor_id"`
	AmountCents          int64     `db:"amount_cents"`
	AmountSentCents      int64     `db:"amount_sent_cents"`
	CompletionPercentage float64   `db:"completion_percentage"`
	Status               string    `db:"status"`
	Version              int       `db:"version"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type Donation struct {
	ID            uuid.UUID `db:"id"`
	PledgeID      uuid.UUID `db:"pledge_id"`
	BeneficiaryID int       `db:"beneficiary_id"`
	AmountCents   int64     `db:"amount_cents"`
	CreatedAt     time.Time `db:"created_at"`
}

type SocialImpactPoint struct {
	UserID int `db:"user_id"`
	Points int `db:"points"`
}

type OTPCode struct {
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
}

// PledgeTask is derived from Pledge.Status on read and never persisted.
type PledgeTask struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
