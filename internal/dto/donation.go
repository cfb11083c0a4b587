package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationResponseDTO struct {
	ID        string          `json:"id" example:"2c1a7f3e-5b4d-4e2a-8f0c-1d2e3f4a5b6c"`
	PledgeID  string          `json:"pledge_id" example:"9f4b8e0a-3f2d-4a1c-9c0e-6d6e1f1a2b3c"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"50.00"`
	CreatedAt time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
