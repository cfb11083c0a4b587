package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePledgeRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"50.00"`
}

type PledgeResponseDTO struct {
	ID                   string          `json:"id" example:"9f4b8e0a-3f2d-4a1c-9c0e-6d6e1f1a2b3c"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"number" example:"50.00"`
	AmountSent           decimal.Decimal `json:"amount_sent" swaggertype:"number" example:"12.50"`
	CompletionPercentage float64         `json:"completion_percentage" example:"25"`
	Status               string          `json:"status" example:"TASK1_COMPLETE"`
	CreatedAt            time.Time       `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	UpdatedAt            time.Time       `json:"updated_at" example:"2020-12-09T16:09:57+03:00"`
}

type UpdateStatusRequestDTO struct {
	Status   string `json:"status" example:"TASK2_COMPLETE"`
	Evidence string `json:"evidence,omitempty" example:"exchanged jar of coins at the bank"`
}

type ReportAmountSentRequestDTO struct {
	AmountSent decimal.Decimal `json:"amount_sent" swaggertype:"number" example:"12.50"`
}

type ReportAmountSentResponseDTO struct {
	Pledge               PledgeResponseDTO `json:"pledge"`
	AmountAdded          decimal.Decimal   `json:"amount_added" swaggertype:"number" example:"12.50"`
	NewTotalAmountSent   decimal.Decimal   `json:"new_total_amount_sent" swaggertype:"number" example:"25.00"`
	CompletionPercentage float64           `json:"completion_percentage" example:"50"`
	StatusChanged        bool              `json:"status_changed" example:"false"`
	NewStatus            string            `json:"new_status" example:"TASK1_COMPLETE"`
}

type PledgeTaskResponseDTO struct {
	ID     int    `json:"id" example:"1"`
	Name   string `json:"name" example:"Create Pledge"`
	Status string `json:"status" example:"completed"`
}
