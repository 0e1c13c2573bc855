package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Job struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
}

// UnpaidJob is a job row joined with the parties of its contract,
// as returned by eligibility queries.
type UnpaidJob struct {
	Job
	ClientID     uuid.UUID
	ContractorID uuid.UUID
}
