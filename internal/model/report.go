package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProfessionEarnings struct {
	Profession string
	Earned     decimal.Decimal
}

type ClientSpend struct {
	ID       uuid.UUID
	FullName string
	Paid     decimal.Decimal
}

type StatementLine struct {
	JobID            uuid.UUID
	ContractID       uuid.UUID
	Description      string
	CounterpartyName string
	Role             ProfileType
	Price            decimal.Decimal
	Paid             bool
	PaymentDate      *time.Time
}

type Statement struct {
	Profile          Profile
	PeriodStart      time.Time
	PeriodEnd        time.Time
	Lines            []StatementLine
	TotalPaid        decimal.Decimal
	TotalOutstanding decimal.Decimal
}
