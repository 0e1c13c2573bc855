package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type Profile struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Profession string
	Type       ProfileType
	Balance    decimal.Decimal
	CreatedAt  time.Time
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
