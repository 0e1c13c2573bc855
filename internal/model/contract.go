package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

type Contract struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	ContractorID uuid.UUID
	Terms        string
	Status       ContractStatus
	CreatedAt    time.Time
}

// BelongsTo reports whether the profile is a party to the contract,
// on either side.
func (c Contract) BelongsTo(profileID uuid.UUID) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}
