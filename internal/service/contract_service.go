package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
)

type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListActiveForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error)
}

type ContractService struct {
	contracts ContractStore
}

func NewContractService(contracts ContractStore) *ContractService {
	return &ContractService{contracts: contracts}
}

func (s *ContractService) GetContract(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Contract, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !contract.BelongsTo(principal.ProfileID) {
		return nil, fmt.Errorf("%w: contract %s does not belong to profile %s",
			ErrNotOwner, contract.ID, principal.ProfileID)
	}
	return contract, nil
}

// ListContracts returns the caller's contracts on either side, excluding
// terminated ones.
func (s *ContractService) ListContracts(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	return s.contracts.ListActiveForProfile(ctx, principal.ProfileID)
}
