package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
)

func TestGetContract_OwnerAccess(t *testing.T) {
	ctx := context.Background()
	store := new(MockContractStore)
	svc := NewContractService(store)

	clientID := uuid.New()
	contractorID := uuid.New()
	contract := &model.Contract{
		ID:           uuid.New(),
		ClientID:     clientID,
		ContractorID: contractorID,
		Status:       model.ContractStatusInProgress,
	}
	store.On("GetContract", ctx, contract.ID).Return(contract, nil)

	got, err := svc.GetContract(ctx, contract.ID, model.Principal{ProfileID: clientID, Type: model.ProfileTypeClient})
	assert.NoError(t, err)
	assert.Equal(t, contract.ID, got.ID)

	got, err = svc.GetContract(ctx, contract.ID, model.Principal{ProfileID: contractorID, Type: model.ProfileTypeContractor})
	assert.NoError(t, err)
	assert.Equal(t, contract.ID, got.ID)
}

func TestGetContract_NotOwner(t *testing.T) {
	ctx := context.Background()
	store := new(MockContractStore)
	svc := NewContractService(store)

	contract := &model.Contract{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		ContractorID: uuid.New(),
	}
	store.On("GetContract", ctx, contract.ID).Return(contract, nil)

	_, err := svc.GetContract(ctx, contract.ID, model.Principal{ProfileID: uuid.New(), Type: model.ProfileTypeClient})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGetContract_Missing(t *testing.T) {
	ctx := context.Background()
	store := new(MockContractStore)
	svc := NewContractService(store)

	id := uuid.New()
	store.On("GetContract", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetContract(ctx, id, model.Principal{ProfileID: uuid.New()})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListContracts(t *testing.T) {
	ctx := context.Background()
	store := new(MockContractStore)
	svc := NewContractService(store)

	profileID := uuid.New()
	store.On("ListActiveForProfile", ctx, profileID).Return([]model.Contract{
		{ID: uuid.New(), ClientID: profileID, Status: model.ContractStatusNew},
	}, nil)

	contracts, err := svc.ListContracts(ctx, model.Principal{ProfileID: profileID})

	assert.NoError(t, err)
	assert.Len(t, contracts, 1)
}
