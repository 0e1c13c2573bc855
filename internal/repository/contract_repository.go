package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error; err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) ListActiveForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE (client_id = ? OR contractor_id = ?)
			AND status <> 'terminated'
		ORDER BY created_at ASC
	`, profileID, profileID).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}
