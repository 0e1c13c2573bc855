package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
)

// ErrJobAlreadyPaid is returned by Transfer when the in-transaction re-check
// finds the job no longer unpaid (a concurrent payment won the race).
var ErrJobAlreadyPaid = errors.New("job already paid")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// FindUnpaidForClient returns the job only if it is unpaid and its contract
// names the given profile as client. Missing, paid, or not-the-client all look
// the same to the caller: gorm.ErrRecordNotFound.
func (r *JobRepository) FindUnpaidForClient(ctx context.Context, jobID, clientID uuid.UUID) (*model.UnpaidJob, error) {
	var job model.UnpaidJob
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.client_id,
			c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = ?
			AND j.paid = FALSE
			AND c.client_id = ?
		LIMIT 1
	`, jobID, clientID).Scan(&job).Error; err != nil {
		return nil, err
	}
	if job.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (r *JobRepository) ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error) {
	var jobs []model.UnpaidJob
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.client_id,
			c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = FALSE
			AND (c.client_id = ? OR c.contractor_id = ?)
		ORDER BY j.created_at ASC
	`, profileID, profileID).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// OutstandingTotal sums unpaid job prices over the profile's contracts.
// includeContractorJobs mirrors the deposit rule's both-roles exposure query.
func (r *JobRepository) OutstandingTotal(ctx context.Context, profileID uuid.UUID, includeContractorJobs bool) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = FALSE
			AND c.client_id = ?
	`
	args := []interface{}{profileID}
	if includeContractorJobs {
		query = `
			SELECT COALESCE(SUM(j.price), 0)
			FROM jobs j
			JOIN contracts c ON c.id = j.contract_id
			WHERE j.paid = FALSE
				AND (c.client_id = ? OR c.contractor_id = ?)
		`
		args = append(args, profileID)
	}

	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return decimal.Decimal{}, err
	}
	return total, nil
}

type TransferParams struct {
	JobID        uuid.UUID
	ClientID     uuid.UUID
	ContractorID uuid.UUID
	Amount       decimal.Decimal
}

// Transfer moves the job price from client to contractor and marks the job
// paid, all inside one transaction. The paid flag flips via a conditional
// update; zero rows affected means another transfer already claimed the job
// and the whole transaction rolls back.
func (r *JobRepository) Transfer(ctx context.Context, params TransferParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`
			UPDATE jobs
			SET paid = TRUE, payment_date = NOW()
			WHERE id = ? AND paid = FALSE
		`, params.JobID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobAlreadyPaid
		}

		if err := tx.Exec(`
			UPDATE profiles
			SET balance = balance - ?
			WHERE id = ?
		`, params.Amount, params.ClientID).Error; err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE profiles
			SET balance = balance + ?
			WHERE id = ?
		`, params.Amount, params.ContractorID).Error
	})
}
