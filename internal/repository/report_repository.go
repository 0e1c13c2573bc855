package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// BestProfession ranks contractor professions by the sum of job prices paid
// within the range and returns the top one.
func (r *ReportRepository) BestProfession(ctx context.Context, from, to time.Time) (*model.ProfessionEarnings, error) {
	var row model.ProfessionEarnings
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.profession,
			SUM(j.price) AS earned
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY p.profession
		ORDER BY earned DESC
		LIMIT 1
	`, from, to).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.Profession == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ReportRepository) BestClients(ctx context.Context, from, to time.Time, limit int) ([]model.ClientSpend, error) {
	var rows []model.ClientSpend
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.client_id AS id,
			p.first_name || ' ' || p.last_name AS full_name,
			SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid = TRUE
			AND j.payment_date >= ?
			AND j.payment_date <= ?
		GROUP BY c.client_id, full_name
		ORDER BY paid DESC
		LIMIT ?
	`, from, to, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListStatementLines returns the profile's jobs in the period, joined with the
// counterparty's name and the profile's role on each contract.
func (r *ReportRepository) ListStatementLines(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]model.StatementLine, error) {
	var rows []model.StatementLine
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id AS job_id,
			j.contract_id,
			j.description,
			CASE
				WHEN c.client_id = ? THEN contractor.first_name || ' ' || contractor.last_name
				ELSE client.first_name || ' ' || client.last_name
			END AS counterparty_name,
			CASE WHEN c.client_id = ? THEN 'client' ELSE 'contractor' END AS role,
			j.price,
			j.paid,
			j.payment_date
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles client ON client.id = c.client_id
		JOIN profiles contractor ON contractor.id = c.contractor_id
		WHERE (c.client_id = ? OR c.contractor_id = ?)
			AND j.created_at >= ?
			AND j.created_at <= ?
		ORDER BY j.created_at ASC
	`, profileID, profileID, profileID, profileID, from, to).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
