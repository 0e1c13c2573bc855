package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
	"github.com/nurpe/gigpay/internal/repository"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	IncrementBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type JobStore interface {
	FindUnpaidForClient(ctx context.Context, jobID, clientID uuid.UUID) (*model.UnpaidJob, error)
	ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error)
	OutstandingTotal(ctx context.Context, profileID uuid.UUID, includeContractorJobs bool) (decimal.Decimal, error)
	Transfer(ctx context.Context, params repository.TransferParams) error
}

type PaymentService struct {
	profiles ProfileStore
	jobs     JobStore
}

func NewPaymentService(profiles ProfileStore, jobs JobStore) *PaymentService {
	return &PaymentService{profiles: profiles, jobs: jobs}
}

// PayJob moves the job price from the calling client to the contractor and
// marks the job paid. The debit, the credit, and the paid flip commit or roll
// back together; the sum of the two balances is unchanged by a success.
func (s *PaymentService) PayJob(ctx context.Context, jobID uuid.UUID, principal model.Principal) error {
	if jobID == uuid.Nil {
		return fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}

	job, err := s.jobs.FindUnpaidForClient(ctx, jobID, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	payer, err := s.profiles.GetProfile(ctx, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if job.Price.GreaterThan(payer.Balance) {
		return fmt.Errorf("%w: job %s costs %s but balance is %s",
			ErrInsufficientFunds, job.ID, job.Price, payer.Balance)
	}

	err = s.jobs.Transfer(ctx, repository.TransferParams{
		JobID:        job.ID,
		ClientID:     job.ClientID,
		ContractorID: job.ContractorID,
		Amount:       job.Price,
	})
	if err != nil {
		// Lost the race to a concurrent payment: the job is no longer
		// eligible, same outcome as never finding it.
		if errors.Is(err, repository.ErrJobAlreadyPaid) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	return nil
}

func (s *PaymentService) ListUnpaidJobs(ctx context.Context, principal model.Principal) ([]model.UnpaidJob, error) {
	return s.jobs.ListUnpaidForProfile(ctx, principal.ProfileID)
}
