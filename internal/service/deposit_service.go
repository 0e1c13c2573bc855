package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/config"
	"github.com/nurpe/gigpay/internal/model"
)

type DepositService struct {
	profiles ProfileStore
	jobs     JobStore
	billing  config.BillingConfig
}

func NewDepositService(profiles ProfileStore, jobs JobStore, cfg *config.Config) *DepositService {
	return &DepositService{profiles: profiles, jobs: jobs, billing: cfg.Billing}
}

// Deposit credits the target balance after the cap check: the post-deposit
// balance may not exceed the target's outstanding unpaid-job exposure divided
// by the configured ratio. The exposure read and the credit are deliberately
// not one transaction; the cap is a best-effort bound.
func (s *DepositService) Deposit(ctx context.Context, targetID uuid.UUID, amount decimal.Decimal, principal model.Principal) error {
	if targetID == uuid.Nil {
		return fmt.Errorf("%w: target profile id is required", ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidInput)
	}
	if !s.billing.DepositAllowThirdParty && targetID != principal.ProfileID {
		return fmt.Errorf("%w: third-party deposits are disabled", ErrPermissionDenied)
	}

	target, err := s.profiles.GetProfile(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	outstanding, err := s.jobs.OutstandingTotal(ctx, targetID, s.billing.DepositIncludeContractorJobs)
	if err != nil {
		return err
	}

	projected := amount.Add(target.Balance)
	if outstanding.LessThan(projected.Mul(s.billing.DepositCapRatio)) {
		return fmt.Errorf("%w: outstanding jobs total %s does not cover %s of projected balance %s",
			ErrDepositCapExceeded, outstanding, s.billing.DepositCapRatio, projected)
	}

	return s.profiles.IncrementBalance(ctx, targetID, amount)
}
