package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/model"
	"github.com/nurpe/gigpay/internal/repository"
)

func clientPrincipal(id uuid.UUID) model.Principal {
	return model.Principal{ProfileID: id, Type: model.ProfileTypeClient}
}

func unpaidJob(jobID, clientID, contractorID uuid.UUID, price int64) *model.UnpaidJob {
	return &model.UnpaidJob{
		Job: model.Job{
			ID:         jobID,
			ContractID: uuid.New(),
			Price:      decimal.NewFromInt(price),
		},
		ClientID:     clientID,
		ContractorID: contractorID,
	}
}

func TestPayJob_Success(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	contractorID := uuid.New()
	jobID := uuid.New()
	job := unpaidJob(jobID, clientID, contractorID, 100)

	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(job, nil)
	profiles.On("GetProfile", ctx, clientID).Return(&model.Profile{
		ID:      clientID,
		Type:    model.ProfileTypeClient,
		Balance: decimal.NewFromInt(150),
	}, nil)
	jobs.On("Transfer", ctx, mock.MatchedBy(func(params repository.TransferParams) bool {
		// One debit and one credit of the same amount: money is conserved.
		return params.JobID == jobID &&
			params.ClientID == clientID &&
			params.ContractorID == contractorID &&
			params.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil)

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.NoError(t, err)
	jobs.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestPayJob_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	jobID := uuid.New()
	job := unpaidJob(jobID, clientID, uuid.New(), 200)

	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(job, nil)
	profiles.On("GetProfile", ctx, clientID).Return(&model.Profile{
		ID:      clientID,
		Balance: decimal.NewFromInt(150),
	}, nil)

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "200")
	assert.Contains(t, err.Error(), "150")
	jobs.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
}

func TestPayJob_ExactBalanceSucceeds(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	jobID := uuid.New()
	job := unpaidJob(jobID, clientID, uuid.New(), 150)

	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(job, nil)
	profiles.On("GetProfile", ctx, clientID).Return(&model.Profile{
		ID:      clientID,
		Balance: decimal.NewFromInt(150),
	}, nil)
	jobs.On("Transfer", ctx, mock.Anything).Return(nil)

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.NoError(t, err)
}

func TestPayJob_NotEligible(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	jobID := uuid.New()

	// Missing job, already-paid job, and caller-not-client all surface from
	// the store as record-not-found.
	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(nil, gorm.ErrRecordNotFound)

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.ErrorIs(t, err, ErrNotFound)
	profiles.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
	jobs.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
}

func TestPayJob_DoublePayRace(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	jobID := uuid.New()
	job := unpaidJob(jobID, clientID, uuid.New(), 100)

	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(job, nil)
	profiles.On("GetProfile", ctx, clientID).Return(&model.Profile{
		ID:      clientID,
		Balance: decimal.NewFromInt(500),
	}, nil)
	jobs.On("Transfer", ctx, mock.Anything).Return(repository.ErrJobAlreadyPaid)

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPayJob_TransferFailureRollsUp(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	clientID := uuid.New()
	jobID := uuid.New()
	job := unpaidJob(jobID, clientID, uuid.New(), 100)

	jobs.On("FindUnpaidForClient", ctx, jobID, clientID).Return(job, nil)
	profiles.On("GetProfile", ctx, clientID).Return(&model.Profile{
		ID:      clientID,
		Balance: decimal.NewFromInt(500),
	}, nil)
	jobs.On("Transfer", ctx, mock.Anything).Return(errors.New("commit failed"))

	err := svc.PayJob(ctx, jobID, clientPrincipal(clientID))

	assert.ErrorIs(t, err, ErrTransferFailed)
}

func TestPayJob_NilJobID(t *testing.T) {
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	err := svc.PayJob(context.Background(), uuid.Nil, clientPrincipal(uuid.New()))

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListUnpaidJobs(t *testing.T) {
	ctx := context.Background()
	profiles := new(MockProfileStore)
	jobs := new(MockJobStore)
	svc := NewPaymentService(profiles, jobs)

	profileID := uuid.New()
	expected := []model.UnpaidJob{
		*unpaidJob(uuid.New(), profileID, uuid.New(), 50),
		*unpaidJob(uuid.New(), uuid.New(), profileID, 75),
	}
	jobs.On("ListUnpaidForProfile", ctx, profileID).Return(expected, nil)

	got, err := svc.ListUnpaidJobs(ctx, clientPrincipal(profileID))

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
