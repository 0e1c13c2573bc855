package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/nurpe/gigpay/internal/model"
	"github.com/nurpe/gigpay/internal/repository"
)

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileStore) IncrementBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) FindUnpaidForClient(ctx context.Context, jobID, clientID uuid.UUID) (*model.UnpaidJob, error) {
	args := m.Called(ctx, jobID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UnpaidJob), args.Error(1)
}

func (m *MockJobStore) ListUnpaidForProfile(ctx context.Context, profileID uuid.UUID) ([]model.UnpaidJob, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UnpaidJob), args.Error(1)
}

func (m *MockJobStore) OutstandingTotal(ctx context.Context, profileID uuid.UUID, includeContractorJobs bool) (decimal.Decimal, error) {
	args := m.Called(ctx, profileID, includeContractorJobs)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockJobStore) Transfer(ctx context.Context, params repository.TransferParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

type MockContractStore struct {
	mock.Mock
}

func (m *MockContractStore) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractStore) ListActiveForProfile(ctx context.Context, profileID uuid.UUID) ([]model.Contract, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contract), args.Error(1)
}

type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) BestProfession(ctx context.Context, from, to time.Time) (*model.ProfessionEarnings, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfessionEarnings), args.Error(1)
}

func (m *MockReportStore) BestClients(ctx context.Context, from, to time.Time, limit int) ([]model.ClientSpend, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClientSpend), args.Error(1)
}

func (m *MockReportStore) ListStatementLines(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]model.StatementLine, error) {
	args := m.Called(ctx, profileID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StatementLine), args.Error(1)
}

type MockStatementGenerator struct {
	mock.Mock
}

func (m *MockStatementGenerator) Generate(statement model.Statement) ([]byte, error) {
	args := m.Called(statement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
