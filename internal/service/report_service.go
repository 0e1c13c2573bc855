package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/gigpay/internal/config"
	"github.com/nurpe/gigpay/internal/model"
)

type ReportStore interface {
	BestProfession(ctx context.Context, from, to time.Time) (*model.ProfessionEarnings, error)
	BestClients(ctx context.Context, from, to time.Time, limit int) ([]model.ClientSpend, error)
	ListStatementLines(ctx context.Context, profileID uuid.UUID, from, to time.Time) ([]model.StatementLine, error)
}

type StatementGenerator interface {
	Generate(statement model.Statement) ([]byte, error)
}

type StatementFormat string

const (
	StatementFormatExcel StatementFormat = "excel"
	StatementFormatPDF   StatementFormat = "pdf"
)

type StatementResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ReportService struct {
	reports  ReportStore
	profiles ProfileStore
	excel    StatementGenerator
	pdf      StatementGenerator
	billing  config.BillingConfig
}

func NewReportService(reports ReportStore, profiles ProfileStore, excel, pdf StatementGenerator, cfg *config.Config) *ReportService {
	return &ReportService{
		reports:  reports,
		profiles: profiles,
		excel:    excel,
		pdf:      pdf,
		billing:  cfg.Billing,
	}
}

func (s *ReportService) BestProfession(ctx context.Context, from, to time.Time) (*model.ProfessionEarnings, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	row, err := s.reports.BestProfession(ctx, from, to)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *ReportService) BestClients(ctx context.Context, from, to time.Time, limit int) ([]model.ClientSpend, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.billing.BestClientsDefaultLimit
	}
	rows, err := s.reports.BestClients(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// Statement renders the caller's jobs in the period, either role, as a
// downloadable Excel or PDF document.
func (s *ReportService) Statement(ctx context.Context, principal model.Principal, from, to time.Time, format StatementFormat) (*StatementResult, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, principal.ProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lines, err := s.reports.ListStatementLines(ctx, principal.ProfileID, from, to)
	if err != nil {
		return nil, err
	}

	totalPaid := decimal.Zero
	totalOutstanding := decimal.Zero
	for _, line := range lines {
		if line.Paid {
			totalPaid = totalPaid.Add(line.Price)
		} else {
			totalOutstanding = totalOutstanding.Add(line.Price)
		}
	}

	statement := model.Statement{
		Profile:          *profile,
		PeriodStart:      from,
		PeriodEnd:        to,
		Lines:            lines,
		TotalPaid:        totalPaid,
		TotalOutstanding: totalOutstanding,
	}

	var generator StatementGenerator
	var extension, contentType string
	switch format {
	case StatementFormatExcel:
		generator = s.excel
		extension = "xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case StatementFormatPDF:
		generator = s.pdf
		extension = "pdf"
		contentType = "application/pdf"
	default:
		return nil, fmt.Errorf("%w: invalid statement format", ErrInvalidInput)
	}

	content, err := generator.Generate(statement)
	if err != nil {
		return nil, err
	}

	return &StatementResult{
		FileName:    buildStatementFileName(statement, extension),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func buildStatementFileName(statement model.Statement, extension string) string {
	owner := sanitizeFileName(statement.Profile.FullName())
	if owner == "" {
		owner = statement.Profile.ID.String()
	}
	period := fmt.Sprintf("%s-%s",
		statement.PeriodStart.Format("20060102"),
		statement.PeriodEnd.Format("20060102"))
	return fmt.Sprintf("statement-%s-%s.%s", owner, period, extension)
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	if from.After(to) {
		return fmt.Errorf("%w: start must be before or equal to end", ErrInvalidInput)
	}
	return nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
