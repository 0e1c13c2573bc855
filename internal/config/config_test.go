package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/gigpay_test")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.True(t, cfg.Billing.DepositCapRatio.Equal(decimal.NewFromFloat(1.25)))
	assert.True(t, cfg.Billing.DepositAllowThirdParty)
	assert.True(t, cfg.Billing.DepositIncludeContractorJobs)
	assert.Equal(t, 2, cfg.Billing.BestClientsDefaultLimit)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_CustomRatio(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/gigpay_test")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("DEPOSIT_CAP_RATIO", "2")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.True(t, cfg.Billing.DepositCapRatio.Equal(decimal.NewFromInt(2)))
}

func TestLoad_InvalidRatio(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/gigpay_test")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("DEPOSIT_CAP_RATIO", "lots")

	_, err := Load()

	assert.Error(t, err)
}
