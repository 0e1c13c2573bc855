package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type BillingConfig struct {
	// DepositCapRatio bounds deposits: a deposit is accepted only while
	// outstanding >= (balance + amount) * ratio.
	DepositCapRatio decimal.Decimal
	// DepositAllowThirdParty lets a caller deposit into another profile's
	// balance. The original product allowed it; keep it switchable.
	DepositAllowThirdParty bool
	// DepositIncludeContractorJobs counts contractor-side unpaid jobs in the
	// outstanding exposure. The original product counted both roles.
	DepositIncludeContractorJobs bool
	BestClientsDefaultLimit      int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Billing     BillingConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("DEPOSIT_ALLOW_THIRD_PARTY", true)
	v.SetDefault("DEPOSIT_INCLUDE_CONTRACTOR_JOBS", true)

	_ = v.ReadInConfig()

	capRatio, err := parseRatio(v.GetString("DEPOSIT_CAP_RATIO"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Billing: BillingConfig{
			DepositCapRatio:              capRatio,
			DepositAllowThirdParty:       v.GetBool("DEPOSIT_ALLOW_THIRD_PARTY"),
			DepositIncludeContractorJobs: v.GetBool("DEPOSIT_INCLUDE_CONTRACTOR_JOBS"),
			BestClientsDefaultLimit:      v.GetInt("BEST_CLIENTS_DEFAULT_LIMIT"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Billing.BestClientsDefaultLimit <= 0 {
		cfg.Billing.BestClientsDefaultLimit = 2
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.Billing.DepositCapRatio.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("DEPOSIT_CAP_RATIO must be positive")
	}
	return nil
}

func parseRatio(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.NewFromFloat(1.25), nil
	}
	ratio, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid DEPOSIT_CAP_RATIO: %w", err)
	}
	return ratio, nil
}
