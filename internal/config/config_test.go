package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
loan:
  id: LN123456789
  lenderName: Digital Bank Corp.
  principal: 3000000
  interestRate: 0
  termMonths: 60
  startDate: "2024-01-01"
logging:
  level: debug
  format: console
output:
  format: csv
server:
  address: ":9090"
cache:
  enabled: true
  address: "localhost:6379"
  ttl: 1m
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if conf.Loan.ID != "LN123456789" {
		t.Errorf("loan ID = %q, expected LN123456789", conf.Loan.ID)
	}
	if conf.Loan.Principal != 3000000 || conf.Loan.TermMonths != 60 {
		t.Errorf("loan = %+v, expected principal 3000000 and term 60", conf.Loan)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
	if conf.Server.Address != ":9090" {
		t.Errorf("server address = %q, expected :9090", conf.Server.Address)
	}
	if !conf.Cache.Enabled || conf.Cache.Address != "localhost:6379" {
		t.Errorf("cache = %+v, expected enabled at localhost:6379", conf.Cache)
	}
	if conf.Cache.TTL != time.Minute {
		t.Errorf("cache TTL = %v, expected 1m", conf.Cache.TTL)
	}

	if err := conf.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	path := writeConfig(t, `
loan:
  principal: 1200
  interestRate: 12
  termMonths: 12
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if conf.Server.Address != ":8080" {
		t.Errorf("server address = %q, expected default :8080", conf.Server.Address)
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("output format = %q, expected default pretty", conf.Output.Format)
	}
	if conf.Cache.TTL != 5*time.Minute {
		t.Errorf("cache TTL = %v, expected default 5m", conf.Cache.TTL)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Configuration)
	}{
		{
			name:   "Bad output format",
			mutate: func(c *Configuration) { c.Output.Format = "xml" },
		},
		{
			name:   "Cache enabled without address",
			mutate: func(c *Configuration) { c.Cache.Enabled = true; c.Cache.Address = "" },
		},
		{
			name:   "Negative principal",
			mutate: func(c *Configuration) { c.Loan.Principal = -100; c.Loan.TermMonths = 12 },
		},
		{
			name:   "Zero term with principal set",
			mutate: func(c *Configuration) { c.Loan.Principal = 1000; c.Loan.TermMonths = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Configuration{}
			conf.applyDefaults()
			tt.mutate(conf)
			if err := conf.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

func TestLoanParams(t *testing.T) {
	conf := &Configuration{
		Loan: LoanConfig{
			ID:           "LN1",
			Principal:    1200,
			InterestRate: 12,
			TermMonths:   12,
			StartDate:    "2024-01-01",
		},
	}

	params, err := conf.LoanParams(time.Now())
	if err != nil {
		t.Fatalf("LoanParams() unexpected error: %v", err)
	}
	if params.StartDate.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("start date = %v, expected 2024-01-01", params.StartDate)
	}
}

func TestLoanParamsDefaultStartDate(t *testing.T) {
	conf := &Configuration{Loan: LoanConfig{Principal: 1000, TermMonths: 10}}

	now := time.Date(2024, time.June, 17, 15, 30, 0, 0, time.UTC)
	params, err := conf.LoanParams(now)
	if err != nil {
		t.Fatalf("LoanParams() unexpected error: %v", err)
	}
	if params.StartDate.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("start date = %v, expected first of current month", params.StartDate)
	}
}

func TestLoanParamsBadStartDate(t *testing.T) {
	conf := &Configuration{Loan: LoanConfig{Principal: 1000, TermMonths: 10, StartDate: "01/02/2024"}}

	if _, err := conf.LoanParams(time.Now()); err == nil {
		t.Error("LoanParams() expected error for malformed start date")
	}
}
