package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("VAP_API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when VAP_API_BASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VAP_API_BASE_URL", "http://localhost:8080")
	t.Setenv("VAP_API_TOKEN", "")
	t.Setenv("VAP_REQUEST_TIMEOUT", "")
	t.Setenv("VAP_DEFAULT_RANGE_DAYS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.DefaultRangeDays != defaultRangeDays {
		t.Errorf("DefaultRangeDays = %d, want %d", cfg.DefaultRangeDays, defaultRangeDays)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VAP_API_BASE_URL", "https://api.example.com")
	t.Setenv("VAP_API_TOKEN", "secret")
	t.Setenv("VAP_REQUEST_TIMEOUT", "5s")
	t.Setenv("VAP_DEFAULT_RANGE_DAYS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIToken != "secret" {
		t.Errorf("APIToken = %s", cfg.APIToken)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.DefaultRangeDays != 30 {
		t.Errorf("DefaultRangeDays = %d", cfg.DefaultRangeDays)
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"WithUnit", "45s", 45 * time.Second},
		{"BareSeconds", "10", 10 * time.Second},
		{"Invalid", "nonsense", defaultRequestTimeout},
		{"Empty", "", defaultRequestTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VAP_TEST_DURATION", tt.value)
			got := getEnvDuration("VAP_TEST_DURATION", defaultRequestTimeout)
			if got != tt.want {
				t.Errorf("getEnvDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("VAP_TEST_INT", "90")
	if got := getEnvInt("VAP_TEST_INT", 7); got != 90 {
		t.Errorf("getEnvInt = %d, want 90", got)
	}
	t.Setenv("VAP_TEST_INT", "not-a-number")
	if got := getEnvInt("VAP_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt fallback = %d, want 7", got)
	}
}
