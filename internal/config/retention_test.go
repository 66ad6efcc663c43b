package config

import (
	"strings"
	"testing"
)

func TestDefaultRetentionConfig(t *testing.T) {
	cfg := DefaultRetentionConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default retention config should be valid: %v", err)
	}
	if cfg.RetentionDays != 90 {
		t.Errorf("expected 90 day default retention, got %d", cfg.RetentionDays)
	}
	if cfg.CleanupBatchSize != 500 {
		t.Errorf("expected batch size 500, got %d", cfg.CleanupBatchSize)
	}
}

func TestRetentionConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     RetentionConfig
		wantErr string
	}{
		{"zero retention", RetentionConfig{RetentionDays: 0, CleanupBatchSize: 500}, "retention_days"},
		{"retention too long", RetentionConfig{RetentionDays: 1000, CleanupBatchSize: 500}, "retention_days"},
		{"batch too small", RetentionConfig{RetentionDays: 90, CleanupBatchSize: 10}, "cleanup_batch_size"},
		{"batch too large", RetentionConfig{RetentionDays: 90, CleanupBatchSize: 50000}, "cleanup_batch_size"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestRetentionConfigFromEnv(t *testing.T) {
	t.Setenv("DEVHEALTH_EVENT_RETENTION_DAYS", "30")
	t.Setenv("DEVHEALTH_CLEANUP_BATCH_SIZE", "1000")

	cfg, err := RetentionConfigFromEnv()
	if err != nil {
		t.Fatalf("RetentionConfigFromEnv failed: %v", err)
	}
	if cfg.RetentionDays != 30 {
		t.Errorf("expected 30 days, got %d", cfg.RetentionDays)
	}
	if cfg.CleanupBatchSize != 1000 {
		t.Errorf("expected batch size 1000, got %d", cfg.CleanupBatchSize)
	}
}

func TestRetentionConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("DEVHEALTH_EVENT_RETENTION_DAYS", "not-a-number")
	if _, err := RetentionConfigFromEnv(); err == nil {
		t.Error("expected an error for a non-numeric value")
	}

	t.Setenv("DEVHEALTH_EVENT_RETENTION_DAYS", "0")
	if _, err := RetentionConfigFromEnv(); err == nil {
		t.Error("expected an error for out-of-range retention")
	}
}
