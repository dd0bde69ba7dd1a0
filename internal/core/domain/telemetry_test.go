package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sde/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(42), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.ID(4), cfg.RootGroupID)
	assert.Equal(t, domain.DefaultLocale, cfg.Locale)
	assert.Equal(t, domain.DefaultCachePath(), cfg.CacheDir)
	assert.Equal(t, "marketGroupID", cfg.Fields.GroupID)
	assert.Equal(t, "parentGroupID", cfg.Fields.ParentID)
}
