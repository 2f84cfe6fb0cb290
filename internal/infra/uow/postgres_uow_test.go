//go:build unit

package uow_test

import (
	"testing"
	"time"

	"host-pricing/internal/infra/uow"
	"host-pricing/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRetryPolicy(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.TxConfig
		expected uow.RetryPolicy
	}{
		{
			name:     "configured",
			cfg:      config.TxConfig{MaxRetries: 5, RetryBaseDelay: 20 * time.Millisecond},
			expected: uow.RetryPolicy{MaxRetries: 5, BaseDelay: 20 * time.Millisecond},
		},
		{
			name:     "retries disabled",
			cfg:      config.TxConfig{MaxRetries: 0, RetryBaseDelay: 20 * time.Millisecond},
			expected: uow.RetryPolicy{MaxRetries: 0, BaseDelay: 20 * time.Millisecond},
		},
		{
			name:     "missing delay falls back",
			cfg:      config.TxConfig{MaxRetries: 2},
			expected: uow.RetryPolicy{MaxRetries: 2, BaseDelay: uow.DefaultRetryPolicy.BaseDelay},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, uow.NewRetryPolicy(tc.cfg))
		})
	}
}
