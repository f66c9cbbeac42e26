package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonforge/lift/internal/common"
)

func oauthConfig() Config {
	c := DefaultConfig()
	c.ClientID = "client-id"
	c.ClientSecret = "client-secret"
	c.RefreshToken = "refresh-token"
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.True(t, c.EnableFormatting)
	assert.Equal(t, 1000, c.BatchSize)
	assert.Equal(t, 3, c.RetryAttempts)
	assert.Equal(t, time.Second, c.RetryDelay)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "oauth credentials",
			mutate: func(c *Config) {},
		},
		{
			name: "service account",
			mutate: func(c *Config) {
				c.ClientID = ""
				c.ClientSecret = ""
				c.RefreshToken = ""
				c.ServiceAccountPath = "/path/to/sa.json"
			},
		},
		{
			name: "no authentication",
			mutate: func(c *Config) {
				c.ClientID = ""
				c.ClientSecret = ""
				c.RefreshToken = ""
			},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "partial oauth credentials",
			mutate: func(c *Config) {
				c.RefreshToken = ""
			},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "both authentication methods",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/path/to/sa.json"
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "zero batch size",
			mutate: func(c *Config) {
				c.BatchSize = 0
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retry attempts",
			mutate: func(c *Config) {
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retry delay",
			mutate: func(c *Config) {
				c.RetryDelay = -time.Second
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := oauthConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("LIFT_SHEETS_CLIENT_ID", "env-client")
	t.Setenv("LIFT_SHEETS_CLIENT_SECRET", "env-secret")
	t.Setenv("LIFT_SHEETS_REFRESH_TOKEN", "env-token")
	t.Setenv("LIFT_SHEETS_SPREADSHEET_ID", "sheet-123")
	t.Setenv("LIFT_SHEETS_SPREADSHEET_NAME", "")

	c := DefaultConfig()
	require.NoError(t, c.LoadFromEnv())

	assert.Equal(t, "env-client", c.ClientID)
	assert.Equal(t, "env-secret", c.ClientSecret)
	assert.Equal(t, "env-token", c.RefreshToken)
	assert.Equal(t, "sheet-123", c.SpreadsheetID)
	assert.Equal(t, "Association Rules", c.SpreadsheetName)
}

func TestConfig_LoadFromEnv_MissingAuth(t *testing.T) {
	t.Setenv("LIFT_SHEETS_CLIENT_ID", "")
	t.Setenv("LIFT_SHEETS_CLIENT_SECRET", "")
	t.Setenv("LIFT_SHEETS_REFRESH_TOKEN", "")
	t.Setenv("LIFT_SHEETS_SERVICE_ACCOUNT_PATH", "")

	c := DefaultConfig()
	err := c.LoadFromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}
