package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("HH_CLIENT_ID", "hh-id")
	t.Setenv("HH_CLIENT_SECRET", "hh-secret")
	t.Setenv("HH_CLIENT_TOKEN", "hh-token")
	t.Setenv("SJ_CLIENT_ID", "sj-id")
	t.Setenv("SJ_CLIENT_SECRET", "sj-secret")
	t.Setenv("SJ_EMAIL", "user@example.com")
	t.Setenv("SJ_PASSWORD", "hunter2")

	creds, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hh-id", creds.HHClientID)
	assert.Equal(t, "hh-secret", creds.HHClientSecret)
	assert.Equal(t, "hh-token", creds.HHClientToken)
	assert.Equal(t, "sj-id", creds.SJClientID)
	assert.Equal(t, "sj-secret", creds.SJClientSecret)
	assert.Equal(t, "user@example.com", creds.SJEmail)
	assert.Equal(t, "hunter2", creds.SJPassword)
}

func TestValidateSuperJob(t *testing.T) {
	tests := []struct {
		name        string
		creds       Credentials
		expectError bool
	}{
		{
			name:        "secret present",
			creds:       Credentials{SJClientSecret: "key"},
			expectError: false,
		},
		{
			name:        "secret missing",
			creds:       Credentials{SJEmail: "user@example.com"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.ValidateSuperJob()
			if tt.expectError {
				assert.ErrorIs(t, err, ErrMissingSuperJobSecret)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasSuperJobOAuth(t *testing.T) {
	full := Credentials{
		SJClientID:     "id",
		SJClientSecret: "secret",
		SJEmail:        "user@example.com",
		SJPassword:     "hunter2",
	}
	assert.True(t, full.HasSuperJobOAuth())

	partial := full
	partial.SJPassword = ""
	assert.False(t, partial.HasSuperJobOAuth())

	assert.False(t, (&Credentials{}).HasSuperJobOAuth())
}
