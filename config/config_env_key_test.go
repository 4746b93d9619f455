package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"refreshTokenTTL": "168h",
		},
		"sse": map[string]any{
			"heartbeat": "25s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_REFRESHTOKENTTL", want: "auth.refreshTokenTTL"},
		{envKey: "SSE_HEARTBEAT", want: "sse.heartbeat"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "BUS__MAILBOXSIZE", want: "bus.mailboxsize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Bus)
	require.NotNil(t, cfg.SSE)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultBusMailboxSize, cfg.Bus.MailboxSize)
	assert.Equal(t, defaultSSEHeartbeat, cfg.SSE.Heartbeat)
	assert.Equal(t, defaultWorkerPort, cfg.HTTP.WorkerPort)
	assert.Equal(t, defaultReadHeaderTimeout, cfg.HTTP.Timeouts.ReadHeaderTimeout)
	assert.Zero(t, cfg.HTTP.Timeouts.WriteTimeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{AccessTokenTTL: time.Hour},
		Bus:  &BusConfig{MailboxSize: 8},
	}
	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 8, cfg.Bus.MailboxSize)
}

func TestBuildReplicasFromEnv_StopsAtFirstGap(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-c")
	t.Setenv("POSTGRES_REPLICAS_2_PORT", "5432")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
