package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "tracer",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"sessionTTL": "1h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAuthDefaults(t *testing.T) {
	auth := &AuthConfig{}
	applyAuthDefaults(auth)

	if auth.SessionTTL.Hours() != 1 {
		t.Fatalf("expected default session TTL of 1h, got %s", auth.SessionTTL)
	}
	if auth.AccessTokenTTL.Minutes() != 15 {
		t.Fatalf("expected default access token TTL of 15m, got %s", auth.AccessTokenTTL)
	}
	if auth.PasswordMinLength != 8 {
		t.Fatalf("expected default password min length of 8, got %d", auth.PasswordMinLength)
	}
	if auth.SessionSweepInterval.Minutes() != 15 {
		t.Fatalf("expected default session sweep interval of 15m, got %s", auth.SessionSweepInterval)
	}
}
