package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":                    "",
			"serverSelectionTimeout": "5s",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
			"loginRateLimit": map[string]any{
				"maxAttempts": 10,
			},
		},
		"companion": map[string]any{
			"chat": map[string]any{
				"apiKey": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_SERVERSELECTIONTIMEOUT", want: "mongo.serverSelectionTimeout"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_LOGINRATELIMIT_MAXATTEMPTS", want: "auth.loginRateLimit.maxAttempts"},
		{envKey: "COMPANION_CHAT_APIKEY", want: "companion.chat.apiKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
