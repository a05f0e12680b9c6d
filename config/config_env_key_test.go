package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mercadopago": map[string]any{
			"accessToken": "",
		},
		"resend": map[string]any{
			"apiKey":   "",
			"notifyTo": "",
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
		{envKey: "MERCADOPAGO_ACCESSTOKEN", want: "mercadopago.accessToken"},
		{envKey: "RESEND_APIKEY", want: "resend.apiKey"},
		{envKey: "RESEND_NOTIFYTO", want: "resend.notifyTo"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.App.BaseURL != defaultBaseURL {
		t.Fatalf("App.BaseURL = %q, want %q", cfg.App.BaseURL, defaultBaseURL)
	}
	if cfg.Course.Title != "Full Planche Workshop" {
		t.Fatalf("Course.Title = %q", cfg.Course.Title)
	}
	if cfg.Course.PriceCents != 29900 {
		t.Fatalf("Course.PriceCents = %d", cfg.Course.PriceCents)
	}

	cfg = &Config{MercadoPago: &MercadoPagoConfig{AccessToken: "APP_USR-x"}}
	applyDefaults(cfg)
	if cfg.MercadoPago.APIBaseURL != defaultMercadoPago {
		t.Fatalf("MercadoPago.APIBaseURL = %q", cfg.MercadoPago.APIBaseURL)
	}
}
