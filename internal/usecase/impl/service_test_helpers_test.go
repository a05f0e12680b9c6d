package impl

import (
	"io"
	"log/slog"

	"rossimethod/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		App: &config.AppConfig{BaseURL: "https://rossimethod.example"},
		Course: &config.CourseConfig{
			ID:          "full-planche-workshop",
			Title:       "Full Planche Workshop",
			Description: "Programa completo de planche",
			PriceCents:  29900,
			Currency:    "ARS",
		},
		Resend: &config.ResendConfig{
			From:     "Método Rossi <hola@rossimethod.com>",
			NotifyTo: "ventas@rossimethod.com",
		},
	}
}
