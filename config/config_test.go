package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MODEL_PATH", "IMAGE_SIZE", "THRESHOLD", "MODEL_INPUT_NAME", "MODEL_OUTPUT_NAME", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "models/deepfake_detection.onnx", cfg.ModelPath)
	require.Equal(t, 128, cfg.ImageSize)
	require.InDelta(t, 0.5, cfg.Threshold, 1e-6)
	require.Equal(t, "input", cfg.ModelInputName)
	require.Equal(t, "output", cfg.ModelOutputName)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MODEL_PATH", "/srv/models/v2.onnx")
	t.Setenv("IMAGE_SIZE", "224")
	t.Setenv("THRESHOLD", "0.65")
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/srv/models/v2.onnx", cfg.ModelPath)
	require.Equal(t, 224, cfg.ImageSize)
	require.InDelta(t, 0.65, cfg.Threshold, 1e-6)
	require.Equal(t, "token", cfg.TelegramToken)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"size not a number", "IMAGE_SIZE", "big"},
		{"size zero", "IMAGE_SIZE", "0"},
		{"threshold not a number", "THRESHOLD", "half"},
		{"threshold out of range", "THRESHOLD", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}
