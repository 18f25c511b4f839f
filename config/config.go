package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ModelPath       string
	OnnxLibPath     string
	ModelInputName  string
	ModelOutputName string
	ImageSize       int
	Threshold       float32

	TelegramToken string

	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:       getEnv("MODEL_PATH", "models/deepfake_detection.onnx"),
		OnnxLibPath:     os.Getenv("ONNX_LIB_PATH"),
		ModelInputName:  getEnv("MODEL_INPUT_NAME", "input"),
		ModelOutputName: getEnv("MODEL_OUTPUT_NAME", "output"),
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
	}

	size, err := strconv.Atoi(getEnv("IMAGE_SIZE", "128"))
	if err != nil {
		return nil, fmt.Errorf("IMAGE_SIZE: %w", err)
	}
	cfg.ImageSize = size

	threshold, err := strconv.ParseFloat(getEnv("THRESHOLD", "0.5"), 32)
	if err != nil {
		return nil, fmt.Errorf("THRESHOLD: %w", err)
	}
	cfg.Threshold = float32(threshold)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет числовые параметры, в том числе после переопределения флагами.
func (c *Config) Validate() error {
	if c.ImageSize <= 0 {
		return fmt.Errorf("IMAGE_SIZE must be positive, got %d", c.ImageSize)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("THRESHOLD must be within [0,1], got %v", c.Threshold)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
