package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	telegram "deepfake-detect/internal/api"
	"deepfake-detect/internal/container"
	"deepfake-detect/internal/infrastructure/model"
	"deepfake-detect/internal/infrastructure/storage"
	"deepfake-detect/internal/infrastructure/vision"
)

func newBotCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot that checks incoming images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBot(cmd.Context())
		},
	}
}

func (c *cli) runBot(ctx context.Context) error {
	if c.cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}

	loader := model.NewLoader(c.modelOptions(), c.log)
	if err := loader.Locate(); err != nil {
		c.log.WithError(err).Error("model file not found")
		return err
	}

	classifier, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	defer classifier.Close()
	c.log.WithField("model", c.cfg.ModelPath).Info("model loaded")

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, classifier, vision.NewPreprocessor(c.cfg.ImageSize), c.cfg.Threshold, c.log)

	bot, err := telegram.NewBot(c.cfg.TelegramToken, appContainer, c.log)
	if err != nil {
		return err
	}

	c.log.Info("bot is running")
	return bot.Run(ctx)
}
