package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"deepfake-detect/internal/container"
	"deepfake-detect/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я проверяю, не сгенерировано ли изображение нейросетью.

📸 Отправьте фото (или изображение файлом), и я скажу, настоящее оно или поддельное.

📋 Команды:
/check — проверить изображение
/stats — статистика проверок
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото или файл JPG/PNG
2️⃣ Бот прогонит его через модель
3️⃣ Вы получите вердикт: настоящее или поддельное, с оценкой модели

💡 Файлом качество сохраняется лучше, чем при отправке фото.`

	msgAwaitingPhoto   = "📸 Отправьте изображение для проверки."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте изображение для проверки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgUnreadable      = "⚠️ Не удалось прочитать изображение. Попробуйте другой файл."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте позже."
)

const (
	// maxDownloadSize ограничение Telegram Bot API на скачивание файлов
	maxDownloadSize = 20 << 20
	// downloadTimeout не даёт одной зависшей загрузке блокировать цикл обновлений
	downloadTimeout = 30 * time.Second
)

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	app    *container.Container
	log    logrus.FieldLogger
	client *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.WithField("account", api.Self.UserName).Info("authorized")

	return &Bot{
		api:    api,
		app:    app,
		log:    log,
		client: &http.Client{Timeout: downloadTimeout},
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// посты каналов приходят без отправителя
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, fileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var err error
	switch msg.Command() {
	case "start":
		_, err = users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		_, err = users.BeginCheck(ctx, userID, chatID)
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "stats":
		var user *entity.User
		user, err = users.Get(ctx, userID, chatID)
		if err == nil {
			checked, fakes, totalErr := users.Totals(ctx)
			err = totalErr
			b.sendMessage(chatID, formatStats(user, checked, fakes))
		}

	case "cancel":
		_, err = users.Cancel(ctx, userID, chatID)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}

	if err != nil {
		b.log.WithError(err).WithField("command", msg.Command()).Error("command failed")
	}
}

// handleImage скачивает изображение и возвращает вердикт
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	users := b.app.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID
	log := b.log.WithFields(logrus.Fields{"user": userID, "file": fileID})

	if _, err := users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		log.WithError(err).Error("failed to update user state")
	}
	b.sendMessage(chatID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.WithError(err).Error("failed to download image")
		b.sendMessage(chatID, msgProcessingError)
		b.resetUser(ctx, log, userID, chatID)
		return
	}

	verdict, err := b.app.DetectionService.CheckBytes(ctx, imageData)
	if err != nil {
		log.WithError(err).Warn("image check failed")
		if errors.Is(err, entity.ErrImageUnreadable) || errors.Is(err, entity.ErrPreprocessing) {
			b.sendMessage(chatID, msgUnreadable)
		} else {
			b.sendMessage(chatID, msgProcessingError)
		}
		b.resetUser(ctx, log, userID, chatID)
		return
	}

	if _, err := users.RecordVerdict(ctx, userID, chatID, *verdict); err != nil {
		log.WithError(err).Error("failed to record verdict")
	}
	log.WithField("score", verdict.Score).Info(verdict.Message())

	b.sendMessage(chatID, formatVerdict(*verdict))
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	return fetchFile(ctx, b.client, file.Link(b.api.Token))
}

// fetchFile скачивает файл по ссылке с ограничением размера
func fetchFile(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// resetUser возвращает пользователя в главное меню после неудачной проверки
func (b *Bot) resetUser(ctx context.Context, log logrus.FieldLogger, userID, chatID int64) {
	if _, err := b.app.UserService.Cancel(ctx, userID, chatID); err != nil {
		log.WithError(err).Error("failed to reset user state")
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).Error("failed to send message")
	}
}

// imageFileID выбирает файл для проверки: фото максимального размера
// или документ с MIME-типом изображения.
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

func formatVerdict(v entity.Verdict) string {
	icon := "✅"
	if v.IsFake() {
		icon = "🚨"
	}
	return fmt.Sprintf("%s %s\nОценка модели: %.3f (порог %.2f), уверенность %.0f%%",
		icon, v.Message(), v.Score, v.Threshold, v.Confidence()*100)
}

func formatStats(user *entity.User, totalChecked, totalFakes int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Ваши проверки: %d, подделок: %d\n", user.Checked, user.Fakes)
	if user.LastVerdict != nil {
		fmt.Fprintf(&sb, "Последний результат: %s\n", user.LastVerdict.Message())
	}
	fmt.Fprintf(&sb, "Всего проверено ботом: %d, подделок: %d", totalChecked, totalFakes)
	return sb.String()
}
