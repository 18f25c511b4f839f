package port

import (
	"context"

	"deepfake-detect/internal/domain/entity"
)

// UserRepository хранилище пользователей бота и их истории проверок
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя целиком
	Save(ctx context.Context, user *entity.User) error

	// UpdateState меняет только состояние диалога
	UpdateState(ctx context.Context, userID int64, state entity.UserState) error

	// Totals суммирует проверки по всем пользователям
	Totals(ctx context.Context) (checked, fakes int, err error)
}
