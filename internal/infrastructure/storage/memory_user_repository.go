package storage

import (
	"context"
	"sync"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей бота
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт пустое хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		return user, nil
	}

	user := entity.NewUser(userID, chatID)
	r.users[userID] = user
	return user, nil
}

// Save сохраняет пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()

	return nil
}

// UpdateState обновляет состояние существующего пользователя
func (r *MemoryUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		user.SetState(state)
	}

	return nil
}

// Totals суммирует счётчики проверок всех пользователей
func (r *MemoryUserRepository) Totals(ctx context.Context) (checked, fakes int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		checked += user.Checked
		fakes += user.Fakes
	}

	return checked, fakes, nil
}

var _ port.UserRepository = (*MemoryUserRepository)(nil)
