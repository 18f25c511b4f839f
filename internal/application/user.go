package app

import (
	"context"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateState(ctx, userID, state); err != nil {
		return nil, err
	}
	user.SetState(state)

	return user, nil
}

func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// RecordVerdict учитывает результат проверки и возвращает пользователя в меню.
func (s *UserService) RecordVerdict(ctx context.Context, userID, chatID int64, v entity.Verdict) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.RecordVerdict(v)
	user.SetState(entity.StateMainMenu)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Totals общая статистика проверок.
func (s *UserService) Totals(ctx context.Context) (checked, fakes int, err error) {
	return s.repo.Totals(ctx)
}
