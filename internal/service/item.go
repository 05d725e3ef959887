package service

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
)

// ItemService — слой между HTTP и репозиторием: каждая операция ровно один вызов хранилища.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger}
}

// List возвращает все записи.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("List: store error", "error", err)
		return nil, err
	}
	return items, nil
}

// Create сохраняет новую запись.
func (s *ItemService) Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	it, err := s.repo.Create(ctx, patch)
	if err != nil {
		s.logger.Errorw("Create: store error", "error", err)
		return nil, err
	}
	s.logger.Debugw("Create: item stored", "id", it.ID)
	return it, nil
}

// Get возвращает запись по идентификатору.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logStoreError("Get", id, err)
		return nil, err
	}
	return it, nil
}

// Update применяет частичное обновление. Параллельные обновления одной записи —
// last-writer-wins, версионирования нет.
func (s *ItemService) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	it, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		s.logStoreError("Update", id, err)
		return nil, err
	}
	return it, nil
}

// Delete удаляет запись.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logStoreError("Delete", id, err)
		return err
	}
	return nil
}

// logStoreError пишет в лог только настоящие сбои хранилища; «не найдено» и
// битый id — ожидаемые исходы, их достаточно отметить на уровне debug.
func (s *ItemService) logStoreError(op, id string, err error) {
	if errors.Is(err, repo.ErrItemNotFound) || errors.Is(err, repo.ErrInvalidID) {
		s.logger.Debugw(op+": item unavailable", "id", id, "error", err)
		return
	}
	s.logger.Errorw(op+": store error", "id", id, "error", err)
}
