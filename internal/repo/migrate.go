package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// schemaMigrator выполняет AutoMigrate один раз, при первом удачном обращении.
// Неудачная попытка не запоминается: следующая операция попробует снова.
type schemaMigrator struct {
	db   *gorm.DB
	mu   sync.Mutex
	done bool
}

func (m *schemaMigrator) ensure(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return nil
	}
	if err := m.db.WithContext(ctx).AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("migrate items: %w", err)
	}
	m.done = true
	return nil
}

// migratingRepo гарантирует схему перед каждой операцией репозитория.
type migratingRepo struct {
	next    ItemRepository
	migrate *schemaMigrator
}

func (r *migratingRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	if err := r.migrate.ensure(ctx); err != nil {
		return nil, err
	}
	return r.next.ListAll(ctx)
}

func (r *migratingRepo) Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	if err := r.migrate.ensure(ctx); err != nil {
		return nil, err
	}
	return r.next.Create(ctx, patch)
}

func (r *migratingRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if err := r.migrate.ensure(ctx); err != nil {
		return nil, err
	}
	return r.next.GetByID(ctx, id)
}

func (r *migratingRepo) UpdateByID(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	if err := r.migrate.ensure(ctx); err != nil {
		return nil, err
	}
	return r.next.UpdateByID(ctx, id, patch)
}

func (r *migratingRepo) DeleteByID(ctx context.Context, id string) error {
	if err := r.migrate.ensure(ctx); err != nil {
		return err
	}
	return r.next.DeleteByID(ctx, id)
}
