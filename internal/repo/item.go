package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrItemNotFound — записи с таким идентификатором нет в хранилище.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidID — идентификатор не может существовать в данном хранилище.
	ErrInvalidID = errors.New("invalid item id")
)

// ItemRepository — контракт доступа к коллекции Item: одна операция на HTTP-глагол.
type ItemRepository interface {
	// ListAll возвращает все записи без фильтрации и пагинации.
	ListAll(ctx context.Context) ([]model.Item, error)

	// Create вставляет новую запись, идентификатор выдаёт хранилище.
	Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error)

	// GetByID ищет запись по идентификатору.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// UpdateByID записывает переданные поля и возвращает запись после обновления.
	UpdateByID(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)

	// DeleteByID удаляет запись. ErrItemNotFound, если удалять было нечего.
	DeleteByID(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт gorm-реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	it := &model.Item{}
	patch.Apply(it)
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return &it, nil
}

// UpdateByID обновляет только переданные колонки. RowsAffected == 0 ещё не значит,
// что записи нет, поэтому итог всегда перечитывается через GetByID.
func (r *itemRepo) UpdateByID(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	if !patch.Empty() {
		tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(patch.Updates())
		if tx.Error != nil {
			return nil, fmt.Errorf("update item %s: %w", id, tx.Error)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *itemRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if tx.Error != nil {
		return fmt.Errorf("delete item %s: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
