package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_Create_GetByID(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, model.ItemPatch{Name: ptrStr("Widget"), Stock: ptrF64(10)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Widget", *created.Name)
	assert.Equal(t, 10.0, *created.Stock)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestItemRepository_Create_OptionalFields(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, model.ItemPatch{})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Stock)
}

func TestItemRepository_ListAll(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()

	// пустая коллекция — пустой, но не nil срез
	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	a, err := r.Create(ctx, model.ItemPatch{Name: ptrStr("a")})
	require.NoError(t, err)
	b, err := r.Create(ctx, model.ItemPatch{Name: ptrStr("b"), Stock: ptrF64(2)})
	require.NoError(t, err)

	all, err = r.ListAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Item{*a, *b}, all)
}

func TestItemRepository_UpdateByID_PartialPatch(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()

	it, err := r.Create(ctx, model.ItemPatch{Name: ptrStr("Widget"), Stock: ptrF64(10)})
	require.NoError(t, err)

	updated, err := r.UpdateByID(ctx, it.ID, model.ItemPatch{Stock: ptrF64(5)})
	require.NoError(t, err)
	assert.Equal(t, it.ID, updated.ID)
	assert.Equal(t, "Widget", *updated.Name)
	assert.Equal(t, 5.0, *updated.Stock)

	// те же значения повторно — не ошибка
	updated, err = r.UpdateByID(ctx, it.ID, model.ItemPatch{Stock: ptrF64(5)})
	require.NoError(t, err)
	assert.Equal(t, 5.0, *updated.Stock)

	// пустой патч возвращает текущее состояние
	same, err := r.UpdateByID(ctx, it.ID, model.ItemPatch{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)
}

func TestItemRepository_NotFoundAndInvalidID(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()
	missing := uuid.NewString()

	_, err := r.GetByID(ctx, missing)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = r.UpdateByID(ctx, missing, model.ItemPatch{Name: ptrStr("x")})
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.ErrorIs(t, r.DeleteByID(ctx, missing), ErrItemNotFound)

	_, err = r.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = r.UpdateByID(ctx, "not-a-uuid", model.ItemPatch{})
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, r.DeleteByID(ctx, "not-a-uuid"), ErrInvalidID)
}

func TestItemRepository_DeleteByID(t *testing.T) {
	r := NewItemRepository(newTestDB(t))
	ctx := context.Background()

	it, err := r.Create(ctx, model.ItemPatch{Name: ptrStr("gone")})
	require.NoError(t, err)

	assert.NoError(t, r.DeleteByID(ctx, it.ID))

	_, err = r.GetByID(ctx, it.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	// повторное удаление — записи уже нет
	assert.ErrorIs(t, r.DeleteByID(ctx, it.ID), ErrItemNotFound)
}

func TestItemRepository_StoreErrorIsWrapped(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = r.ListAll(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}
