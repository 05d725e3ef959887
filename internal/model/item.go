package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item — единственная сущность хранилища: товар с названием и остатком.
// Оба поля необязательны, отсутствующие значения не попадают в JSON.
type Item struct {
	ID    string   `gorm:"primaryKey;type:uuid" json:"id"`
	Name  *string  `json:"name,omitempty"`
	Stock *float64 `json:"stock,omitempty"`
}

// BeforeCreate выдаёт идентификатор при вставке через gorm.
func (it *Item) BeforeCreate(_ *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}

// ItemPatch — тело POST/PUT запроса. nil означает «поле не передано».
type ItemPatch struct {
	Name  *string  `json:"name" validate:"omitnil,max=255"`
	Stock *float64 `json:"stock" validate:"omitnil,finite"`
}

// Empty сообщает, что в патче нет ни одного поля.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Stock == nil
}

// Apply переносит переданные поля патча в item.
func (p ItemPatch) Apply(it *Item) {
	if p.Name != nil {
		name := *p.Name
		it.Name = &name
	}
	if p.Stock != nil {
		stock := *p.Stock
		it.Stock = &stock
	}
}

// Updates возвращает только переданные колонки для частичного обновления.
func (p ItemPatch) Updates() map[string]any {
	updates := make(map[string]any, 2)
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Stock != nil {
		updates["stock"] = *p.Stock
	}
	return updates
}
