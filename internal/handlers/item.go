package handlers

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ItemHandler обслуживает CRUD по коллекции items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

// DeletedResponse — ответ на успешное удаление.
type DeletedResponse struct {
	Message string `json:"message"`
}

const deletedMessage = "Item deleted successfully"

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках валидации — имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// List отдаёт все записи
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.writeStoreError(w, "", err)
		return
	}
	respondJSON(w, h.Logger, http.StatusOK, items)
}

// Create добавляет запись из тела запроса
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, ok := h.readPatch(w, r)
	if !ok {
		return
	}
	it, err := h.ItemService.Create(r.Context(), patch)
	if err != nil {
		h.writeStoreError(w, "", err)
		return
	}
	respondJSON(w, h.Logger, http.StatusCreated, it)
}

// Get отдаёт запись по itemId
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respondJSON(w, h.Logger, http.StatusOK, it)
}

// Update частично обновляет запись: не переданные поля сохраняют прежние значения
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	patch, ok := h.readPatch(w, r)
	if !ok {
		return
	}
	it, err := h.ItemService.Update(r.Context(), id, patch)
	if err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respondJSON(w, h.Logger, http.StatusOK, it)
}

// Delete удаляет запись. Отсутствующий itemId — 404.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.writeStoreError(w, id, err)
		return
	}
	respondJSON(w, h.Logger, http.StatusOK, DeletedResponse{Message: deletedMessage})
}

// readPatch декодирует и валидирует тело. При ошибке ответ уже записан.
func (h *ItemHandler) readPatch(w http.ResponseWriter, r *http.Request) (model.ItemPatch, bool) {
	patch, err := decodeItemPatch(w, r)
	if err != nil {
		h.Logger.Warnw("invalid request body", "error", err)
		respondError(w, h.Logger, http.StatusBadRequest, err.Error())
		return patch, false
	}

	if err := h.validate.Struct(patch); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.Logger.Warnw("validation errors occurred", "errors", fields)
			respondJSON(w, h.Logger, http.StatusBadRequest, map[string]any{
				"error":             "validation failed",
				"validation_errors": fields,
			})
			return patch, false
		}
		h.Logger.Errorw("error validating request body", "error", err)
		respondError(w, h.Logger, http.StatusBadRequest, "invalid request body")
		return patch, false
	}
	return patch, true
}

// writeStoreError переводит ошибки репозитория в HTTP-статусы.
func (h *ItemHandler) writeStoreError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		respondError(w, h.Logger, http.StatusBadRequest, fmt.Sprintf("invalid item id: %s", id))
	case errors.Is(err, repo.ErrItemNotFound):
		respondError(w, h.Logger, http.StatusNotFound, fmt.Sprintf("item %s not found", id))
	default:
		respondError(w, h.Logger, http.StatusInternalServerError, "store error")
	}
}
