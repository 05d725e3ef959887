package handlers

import (
	"ItemKeeper/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// maxBodyBytes ограничивает размер тела POST/PUT.
const maxBodyBytes = 1 << 20

// decodeItemPatch разбирает тело как JSON или application/x-www-form-urlencoded.
// Пустое тело — пустой патч.
func decodeItemPatch(w http.ResponseWriter, r *http.Request) (model.ItemPatch, error) {
	var patch model.ItemPatch
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return patch, fmt.Errorf("invalid form body: %w", err)
		}
		return patchFromForm(r)
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&patch)
	if errors.Is(err, io.EOF) {
		return patch, nil
	}
	if err != nil {
		return patch, fmt.Errorf("invalid json body: %w", err)
	}
	// после объекта допускаются только пробельные символы
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return patch, errors.New("invalid json body: unexpected data after object")
	}
	return patch, nil
}

func patchFromForm(r *http.Request) (model.ItemPatch, error) {
	var patch model.ItemPatch
	if _, ok := r.PostForm["name"]; ok {
		name := r.PostForm.Get("name")
		patch.Name = &name
	}
	if _, ok := r.PostForm["stock"]; ok {
		raw := strings.TrimSpace(r.PostForm.Get("stock"))
		stock, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return patch, fmt.Errorf("invalid stock %q: not a number", raw)
		}
		patch.Stock = &stock
	}
	return patch, nil
}
