package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// respondJSON пишет payload как JSON с заданным статусом.
func respondJSON(w http.ResponseWriter, logger *zap.SugaredLogger, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Errorw("Error encoding response to JSON", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondError — ответ об ошибке в виде {"error": "..."}.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
