package api

import (
	"bowling_backend/internal/service"
	"bowling_backend/pkg/bowling"
	"bowling_backend/pkg/resp"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// StatusFor maps a service error onto an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, bowling.ErrInputFormat), errors.Is(err, bowling.ErrStructure):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrLoginTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body. Internal errors are logged and hidden from the client.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		resp.WriteError(w, status, http.StatusText(status))
		return
	}
	resp.WriteError(w, status, err.Error())
}
