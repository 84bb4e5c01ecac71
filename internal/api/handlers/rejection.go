package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// ConflictResponse тело 409 с указанием конфликтующего интервала
type ConflictResponse struct {
	Code          int    `json:"code"`
	Message       string `json:"message"`
	Reason        string `json:"reason,omitempty"`
	ConflictStart string `json:"conflictStart,omitempty"`
	ConflictEnd   string `json:"conflictEnd,omitempty"`
}

// RespondRejection отвечает 409; если в цепочке err есть отказ резолвера, добавляет причину и интервал
func RespondRejection(w http.ResponseWriter, message string, err error) {
	resp := ConflictResponse{Code: http.StatusConflict, Message: message}

	var rejection *availability.RejectionError
	if errors.As(err, &rejection) {
		resp.Reason = string(rejection.Reason)
		if !rejection.Conflict.Start.IsZero() {
			resp.ConflictStart = rejection.Conflict.Start.UTC().Format(time.RFC3339)
			resp.ConflictEnd = rejection.Conflict.End.UTC().Format(time.RFC3339)
		}
	}

	RespondJSON(w, http.StatusConflict, resp)
}
