package handler

import (
	"net/http"
	"strconv"

	"asdscreen/internal/repository"
	"asdscreen/internal/transport/rest/middleware"
)

// RecordHandler handles the operator records console
type RecordHandler struct {
	records repository.RecordRepository
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(records repository.RecordRepository) *RecordHandler {
	return &RecordHandler{records: records}
}

// List handles GET /v1/records
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	operatorID := middleware.GetOperatorID(r.Context())
	if operatorID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if h.records == nil {
		writeError(w, http.StatusServiceUnavailable, "record archive not configured")
		return
	}

	limit := int64(50)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.records.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}
