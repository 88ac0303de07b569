package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"asdscreen/internal/model"
	"asdscreen/internal/service"
)

// ResultHandler handles the result step endpoint
type ResultHandler struct {
	resultSvc *service.ResultService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultSvc *service.ResultService) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc}
}

// ResultResponse is the response body for a scoring run.
type ResultResponse struct {
	Prediction            string `json:"prediction,omitempty"`
	ProbabilityPercentage string `json:"probability_percentage,omitempty"`
	Display               string `json:"display"`
	Message               string `json:"message,omitempty"`
}

// Run handles POST /v1/sessions/{sessionId}/result. Each call re-reads the
// handoff store and submits to the scorer once.
func (h *ResultHandler) Run(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	outcome, err := h.resultSvc.Run(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ResultResponse{Display: outcome.Display()}
	switch outcome.Kind {
	case model.OutcomeSuccess:
		resp.Prediction = outcome.Prediction
		resp.ProbabilityPercentage = outcome.Probability
		writeJSON(w, http.StatusOK, resp)
	case model.OutcomeMissingInput:
		resp.Message = outcome.Message
		writeJSON(w, http.StatusConflict, resp)
	default:
		resp.Message = outcome.Message
		writeJSON(w, http.StatusBadGateway, resp)
	}
}
