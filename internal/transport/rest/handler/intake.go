package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"asdscreen/internal/handoff"
	"asdscreen/internal/service"
)

// IntakeHandler handles the wizard step endpoints
type IntakeHandler struct {
	intakeSvc *service.IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeSvc *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeSvc: intakeSvc}
}

// StepRequest is the request body for submitting a wizard step. Unknown keys
// are dropped; declared fields missing from the body count as unanswered.
type StepRequest struct {
	Answers map[string]string `json:"answers"`
}

// CreateSession handles POST /v1/sessions
func (h *IntakeHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := h.intakeSvc.NewSession()
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": sessionID})
}

// SaveBehavioral handles PUT /v1/sessions/{sessionId}/behavioral
func (h *IntakeHandler) SaveBehavioral(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.intakeSvc.SaveBehavioral(r.Context(), sessionID, req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SavePersonal handles PUT /v1/sessions/{sessionId}/personal
func (h *IntakeHandler) SavePersonal(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.intakeSvc.SavePersonal(r.Context(), sessionID, req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetStep handles GET /v1/sessions/{sessionId}/steps/{step}
func (h *IntakeHandler) GetStep(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	step := vars["step"]

	if step != handoff.StepBehavioral && step != handoff.StepPersonal {
		writeError(w, http.StatusNotFound, "unknown step")
		return
	}

	form, ok, err := h.intakeSvc.GetStep(r.Context(), sessionID, step)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "step not completed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"answers": form})
}
