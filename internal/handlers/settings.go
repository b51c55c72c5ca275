package handlers

import (
	"encoding/json"
	"net/http"

	"omnirag/internal/contextutil"
	"omnirag/internal/service"
)

// SettingsHandler serves the pipeline settings surface.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// InstructionPayload carries the system instruction in both directions.
type InstructionPayload struct {
	Instruction string `json:"instruction"`
}

// GetInstruction returns the current system instruction.
func (h *SettingsHandler) GetInstruction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InstructionPayload{Instruction: h.settings.Instruction()})
}

// PutInstruction overrides the system instruction. An empty value
// restores the default persona.
func (h *SettingsHandler) PutInstruction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req InstructionPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.settings.SetInstruction(req.Instruction)
	logger.InfoContext(ctx, "system instruction updated", "length", len(req.Instruction))
	writeJSON(w, http.StatusOK, InstructionPayload{Instruction: h.settings.Instruction()})
}
