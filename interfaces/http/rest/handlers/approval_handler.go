package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"unicorn-properties/application/services"
)

// ApprovalHandler serves the publication approval surface.
type ApprovalHandler struct {
	requester *services.ApprovalRequester
	logger    *zap.Logger
}

// NewApprovalHandler creates an approval handler
func NewApprovalHandler(requester *services.ApprovalRequester, logger *zap.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		requester: requester,
		logger:    logger,
	}
}

// RequestApproval handles POST /request_approval
func (h *ApprovalHandler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	var req services.RequestApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message:        "ErrorInRequest",
			RequestDetails: "Unable to parse event input as JSON",
		})
		return
	}

	if err := h.requester.RequestApproval(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Approval Requested"})
}
