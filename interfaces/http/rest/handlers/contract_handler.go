package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"unicorn-properties/application/services"
)

// ContractHandler serves the contract write surface.
type ContractHandler struct {
	contractService *services.ContractService
	logger          *zap.Logger
}

// NewContractHandler creates a contract handler
func NewContractHandler(contractService *services.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		logger:          logger,
	}
}

// CreateContract handles POST /contracts
func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req services.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message:        "ErrorInRequest",
			RequestDetails: "Unable to parse event input as JSON",
		})
		return
	}

	contract, err := h.contractService.CreateContract(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

// UpdateContract handles PUT /contracts
func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Message:        "ErrorInRequest",
			RequestDetails: "Unable to parse event input as JSON",
		})
		return
	}

	contract, err := h.contractService.UpdateContract(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}
