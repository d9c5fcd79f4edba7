package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"unicorn-properties/application/services"
)

// SearchHandler serves the read-only property search surface.
type SearchHandler struct {
	searchService *services.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates a search handler
func NewSearchHandler(searchService *services.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search dispatches on the matched chi route pattern, which lines up
// with the resource templates the search service understands.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	routeCtx := chi.RouteContext(r.Context())

	params := map[string]string{}
	for _, key := range []string{"country", "city", "street", "number"} {
		if value := chi.URLParam(r, key); value != "" {
			params[key] = value
		}
	}

	dtos, err := h.searchService.Search(r.Context(), routeCtx.RoutePattern(), params)
	if err != nil {
		writeJSON(w, errorStatus(err), ErrorResponse{
			Message:        "ErrorInRequest",
			RequestDetails: "Cannot Process Request",
		})
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
