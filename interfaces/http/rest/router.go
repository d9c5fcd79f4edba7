// Package rest assembles the HTTP API served both behind API Gateway
// and as a local development server.
package rest

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"unicorn-properties/application/services"
	"unicorn-properties/interfaces/http/rest/handlers"
	"unicorn-properties/interfaces/http/rest/middleware"
)

// Router builds the chi mux for the REST surface.
type Router struct {
	contracts *handlers.ContractHandler
	approvals *handlers.ApprovalHandler
	search    *handlers.SearchHandler
	logger    *zap.Logger
}

// NewRouter creates a router over the application services
func NewRouter(
	contractService *services.ContractService,
	requester *services.ApprovalRequester,
	searchService *services.SearchService,
	logger *zap.Logger,
) *Router {
	return &Router{
		contracts: handlers.NewContractHandler(contractService, logger),
		approvals: handlers.NewApprovalHandler(requester, logger),
		search:    handlers.NewSearchHandler(searchService, logger),
		logger:    logger,
	}
}

// Setup registers middleware and routes
func (rt *Router) Setup() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(rt.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/contracts", rt.contracts.CreateContract)
	r.Put("/contracts", rt.contracts.UpdateContract)

	r.Post("/request_approval", rt.approvals.RequestApproval)

	r.Get("/search/{country}/{city}", rt.search.Search)
	r.Get("/search/{country}/{city}/{street}", rt.search.Search)
	r.Get("/properties/{country}/{city}/{street}/{number}", rt.search.Search)

	return r
}
