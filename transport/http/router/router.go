package router

import (
	"catalog/internal/handlers/resource"
	"catalog/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Resource resource.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.Tracing)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Resource.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
	}
}
