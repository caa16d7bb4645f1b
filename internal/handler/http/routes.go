// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)
		r.Get("/health/", h.checkHealth)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Get("/{id}", h.getClient)
			r.Delete("/{id}", h.deleteClient)

			// write routes carry a JSON body that may be signed
			r.Group(func(r chi.Router) {
				r.Use(h.verifyHashing)
				r.Post("/", h.createClient)
				r.Put("/{id}", h.updateClient)
			})
		})
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}
