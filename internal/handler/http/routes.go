// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/notebook", func(r chi.Router) {
		if h.requireAuth {
			r.Use(h.auth)
		}
		r.Use(middleware.AllowContentType("application/json"))

		r.Post("/load", h.loadNotebook)
		r.Get("/", h.getNotebook)
		r.Get("/hint", h.getHint)
		r.Get("/export", h.exportNotebook)
		r.Post("/import", h.importNotebook)
		r.Post("/persist", h.persistNotebook)

		r.Get("/sections", h.listSections)
		r.Post("/sections", h.addSection)
		r.Route("/sections/{id}", func(r chi.Router) {
			r.Get("/", h.getSection)
			r.Patch("/", h.updateSection)
			r.Delete("/", h.removeSection)
			r.Put("/content", h.editSection)
			r.Post("/encrypt", h.encryptSection)
			r.Post("/unlock", h.unlockSection)
			r.Post("/lock", h.lockSection)
		})
	})

	return router
}
