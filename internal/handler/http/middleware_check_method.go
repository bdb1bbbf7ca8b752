// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered through
// [chi.Mux.MethodNotAllowed]. Instead of chi's 405 it answers 404 when the
// requested method is not registered for the path, so unsupported methods
// look the same as unknown paths.
//
// Only routes whose pattern equals the raw request path are considered;
// parameterised patterns such as /api/contacts/{contactId} never match and
// therefore always yield 404.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		http.NotFound(w, r)
	}
}
