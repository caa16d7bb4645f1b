// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// routeNotFound answers unknown routes with a 404 problem document. It is
// also registered as the MethodNotAllowed handler, so a known path requested
// with an unsupported method is reported as 404 instead of 405 and the
// route's existence is not leaked.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "*Handler.routeNotFound")
}
