package handlers

import (
	"net/http"

	"github.com/carelink/portal-gateway/internal/transport/http/nav"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
)

// fail finishes a request that errored. A forced navigation set during the
// call (a rejected credential tears the session down and points at the login
// page) wins over the JSON error body.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if target := nav.Target(r.Context()); target != "" {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	response.WriteError(w, r, err)
}

// redirectOr follows the forced navigation, falling back to the given target.
func redirectOr(w http.ResponseWriter, r *http.Request, fallback string) {
	target := nav.Target(r.Context())
	if target == "" {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
