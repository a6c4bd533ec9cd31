package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// actorID extracts the authenticated employee id from token claims. The
// auth middleware guarantees the claim is present on protected routes.
func actorID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	return id, ok && id != ""
}
