package middleware

import (
	"net/http"

	"github.com/atlashr/timecore-backend-go/internal/handler/http/response"
	"github.com/atlashr/timecore-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireApprover restricts an endpoint to the roles allowed to approve
// requests and resolve anomalies.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Forbidden(w, "Approver access required")
			return
		}
		if role != jwt.RoleManager && role != jwt.RoleHR && role != jwt.RoleAdmin {
			response.Forbidden(w, "Approver access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin restricts an endpoint to administrative configuration roles.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.Forbidden(w, "Admin access required")
			return
		}
		if role != jwt.RoleHR && role != jwt.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (jwt.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return jwt.Role(roleStr), true
}
