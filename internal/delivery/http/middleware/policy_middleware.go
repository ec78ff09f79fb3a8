package middleware

import (
	"net/http"

	"medical-referrals/internal/policy"
	"medical-referrals/pkg/response"
)

// Require creates a middleware that checks the caller's role against the
// permission matrix. Role is read from context, set by AuthMiddleware from
// the JWT claims.
func Require(action policy.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if !policy.Allow(role, action) {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireWrite guards record create and update endpoints
func RequireWrite(next http.Handler) http.Handler {
	return Require(policy.ActionWrite)(next)
}

// RequireDelete guards record removal endpoints
func RequireDelete(next http.Handler) http.Handler {
	return Require(policy.ActionDelete)(next)
}

// RequireManageUsers guards account administration endpoints
func RequireManageUsers(next http.Handler) http.Handler {
	return Require(policy.ActionManageUsers)(next)
}

// RequireViewAudit guards the audit trail endpoint
func RequireViewAudit(next http.Handler) http.Handler {
	return Require(policy.ActionViewAudit)(next)
}
