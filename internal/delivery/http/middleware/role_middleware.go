package middleware

import (
	"net/http"

	"careconnect-backend/internal/domain/entity"
	"careconnect-backend/pkg/response"
)

// RequireRoles only lets the listed roles through. Must run after
// Authenticate so the role is already in the request context.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}
			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "Insufficient permissions for this resource")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireDoctor() func(http.Handler) http.Handler {
	return RequireRoles(entity.RoleDoctor, entity.RoleAdmin)
}

func RequireNurse() func(http.Handler) http.Handler {
	return RequireRoles(entity.RoleNurse, entity.RoleAdmin)
}

func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRoles(entity.RoleAdmin)
}
