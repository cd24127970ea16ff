package middleware

import (
	"net/http"

	"github.com/David-Smile/cloud-payroll-demo/internal/domain/user"
	"github.com/David-Smile/cloud-payroll-demo/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole gates a route to the declared role set. Routes name their
// allowed roles where they are defined; membership is the only rule, so a
// set without admin rejects admins too. Runs after AuthRequired, which has
// already rejected unauthenticated requests.
func RequireRole(allowed ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid or expired credential")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if !user.RoleAllowed(user.Role(roleStr), allowed...) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
