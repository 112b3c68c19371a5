package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/domain/employee"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}

		_, role, ok := jwt.ClaimsFromMap(claims)
		if !ok || role != employee.RoleAdmin {
			response.HandleError(w, auth.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
