package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/pkg/jwt"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}
			if _, _, ok := jwt.ClaimsFromMap(claims); !ok {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
