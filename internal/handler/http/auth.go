package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leaveflow/leaveflow-backend-go/internal/domain/auth"
	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	authService "github.com/leaveflow/leaveflow-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.AuthService
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func NewAuthHandler(service *authService.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: service}
}
