package http

import (
	"net/http"
	"time"

	"github.com/leaveflow/leaveflow-backend-go/internal/handler/http/response"
	"github.com/leaveflow/leaveflow-backend-go/internal/store"
)

type StatusHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type StatusHandlerImpl struct {
	store       *store.Store
	storageMode string
}

// Get implements StatusHandler. Reports whether the storage backend is
// reachable by probing the synchronized cache's last load state.
func (s *StatusHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"status":    "ok",
		"storage":   s.storageMode,
		"employees": len(s.store.Employees()),
		"time":      time.Now().UTC().Format(time.RFC3339),
	})
}

func NewStatusHandler(st *store.Store, storageMode string) StatusHandler {
	return &StatusHandlerImpl{store: st, storageMode: storageMode}
}
