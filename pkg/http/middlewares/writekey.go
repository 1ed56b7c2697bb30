package middlewares

import (
	"net/http"

	"github.com/marble-stack/financial-planning/pkg/apps"
	httputil "github.com/marble-stack/financial-planning/pkg/http"
)

type writeKeyHandler struct {
	backend *apps.Backend
}

func NewWriteKeyMiddleware(backend *apps.Backend) *writeKeyHandler {
	return &writeKeyHandler{
		backend: backend,
	}
}

func (h writeKeyHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key := req.Header.Get("Authorization")
		if key == "" {
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		app, err := h.backend.GetAppForKey(key)
		if err != nil {
			httputil.JsonError(w, http.StatusUnauthorized, httputil.ErrorCodeUnauthorized, "unauthorized")
			return
		}

		r := req.WithContext(httputil.WithAppID(req.Context(), app.ID))

		next.ServeHTTP(w, r)
	})
}
