package testutils

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// WithURLParams подставляет параметры пути chi в контекст запроса.
// kv - пары ключ, значение: WithURLParams(req, "id", "1").
func WithURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
