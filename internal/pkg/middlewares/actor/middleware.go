package actor

import (
	"context"
	"net/http"

	"marketplace/internal/entities"
)

type ctxKey struct{}

// Middleware resolves the caller identity from X-Actor-Id and X-Actor-Role
// headers and stores it in the request context. Requests without both
// headers are rejected before reaching handlers.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Actor-Id")
			role := r.Header.Get("X-Actor-Role")

			if id == "" || !entities.IsValidRole(role) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Forbidden","message":"valid X-Actor-Id and X-Actor-Role headers are required"}`))
				return
			}

			ctx := WithActor(r.Context(), entities.Actor{ID: id, Role: entities.Role(role)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithActor(ctx context.Context, a entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (entities.Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return a, ok
}
