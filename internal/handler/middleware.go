package handlers

import (
	"log"
	"net/http"

	"goblog/internal/session"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps h in the given middlewares; the last one becomes outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

// SessionMiddleware resolves the session cookie once per request and puts
// the current user (or nil for anonymous) into the request context.
func SessionMiddleware(sessions session.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.CurrentUser(r.Context(), r)
			if err != nil {
				// treat a failed lookup as anonymous rather than erroring the page
				log.Printf("failed to resolve session: %v", err)
				user = nil
			}

			next.ServeHTTP(w, r.WithContext(session.WithUser(r.Context(), user)))
		})
	}
}

// AdminOnly rejects with 403 before the handler body runs, so a gated
// route can never perform a side effect for a non-admin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := session.UserFrom(r.Context())
		if !user.IsAdmin() {
			forbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}
