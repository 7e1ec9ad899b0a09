package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VolleyballService/internal/api/handlers"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

const (
	HeaderUserID        = "X-User-ID"
	HeaderAuthorization = "Authorization"

	bearerPrefix = "Bearer "
)

// Auth требует X-User-ID и кладет сессию в контекст запроса.
// Токен из Authorization передается дальше на шлюз удаленных процедур.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromRequest(r)
		if !sess.IsAuthenticated() {
			handlers.RespondUnauthorized(w, handlers.MsgNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// OptionalAuth кладет сессию в контекст, если она есть; анонимные запросы пропускаются
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromRequest(r)
		if sess.IsAuthenticated() {
			r = r.WithContext(session.WithSession(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// GetSession возвращает сессию из контекста запроса (пустую для анонимных)
func GetSession(r *http.Request) session.Session {
	return session.FromContext(r.Context())
}

func sessionFromRequest(r *http.Request) session.Session {
	sess := session.Session{UserID: strings.TrimSpace(r.Header.Get(HeaderUserID))}
	if auth := r.Header.Get(HeaderAuthorization); strings.HasPrefix(auth, bearerPrefix) {
		sess.IDToken = strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix))
	}
	return sess
}
