package middleware

import (
	"LinkKeeper/internal/session"
	"context"
	"net/http"
)

type ctxKey string

const sessionKey ctxKey = "session"

// WithSession разбирает cookie сессии и кладёт её в контекст запроса.
// Запрос без валидной сессии проходит дальше анонимным: решение
// "пускать или нет" принимает хендлер.
func WithSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, ok := session.Parse(r, secret); ok {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext достаёт сессию, установленную WithSession.
func GetSessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)
	return s, ok
}
