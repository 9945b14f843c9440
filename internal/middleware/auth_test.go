package middleware

import (
	"LinkKeeper/internal/session"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Тест: session.Issue + WithSession — сессия попадает в контекст
func TestWithSession_ValidCookieSetsSession(t *testing.T) {
	const secret = "test-secret"

	// next-хендлер читает сессию из контекста
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := GetSessionFromContext(r.Context()); ok && s.UserID == 77 && s.Username == "bob" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})

	h := WithSession(secret)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rrCookie := httptest.NewRecorder()
	_, _ = session.Issue(rrCookie, 77, "bob", secret)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", rr.Code)
	}
}

// Тест: отсутствие cookie — запрос проходит анонимным
func TestWithSession_NoCookieLeavesAnonymous(t *testing.T) {
	h := WithSession("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); ok {
			t.Fatalf("session must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: cookie с чужим секретом — сессия не устанавливается
func TestWithSession_InvalidSignature(t *testing.T) {
	// Сгенерируем cookie с секретом A, а проверять будем секретом B
	rrCookie := httptest.NewRecorder()
	_, _ = session.Issue(rrCookie, 5, "eve", "secret-A")

	h := WithSession("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); ok {
			t.Fatalf("session must not be set with invalid signature")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
