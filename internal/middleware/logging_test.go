package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// Дымовой тест: проверяем, что мидлварь логирования не паникует и корректно проксирует ответ
func TestWithLogging_Smoke(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot) // 418
		_, _ = w.Write([]byte("hello"))
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/add_bookmark", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
	if rr.Body.String() != "hello" {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
}

// Хендлер не вызывает WriteHeader явно — в лог должен уйти 200
func TestWithLogging_DefaultStatus(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", rr.Code)
	}
}
