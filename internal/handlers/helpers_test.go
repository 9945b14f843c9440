package handlers_test

import (
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/handlers"
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/repo"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/session"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockBookmarkRepo struct{ mock.Mock }

func (m *mockBookmarkRepo) Create(ctx context.Context, b *model.Bookmark) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Bookmark); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.BookmarkRepository = (*mockBookmarkRepo)(nil)

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *mockTagRepo) ListByUser(ctx context.Context, userID int64) ([]model.Tag, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Tag); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) CreateMark(ctx context.Context, mark *model.TagMark) error {
	return m.Called(ctx, mark).Error(0)
}

func (m *mockTagRepo) ListMarkedNamesByUser(ctx context.Context, userID int64) ([]model.MarkedTag, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.MarkedTag); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.TagRepository = (*mockTagRepo)(nil)

// --- Helpers ---
const testSecret = "test-secret"

func newTestRouter(t *testing.T, ur repo.UserRepository, br repo.BookmarkRepository, tr repo.TagRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{SessionSecret: testSecret}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	bookmarkSvc := service.NewBookmarkService(br, tr, logger)
	tagSvc := service.NewTagService(tr)

	h := handlers.NewHandler(userSvc, bookmarkSvc, tagSvc, logger, cfg)
	return h.Router
}

// addSession ставит в запрос cookie залогиненного пользователя
// и возвращает сессию (в ней CSRF-токен для форм).
func addSession(t *testing.T, req *http.Request, userID int64, username string) session.Session {
	t.Helper()
	rr := httptest.NewRecorder()
	s, err := session.Issue(rr, userID, username, testSecret)
	if err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return s
}

// postForm собирает form-encoded POST запрос
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// authedForm собирает form-encoded POST от залогиненного пользователя,
// подставляя в форму его сессионный csrf_token.
func authedForm(t *testing.T, target string, form url.Values, userID int64, username string) *http.Request {
	t.Helper()
	rr := httptest.NewRecorder()
	s, err := session.Issue(rr, userID, username, testSecret)
	if err != nil {
		t.Fatalf("failed to issue session: %v", err)
	}
	form.Set("csrf_token", s.CSRFToken)
	req := postForm(target, form)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// hasSessionCookie проверяет, что ответ устанавливает cookie сессии
func hasSessionCookie(rr *httptest.ResponseRecorder) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return true
		}
	}
	return false
}
