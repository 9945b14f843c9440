package handlers

import (
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/service"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// TagHandler обрабатывает создание тегов и отметку тегов на закладках.
type TagHandler struct {
	TagService *service.TagService
	Logger     *zap.SugaredLogger
}

// NewTagHandler создаёт хендлер тегов
func NewTagHandler(tagService *service.TagService, logger *zap.SugaredLogger) *TagHandler {
	return &TagHandler{TagService: tagService, Logger: logger}
}

// Create заводит новый тег и возвращает на форму добавления закладки.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if err := s.CheckCSRF(r.FormValue("csrf_token")); err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if _, err := h.TagService.Create(r.Context(), s.UserID, r.FormValue("new_tag_name")); err != nil {
		h.Logger.Errorw("Create tag: service error", "user_id", s.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/add_bookmark", http.StatusFound)
}

// Mark отмечает существующий тег на существующей закладке.
func (h *TagHandler) Mark(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if err := s.CheckCSRF(r.FormValue("csrf_token")); err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	tagID, err := strconv.ParseInt(r.FormValue("tag_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}
	bookmarkID := r.FormValue("bookmark_id")
	if bookmarkID == "" {
		http.Error(w, "missing bookmark id", http.StatusBadRequest)
		return
	}

	if err := h.TagService.Mark(r.Context(), s.UserID, tagID, bookmarkID); err != nil {
		h.Logger.Errorw("Mark tag: service error", "user_id", s.UserID, "tag_id", tagID, "bookmark_id", bookmarkID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
