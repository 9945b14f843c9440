package handlers

import (
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/model"
	"LinkKeeper/internal/service"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// BookmarkHandler обрабатывает главную страницу и создание закладок.
type BookmarkHandler struct {
	BookmarkService *service.BookmarkService
	TagService      *service.TagService
	Logger          *zap.SugaredLogger
}

// NewBookmarkHandler создаёт хендлер закладок
func NewBookmarkHandler(bookmarkService *service.BookmarkService, tagService *service.TagService, logger *zap.SugaredLogger) *BookmarkHandler {
	return &BookmarkHandler{BookmarkService: bookmarkService, TagService: tagService, Logger: logger}
}

type indexView struct {
	Username  string
	Bookmarks []model.Bookmark
	Tags      map[string][]string
}

type addBookmarkView struct {
	CSRFToken   string
	Tags        []model.Tag
	Error       string
	Title       string
	Description string
	Author      string
	ISBN        string
}

// Index — список закладок владельца с именами тегов.
// Аноним получает форму логина с подсказкой, не жёсткую ошибку.
func (h *BookmarkHandler) Index(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		render(w, h.Logger, "login.tmpl", loginView{Error: "User not logged in"})
		return
	}

	bookmarks, err := h.BookmarkService.ListForUser(r.Context(), s.UserID)
	if err != nil {
		h.Logger.Errorw("Index: failed to list bookmarks", "user_id", s.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	tags, err := h.BookmarkService.TagNamesByBookmark(r.Context(), s.UserID)
	if err != nil {
		h.Logger.Errorw("Index: failed to list marked tags", "user_id", s.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	render(w, h.Logger, "index.tmpl", indexView{Username: s.Username, Bookmarks: bookmarks, Tags: tags})
}

// AddForm отдаёт форму добавления закладки с тегами владельца.
func (h *BookmarkHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	tags, err := h.TagService.ListForUser(r.Context(), s.UserID)
	if err != nil {
		h.Logger.Errorw("AddForm: failed to list tags", "user_id", s.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	render(w, h.Logger, "add_bookmark.tmpl", addBookmarkView{CSRFToken: s.CSRFToken, Tags: tags})
}

// Add создаёт закладку выбранного варианта и отмечает выбранные теги.
// Порядок фиксированный: сессия → CSRF → валидация → запись.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
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

	title := r.FormValue("title")
	description := r.FormValue("description")
	author := r.FormValue("author")

	var payload model.BookmarkPayload
	switch kind := r.FormValue("type"); model.BookmarkKind(kind) {
	case model.KindBook:
		payload = model.BookPayload{ISBN: r.FormValue("ISBN")}
	case model.KindVideo:
		payload = model.VideoPayload{Link: r.FormValue("link")}
	case model.KindBlog:
		payload = model.BlogPayload{Link: r.FormValue("link")}
	case model.KindPodcast:
		payload = model.PodcastPayload{EpisodeName: r.FormValue("episode"), Link: r.FormValue("link")}
	case model.KindScientificArticle:
		payload = model.ArticlePayload{
			PublicationTitle: r.FormValue("publication_title"),
			DOI:              r.FormValue("doi"),
			Year:             r.FormValue("year"),
			Publisher:        r.FormValue("publisher"),
		}
	default:
		http.Error(w, "unknown bookmark type", http.StatusBadRequest)
		return
	}

	// выбранные теги: id приходят из чекбоксов формы
	var tagIDs []int64
	for _, raw := range r.Form["tag"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid tag id", http.StatusBadRequest)
			return
		}
		tagIDs = append(tagIDs, id)
	}

	_, err := h.BookmarkService.AddWithTags(r.Context(), s.UserID, title, description, author, payload, tagIDs)
	if err != nil {
		if errors.Is(err, service.ErrInvalidISBN) {
			tags, terr := h.TagService.ListForUser(r.Context(), s.UserID)
			if terr != nil {
				h.Logger.Errorw("Add: failed to list tags for re-render", "user_id", s.UserID, "error", terr)
			}
			render(w, h.Logger, "add_bookmark.tmpl", addBookmarkView{
				CSRFToken:   s.CSRFToken,
				Tags:        tags,
				Error:       "Invalid ISBN",
				Title:       title,
				Description: description,
				Author:      author,
				ISBN:        r.FormValue("ISBN"),
			})
			return
		}
		h.Logger.Errorw("Add: service error", "user_id", s.UserID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
