package handlers

import (
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	bookmarkService *service.BookmarkService,
	tagService *service.TagService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(config.SessionSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	bookmarkHandler := NewBookmarkHandler(bookmarkService, tagService, logger)
	tagHandler := NewTagHandler(tagService, logger)

	// User routes
	r.Get("/login", userHandler.LoginForm)
	r.Post("/log", userHandler.Login)
	r.Get("/logout", userHandler.Logout)
	r.Get("/create", userHandler.CreateForm)
	r.Post("/create_account", userHandler.CreateAccount)

	// Bookmark routes
	r.Get("/", bookmarkHandler.Index)
	r.Get("/add_bookmark", bookmarkHandler.AddForm)
	r.Post("/add", bookmarkHandler.Add)

	// Tag routes
	r.Post("/tag", tagHandler.Create)
	r.Post("/bookmark_tag", tagHandler.Mark)

	return &Handler{Router: r}
}
