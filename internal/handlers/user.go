package handlers

import (
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/session"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и выход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type loginView struct {
	Error string
}

type createView struct {
	Error string
	User  string
}

// LoginForm отдаёт форму входа.
func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "login.tmpl", loginView{})
}

// Login проверяет учётные данные и устанавливает сессию.
// Отказ всегда с одним сообщением, без различия "нет юзера"/"не тот пароль".
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.UserService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			render(w, h.Logger, "login.tmpl", loginView{Error: "Username and password not matching"})
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if _, err := session.Issue(w, user.ID, user.Login, h.Config.SessionSecret); err != nil {
		h.Logger.Errorw("Login: failed to issue session", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout сбрасывает сессию. Выход без сессии — тоже успех.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// CreateForm отдаёт форму регистрации.
func (h *UserHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	render(w, h.Logger, "create.tmpl", createView{})
}

// CreateAccount регистрирует пользователя и сразу логинит его.
func (h *UserHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	passwordConfirm := r.FormValue("passwordConfirm")

	if password != passwordConfirm {
		render(w, h.Logger, "create.tmpl", createView{Error: "Passwords not identical", User: username})
		return
	}

	user, err := h.UserService.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			render(w, h.Logger, "create.tmpl", createView{Error: "Username taken", User: username})
			return
		}
		h.Logger.Errorw("CreateAccount: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if _, err := session.Issue(w, user.ID, user.Login, h.Config.SessionSecret); err != nil {
		h.Logger.Errorw("CreateAccount: failed to issue session", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
