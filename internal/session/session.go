// Package session реализует сессию пользователя поверх подписанной cookie.
// Состояние (id, логин, CSRF-токен) живёт только в cookie: сервер ничего
// не хранит между запросами.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя cookie с подписанной сессией.
const CookieName = "lk_session"

// TTL сессии; после истечения cookie считается отсутствующей.
const sessionTTL = 24 * time.Hour

// ErrBadCSRFToken — CSRF-токен отсутствует или не совпал с сессионным.
var ErrBadCSRFToken = errors.New("csrf token mismatch")

// Session — явное состояние залогиненного пользователя.
// Все три поля заполнены вместе либо сессии нет вовсе.
type Session struct {
	UserID    int64
	Username  string
	CSRFToken string
}

// CheckCSRF сверяет присланный токен с сессионным.
// Мутирующие операции обязаны вызывать это до обращения к хранилищам.
func (s Session) CheckCSRF(supplied string) error {
	if supplied == "" || supplied != s.CSRFToken {
		return ErrBadCSRFToken
	}
	return nil
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"uid"`
	Username  string `json:"username"`
	CSRFToken string `json:"csrf"`
}

// NewCSRFToken генерирует свежий токен: 128 бит энтропии, hex.
func NewCSRFToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Issue создаёт сессию для пользователя и ставит подписанную cookie.
// CSRF-токен каждый раз свежий: релогин меняет его.
func Issue(w http.ResponseWriter, userID int64, username, secret string) (Session, error) {
	csrf, err := NewCSRFToken()
	if err != nil {
		return Session{}, err
	}
	s := Session{UserID: userID, Username: username, CSRFToken: csrf}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
		UserID:    s.UserID,
		Username:  s.Username,
		CSRFToken: s.CSRFToken,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return Session{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL / time.Second),
	})
	return s, nil
}

// Clear сбрасывает cookie сессии. Идемпотентна: отсутствие сессии не ошибка.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Parse достаёт сессию из cookie запроса и проверяет подпись.
// Любой дефект (нет cookie, плохая подпись, неполные клеймы) — просто
// анонимный запрос, не ошибка.
func Parse(r *http.Request, secret string) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, false
	}
	if claims.UserID == 0 || claims.Username == "" || claims.CSRFToken == "" {
		return Session{}, false
	}
	return Session{UserID: claims.UserID, Username: claims.Username, CSRFToken: claims.CSRFToken}, true
}
