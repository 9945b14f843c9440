package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// render отдаёт HTML-страницу. Ошибка рендера — это баг шаблона,
// логируем и отвечаем 500.
func render(w http.ResponseWriter, logger *zap.SugaredLogger, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Errorw("template render failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
