// Package view renders the embedded page templates. Rendering is kept
// behind a small surface so handlers only decide what to show, not how.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"goblog/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Data is everything a page can receive. Unused fields stay zero.
type Data struct {
	User     *models.User
	Flash    string
	Year     int
	Posts    []models.Post
	Post     *models.Post
	Comments []models.Comment
	IsEdit   bool
	MsgSent  bool
	Error    string
	Form     map[string]string
}

type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		// post bodies are admin-authored rich text, rendered as-is
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}

	t, err := template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: t}, nil
}

// Render writes the named page. The template executes into a buffer first
// so a render error never leaves a half-written page behind.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *Data) {
	if data == nil {
		data = &Data{}
	}
	if data.Form == nil {
		data.Form = map[string]string{}
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, page, data); err != nil {
		log.Printf("failed to render %s: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
