package handlers

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/gorilla/csrf"
)

// PageHandler serves the two HTML pages plus the embedded JS assets.
type PageHandler struct {
	Auth      *SessionAuth
	Templates *TemplateCache
	Assets    fs.FS
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Auth.CurrentUser(r); !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.render(w, r, "index.html", "Index")
}

func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, "login.html", "Login")
}

// JSFile serves an embedded JS asset; content is gated like the pages.
func (h *PageHandler) JSFile(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Auth.CurrentUser(r); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	name := path.Base(r.PathValue("file"))
	content, err := fs.ReadFile(h.Assets, path.Join("js", name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	w.Write(content)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name, title string) {
	tmpl := h.Templates.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Title":     title,
		"CsrfField": csrf.TemplateField(r),
	}
	tmpl.Execute(w, data)
}
