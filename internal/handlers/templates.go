package handlers

import (
	"html/template"
	"io/fs"
	"log/slog"
	"path"
	"sync"
)

// TemplateCache holds parsed templates
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
	}
}

// Load parses every page under html/ in fsys, pairing each with the shared
// header and footer partials.
func (tc *TemplateCache) Load(fsys fs.FS) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	pages, err := fs.Glob(fsys, "html/*.html")
	if err != nil {
		return err
	}

	for _, page := range pages {
		name := path.Base(page)
		if name == "header.html" || name == "footer.html" {
			continue
		}
		tmpl, err := template.New(name).ParseFS(fsys, "html/header.html", "html/footer.html", page)
		if err != nil {
			slog.Error("Failed to parse template", "file", page, "error", err)
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("Cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}
