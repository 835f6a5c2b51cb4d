package templates

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// engine wraps a pongo2 template set over an fs.FS, caching parsed templates
// by name. Rendering the embedded bundle is the only use, so the surface
// stays deliberately small.
type engine struct {
	mu    sync.Mutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

func newEngine(fsys fs.FS) *engine {
	return &engine{
		set:   pongo2.NewSet("pagegen", pongo2.NewFSLoader(fsys)),
		cache: make(map[string]*pongo2.Template),
	}
}

func (e *engine) render(name string, ctx pongo2.Context) (string, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("templates: execute %q: %w", name, err)
	}
	return out, nil
}

func (e *engine) template(name string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("templates: load %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}
