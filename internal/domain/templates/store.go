// Package templates holds named test-code templates and renders them with
// text/template.
package templates

import (
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/uft/internal/model"
)

// Store is a registry of named templates.
type Store interface {
	Register(name, text string) error
	Render(name string, data any) (string, error)
	Has(name string) bool
	Names() []string
}

type store struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewStore returns a store preloaded with the built-in templates.
func NewStore() Store {
	s := NewEmptyStore()

	for name, text := range builtin {
		if err := s.Register(name, text); err != nil {
			panic(err)
		}
	}

	return s
}

// NewEmptyStore returns a store with no templates registered.
func NewEmptyStore() Store {
	return &store{templates: make(map[string]*template.Template)}
}

// Funcs available to every template.
var Funcs = template.FuncMap{
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
	"title":  Title,
	"join":   func(sep string, items []string) string { return strings.Join(items, sep) },
	"indent": Indent,
}

// Register parses text under name, replacing any previous template.
func (s *store) Register(name, text string) error {
	tmpl, err := template.New(name).Funcs(Funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, m.ErrTemplateRender), "parse template %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates[name] = tmpl

	return nil
}

// Render executes the named template. Unknown names yield
// ErrTemplateNotFound; missing data fields yield ErrTemplateRender.
func (s *store) Render(name string, data any) (string, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[name]
	s.mu.RUnlock()

	if !ok {
		return "", errors.Wrapf(m.ErrTemplateNotFound, "%q", name)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(errors.Mark(err, m.ErrTemplateRender), "render template %q", name)
	}

	return sb.String(), nil
}

func (s *store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.templates[name]

	return ok
}

// Names returns registered template names in sorted order.
func (s *store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Title upper-cases the first letter of s.
func Title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Indent prefixes every non-empty line of s with n spaces.
func Indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + line
		}
	}

	return strings.Join(lines, "\n")
}
