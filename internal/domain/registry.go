package domain

import (
	"sort"

	"github.com/mouse-blink/uft/internal/domain/templates"
	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

// Registry maps languages and file extensions to adapters. It is read-only
// once constructed.
type Registry struct {
	adapters map[string]LanguageAdapter
	byExt    map[string]string
	store    templates.Store
}

// NewRegistry registers the built-in languages and then one dynamic adapter
// per config. A config never replaces a built-in language or claims an
// extension that is already taken; such configs are logged and skipped.
func NewRegistry(store templates.Store, configs ...m.LanguageConfig) *Registry {
	r := &Registry{
		adapters: make(map[string]LanguageAdapter),
		byExt:    make(map[string]string),
		store:    store,
	}

	for _, a := range builtinAdapters(store) {
		r.register(a)
	}

	for _, cfg := range configs {
		if _, taken := r.adapters[cfg.Name]; taken {
			logger.Logger.Warnw("language config shadows a registered language, skipping",
				"language", cfg.Name,
				"origin", cfg.Origin,
			)

			continue
		}

		a, err := NewDynamicAdapter(cfg)
		if err != nil {
			logger.Logger.Warnw("skipping language config",
				"language", cfg.Name,
				"origin", cfg.Origin,
				"error", err,
			)

			continue
		}

		r.register(a)
	}

	return r
}

// Store is the template store shared by the built-in generators.
func (r *Registry) Store() templates.Store { return r.store }

func (r *Registry) register(a LanguageAdapter) {
	r.adapters[a.Language()] = a

	for _, ext := range a.Extensions() {
		if owner, taken := r.byExt[ext]; taken {
			logger.Logger.Warnw("extension already registered",
				"extension", ext,
				"owner", owner,
				"language", a.Language(),
			)

			continue
		}

		r.byExt[ext] = a.Language()
	}
}

// Adapter returns the adapter registered for language.
func (r *Registry) Adapter(language string) (LanguageAdapter, bool) {
	a, ok := r.adapters[language]

	return a, ok
}

// ForExtension returns the adapter for ext, with or without a leading dot.
func (r *Registry) ForExtension(ext string) (LanguageAdapter, bool) {
	language, ok := r.byExt[normalizeExt(ext)]
	if !ok {
		return nil, false
	}

	return r.Adapter(language)
}

// Languages returns the registered language names in sorted order.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Extensions returns every registered extension in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}

	sort.Strings(out)

	return out
}
