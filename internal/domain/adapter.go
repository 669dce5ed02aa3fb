package domain

import (
	"slices"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/detectors"
	"github.com/mouse-blink/uft/internal/domain/generators"
	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

// LanguageAdapter pairs a detector with a generator for one language.
type LanguageAdapter interface {
	detectors.Detector
	generators.Generator

	Language() string
	// Extensions are lower case and carry no leading dot.
	Extensions() []string
	// Frameworks lists the supported test frameworks, default first.
	Frameworks() []string
	// Dynamic reports whether the adapter was built from a language config.
	Dynamic() bool
	// TestExtension is the file extension configured for dynamic languages.
	TestExtension() string
}

type languageAdapter struct {
	detectors.Detector
	generators.Generator

	language   string
	extensions []string
	frameworks []string
	dynamic    bool
	testExt    string
}

func (a *languageAdapter) Language() string      { return a.language }
func (a *languageAdapter) Extensions() []string  { return slices.Clone(a.extensions) }
func (a *languageAdapter) Frameworks() []string  { return slices.Clone(a.frameworks) }
func (a *languageAdapter) Dynamic() bool         { return a.dynamic }
func (a *languageAdapter) TestExtension() string { return a.testExt }

// builtinAdapters returns the compiled-in languages in registration order.
func builtinAdapters(store templates.Store) []LanguageAdapter {
	builtin := func(language string, d detectors.Detector, g generators.Generator, exts ...string) LanguageAdapter {
		return &languageAdapter{
			Detector:   d,
			Generator:  g,
			language:   language,
			extensions: exts,
			frameworks: generators.Frameworks(language),
		}
	}

	return []LanguageAdapter{
		builtin("javascript", detectors.NewJavaScript(), generators.NewJavaScript(store), "js", "jsx", "ts", "tsx"),
		builtin("python", detectors.NewPython(), generators.NewPython(store), "py"),
		builtin("rust", detectors.NewRust(), generators.NewRust(store), "rs"),
		builtin("go", detectors.NewGo(), generators.NewGo(store), "go"),
		builtin("java", detectors.NewJava(), generators.NewJava(store), "java"),
	}
}

// NewDynamicAdapter builds an adapter from a loaded language config.
func NewDynamicAdapter(cfg m.LanguageConfig) (LanguageAdapter, error) {
	d, err := detectors.NewDynamic(cfg)
	if err != nil {
		return nil, err
	}

	var frameworks []string
	if cfg.Framework != "" {
		frameworks = []string{cfg.Framework}
	}

	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts = append(exts, normalizeExt(ext))
	}

	return &languageAdapter{
		Detector:   d,
		Generator:  generators.NewDynamic(cfg),
		language:   cfg.Name,
		extensions: exts,
		frameworks: frameworks,
		dynamic:    true,
		testExt:    cfg.TestTemplate.FileExtension,
	}, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
