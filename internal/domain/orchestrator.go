package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mouse-blink/uft/internal/domain/detectors"
	"github.com/mouse-blink/uft/internal/domain/generators"
	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

// Orchestrator resolves the language of a file and runs its detector and
// generator.
type Orchestrator interface {
	Analyze(path, content string) ([]m.TestablePattern, error)
	Generate(path, content string) (m.TestSuite, error)
	// Integration builds an integration suite. Only javascript is supported.
	Integration(path, content string) (m.TestSuite, error)
	DetectLanguage(path string) (string, error)
	Registry() *Registry
}

// OrchestratorOption configures an orchestrator.
type OrchestratorOption func(*orchestrator)

// WithFrameworks sets per-language framework overrides (language → framework).
func WithFrameworks(frameworks map[string]string) OrchestratorOption {
	return func(o *orchestrator) {
		for lang, fw := range frameworks {
			o.frameworks[lang] = fw
		}
	}
}

type orchestrator struct {
	registry    *Registry
	frameworks  map[string]string
	integration LanguageAdapter
}

const integrationLanguage = "javascript"

// NewOrchestrator constructs an Orchestrator over registry.
func NewOrchestrator(registry *Registry, opts ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		registry:   registry,
		frameworks: make(map[string]string),
		integration: &languageAdapter{
			Detector:   detectors.NewIntegration(),
			Generator:  generators.NewIntegration(registry.Store()),
			language:   integrationLanguage,
			frameworks: generators.Frameworks(integrationLanguage),
		},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *orchestrator) Registry() *Registry { return o.registry }

// DetectLanguage resolves path by extension only. There is no default
// language.
func (o *orchestrator) DetectLanguage(path string) (string, error) {
	a, err := o.adapterFor(path)
	if err != nil {
		return "", err
	}

	return a.Language(), nil
}

func (o *orchestrator) adapterFor(path string) (LanguageAdapter, error) {
	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return nil, errors.WithHintf(
			errors.Wrapf(m.ErrNoExtension, "%s", path),
			"supported extensions: %s", o.extensionList(),
		)
	}

	a, ok := o.registry.ForExtension(ext)
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(m.ErrUnsupportedLanguage, "%s (extension %s)", path, ext),
			"supported extensions: %s", o.extensionList(),
		)
	}

	return a, nil
}

func (o *orchestrator) extensionList() string {
	exts := o.registry.Extensions()
	for i, ext := range exts {
		exts[i] = "." + ext
	}

	return strings.Join(exts, ", ")
}

func (o *orchestrator) Analyze(path, content string) ([]m.TestablePattern, error) {
	a, err := o.adapterFor(path)
	if err != nil {
		return nil, err
	}

	patterns := filterIgnored(path, content, a.Detect(path, content))

	logger.Logger.Debugw("analyzed file",
		"path", path,
		"language", a.Language(),
		"patterns", len(patterns),
	)

	return patterns, nil
}

func (o *orchestrator) Generate(path, content string) (m.TestSuite, error) {
	a, err := o.adapterFor(path)
	if err != nil {
		return m.TestSuite{}, err
	}

	framework, err := o.framework(a)
	if err != nil {
		return m.TestSuite{}, err
	}

	patterns := filterIgnored(path, content, a.Detect(path, content))
	suite := a.Generate(patterns,
		generators.WithFile(path),
		generators.WithSource(content),
		generators.WithFramework(framework),
	)

	logger.Logger.Debugw("generated suite",
		"path", path,
		"language", a.Language(),
		"framework", suite.Framework,
		"patterns", len(patterns),
		"cases", len(suite.TestCases),
	)

	return suite, nil
}

// framework validates the configured override for a's language.
func (o *orchestrator) framework(a LanguageAdapter) (string, error) {
	requested := o.frameworks[a.Language()]
	if requested == "" {
		return "", nil
	}

	if !slices.Contains(a.Frameworks(), requested) {
		return "", errors.WithHintf(
			errors.Wrapf(m.ErrUnknownFramework, "%s for %s", requested, a.Language()),
			"%s supports: %s", a.Language(), strings.Join(a.Frameworks(), ", "),
		)
	}

	return requested, nil
}

func (o *orchestrator) Integration(path, content string) (m.TestSuite, error) {
	a, err := o.adapterFor(path)
	if err != nil {
		return m.TestSuite{}, err
	}

	if a.Language() != integrationLanguage {
		return m.TestSuite{}, errors.WithHint(
			errors.Wrapf(m.ErrUnsupportedLanguage, "integration tests for %s", a.Language()),
			"integration tests are generated for javascript sources only",
		)
	}

	framework, err := o.framework(a)
	if err != nil {
		return m.TestSuite{}, err
	}

	patterns := filterIgnored(path, content, o.integration.Detect(path, content))
	suite := o.integration.Generate(patterns,
		generators.WithFile(path),
		generators.WithSource(content),
		generators.WithFramework(framework),
	)

	logger.Logger.Debugw("generated integration suite",
		"path", path,
		"patterns", len(patterns),
		"cases", len(suite.TestCases),
	)

	return suite, nil
}
