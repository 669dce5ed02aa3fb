package generators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

type dynamicGenerator struct {
	cfg m.LanguageConfig
}

// NewDynamic returns a generator driven by a language config's
// test_template. Placeholders use the {{KEY}} form.
func NewDynamic(cfg m.LanguageConfig) Generator {
	return &dynamicGenerator{cfg: cfg}
}

func (g *dynamicGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	framework := g.cfg.Framework
	if o.Framework != "" {
		framework = o.Framework
	}

	class := templates.Title(o.Stem())
	for _, p := range patterns {
		if p.Kind == m.PatternClass && p.Class != nil {
			class = p.Class.Name

			break
		}
	}

	suite := newSuite(class+"Test", g.cfg.Name, framework)
	suite.CoverageTarget = defaultCoverage
	suite.Imports = append(suite.Imports, g.cfg.Imports...)

	names := newNameSet()

	for _, p := range patterns {
		name := names.unique("test" + templates.Title(p.Name()))
		tc := newCase(name, g.describe(p), m.CategoryHappyPath, "// TODO: Implement test logic")
		suite.TestCases = append(suite.TestCases, tc)
	}

	suite.RenderedCode = g.render(suite, patterns)

	return suite
}

func (g *dynamicGenerator) describe(p m.TestablePattern) string {
	switch p.Kind {
	case m.PatternFunction, m.PatternConstructor:
		if g.cfg.Name == "go" || g.cfg.Name == "rust" {
			return fmt.Sprintf("Test for function %s", p.Name())
		}

		return fmt.Sprintf("Test for method %s", p.Name())
	}

	return fmt.Sprintf("Test for %s %s", p.Kind, p.Name())
}

// render is setup, one test_function per case, then teardown.
func (g *dynamicGenerator) render(suite m.TestSuite, patterns []m.TestablePattern) string {
	tmpl := g.cfg.TestTemplate
	parts := make([]string, 0, len(suite.TestCases)+2)

	if tmpl.Setup != "" {
		parts = append(parts, fill(tmpl.Setup, tmpl.Placeholders, map[string]string{
			"CLASS_NAME": suite.Name,
		}))
	}

	for i, tc := range suite.TestCases {
		parts = append(parts, fill(tmpl.TestFunction, tmpl.Placeholders, map[string]string{
			"TEST_NAME":        tc.Name,
			"TEST_DESCRIPTION": tc.Description,
			"FUNCTION_NAME":    patterns[i].Name(),
			"CLASS_NAME":       suite.Name,
		}))
	}

	if tmpl.Teardown != "" {
		parts = append(parts, fill(tmpl.Teardown, tmpl.Placeholders, nil))
	}

	return strings.Join(parts, "\n")
}

// fill replaces {{KEY}} placeholders. Per-case values win over config ones.
func fill(text string, config, values map[string]string) string {
	merged := make(map[string]string, len(config)+len(values))
	for k, v := range config {
		merged[k] = v
	}

	for k, v := range values {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", merged[k])
	}

	return strings.NewReplacer(pairs...).Replace(text)
}
