// Package generators turns detected patterns into rendered test suites.
package generators

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/mouse-blink/uft/internal/domain/templates"
	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

// Generator builds a test suite from patterns. Generation never fails:
// a pattern that cannot be rendered becomes a stub case and a kind the
// language has no test shape for is skipped.
type Generator interface {
	Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite
}

// Options tune a single Generate call.
type Options struct {
	// Framework overrides the language default.
	Framework string
	// Source is the analyzed text, used for package names and async hints.
	Source string
	// File is the analyzed path, used for suite and import names.
	File string
}

// Option mutates Options.
type Option func(*Options)

// WithFramework selects the test framework.
func WithFramework(framework string) Option {
	return func(o *Options) { o.Framework = framework }
}

// WithSource passes the analyzed source text.
func WithSource(source string) Option {
	return func(o *Options) { o.Source = source }
}

// WithFile passes the analyzed file path.
func WithFile(file string) Option {
	return func(o *Options) { o.File = file }
}

func newOptions(language string, opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if o.Framework == "" || !SupportsFramework(language, o.Framework) {
		o.Framework = DefaultFramework(language)
	}

	return o
}

// Stem returns the file name without directory and extension.
func (o Options) Stem() string {
	if o.File == "" {
		return "generated"
	}

	base := filepath.Base(o.File)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

var asyncHint = regexp.MustCompile(`\basync\b|\bawait\b|\bPromise\b`)

// HasAsyncHint reports whether source uses async constructs.
func HasAsyncHint(source string) bool {
	return asyncHint.MatchString(source)
}

// buildCtx is what a strategy sees for one function pattern.
type buildCtx struct {
	Pattern m.TestablePattern
	Fn      *m.FunctionPattern
	Samples []Sample
	Options Options
	Async   bool
	// Receiver is the owning type of a Go method.
	Receiver  string
	names     *nameSet
	lits      Literals
	typeTable TypeTable
}

func (c *buildCtx) name() string { return c.Fn.Name }

func (c *buildCtx) expect() ExpectKind {
	return ExpectedFor(c.Fn.ReturnType, c.Fn.Name, c.typeTable)
}

// build runs st and records the inferred expectation on each case.
func (c *buildCtx) build(st Strategy) ([]m.TestCase, error) {
	cases, err := st.Build(c)
	if err != nil {
		return nil, err
	}

	kind := c.expect()

	for i := range cases {
		if cases[i].Expected != nil {
			continue
		}

		if cases[i].Category == m.CategoryErrorHandling {
			cases[i].Expected = map[string]any{"kind": "error"}

			continue
		}

		cases[i].Expected = map[string]any{"kind": string(kind), "value": ExpectedValue(kind)}
	}

	return cases, nil
}

func (c *buildCtx) args() string { return strings.Join(literals(c.Samples), ", ") }

func (c *buildCtx) boundaryArgs() string {
	out := make([]string, 0, len(c.Samples))
	for _, s := range c.Samples {
		out = append(out, BoundaryFor(s.Kind, c.lits))
	}

	return strings.Join(out, ", ")
}

func (c *buildCtx) nullArgs() string {
	out := make([]string, 0, len(c.Samples))
	for range c.Samples {
		out = append(out, c.lits.Null)
	}

	return strings.Join(out, ", ")
}

// Strategy produces test cases for functions whose name it matches.
type Strategy struct {
	Name  string
	Match func(name string) bool
	Build func(ctx *buildCtx) ([]m.TestCase, error)
}

// StrategyTable is an ordered list of strategies with a fallback.
type StrategyTable struct {
	Strategies []Strategy
	Fallback   Strategy
}

// Select returns the first strategy matching name, or the fallback.
func (t StrategyTable) Select(name string) Strategy {
	for _, s := range t.Strategies {
		if s.Match(name) {
			return s
		}
	}

	return t.Fallback
}

// nameHas matches names containing any of the needles, case-insensitively.
func nameHas(needles ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}

		return false
	}
}

func both(a, b func(string) bool) func(string) bool {
	return func(name string) bool { return a(name) && b(name) }
}

// mathOp matches arithmetic helpers such as add, addNumbers or sum_ints.
func mathOp(ops ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(strings.ReplaceAll(name, "_", ""))
		for _, op := range ops {
			switch lower {
			case op, op + "numbers", op + "ints", op + "two":
				return true
			}
		}

		return false
	}
}

var isEmailValidator = both(nameHas("email"), nameHas("valid", "check", "verify"))

// nameSet hands out unique test names within one suite.
type nameSet struct {
	seen map[string]int
}

func newNameSet() *nameSet { return &nameSet{seen: make(map[string]int)} }

func (n *nameSet) unique(name string) string {
	n.seen[name]++
	if c := n.seen[name]; c > 1 {
		return fmt.Sprintf("%s%d", name, c)
	}

	return name
}

func newCase(name, description string, category m.TestCategory, body string) m.TestCase {
	return m.TestCase{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Body:        body,
		Category:    category,
	}
}

// stubCase is the degraded output for a pattern that could not be rendered.
func stubCase(p m.TestablePattern, comment string, err error) m.TestCase {
	logger.Logger.Debugw("falling back to stub test case",
		"pattern", p.Name(),
		"kind", p.Kind,
		"error", err,
	)

	return newCase("not_implemented",
		fmt.Sprintf("Stub for %s %s", p.Kind, p.Name()),
		m.CategoryHappyPath,
		fmt.Sprintf("%s TODO: not implemented: %s", comment, p.Name()),
	)
}

// assemble renders the suite template into RenderedCode. When the suite
// template itself fails the bodies are concatenated.
func assemble(store templates.Store, suite *m.TestSuite, tmpl string, data map[string]any) {
	bodies := make([]string, 0, len(suite.TestCases))
	for _, tc := range suite.TestCases {
		bodies = append(bodies, tc.Body)
	}

	if data == nil {
		data = map[string]any{}
	}

	data["Imports"] = suite.Imports
	data["Name"] = suite.Name
	data["Cases"] = bodies

	code, err := store.Render(tmpl, data)
	if err != nil {
		logger.Logger.Warnw("suite template failed, concatenating cases",
			"template", tmpl,
			"suite", suite.Name,
			"error", err,
		)

		code = strings.Join(append(append([]string{}, suite.Imports...), bodies...), "\n\n") + "\n"
	}

	suite.RenderedCode = code
}

func newSuite(name, language, framework string) m.TestSuite {
	return m.TestSuite{
		ID:             uuid.NewString(),
		Name:           name,
		Language:       language,
		Framework:      framework,
		TestCases:      []m.TestCase{},
		Imports:        []string{},
		TestType:       m.TestTypeUnit,
		CoverageTarget: CoverageTarget(language),
	}
}

// Snake converts camelCase and PascalCase to snake_case.
func Snake(name string) string {
	var sb strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}

			sb.WriteRune(unicode.ToLower(r))

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// Pascal converts snake_case and camelCase to PascalCase.
func Pascal(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(templates.Title(p))
	}

	return sb.String()
}

// identifier squeezes arbitrary text into a lower snake identifier.
func identifier(s string) string {
	var sb strings.Builder

	lastUnderscore := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)

			lastUnderscore = false

			continue
		}

		if !lastUnderscore {
			sb.WriteByte('_')

			lastUnderscore = true
		}
	}

	return strings.Trim(sb.String(), "_")
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true

				break
			}
		}

		if !found {
			list = append(list, item)
		}
	}

	return list
}

// skip drops a pattern kind the generator has no test shape for.
func skip(language string, p m.TestablePattern) ([]m.TestCase, error) {
	logger.Logger.Debugw("skipping pattern without a test shape",
		"language", language,
		"pattern", p.Name(),
		"kind", p.Kind,
	)

	return nil, nil
}

// session is the state shared by all patterns of one Generate call.
type session struct {
	opts  Options
	names *nameSet
	async bool
}

func newSession(language string, opts []Option) *session {
	o := newOptions(language, opts)

	return &session{opts: o, names: newNameSet(), async: HasAsyncHint(o.Source)}
}

func (s *session) function(p m.TestablePattern, lits Literals, types TypeTable) *buildCtx {
	return &buildCtx{
		Pattern:   p,
		Fn:        p.Function,
		Samples:   SamplesFor(p.Function.Parameters, lits),
		Options:   s.opts,
		Async:     s.async,
		names:     s.names,
		lits:      lits,
		typeTable: types,
	}
}

// collect builds cases for every pattern, degrading render failures to stubs.
func collect(patterns []m.TestablePattern, comment string, build func(p m.TestablePattern) ([]m.TestCase, error)) []m.TestCase {
	out := []m.TestCase{}

	for _, p := range patterns {
		cases, err := build(p)
		if err != nil {
			out = append(out, stubCase(p, comment, err))

			continue
		}

		out = append(out, cases...)
	}

	return out
}
