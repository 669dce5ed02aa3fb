package generators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

var pythonLiterals = Literals{
	String: func(s string) string { return "'" + strings.ReplaceAll(s, "'", `\'`) + "'" },
	Int:    strconv.Itoa,
	Float:  formatFloat,
	Bool: func(b bool) string {
		if b {
			return "True"
		}

		return "False"
	},
	List: func(items []int) string { return "[" + joinInts(items) + "]" },
	Null: "None",
}

var pythonTypes = TypeTable{
	"int": ExpectNumber, "float": ExpectNumber, "complex": ExpectNumber, "Decimal": ExpectNumber,
	"bool": ExpectBool,
	"str":  ExpectString,
	"list": ExpectList, "List[*": ExpectList, "list[*": ExpectList, "tuple[*": ExpectList,
	"dict": ExpectObject, "Dict[*": ExpectObject, "dict[*": ExpectObject,
	"None": ExpectNone,
}

// pyDialect spells assertions for one python framework.
type pyDialect struct {
	suite      string
	module     string
	async      []string
	eq         func(actual, expected string) string
	isTrue     func(expr string) string
	isFalse    func(expr string) string
	notNone    func(expr string) string
	isInstance func(expr, class string) string
	raises     func(exc string) string
}

var pyDialects = map[string]pyDialect{
	"pytest": {
		suite:      "pytest/suite",
		module:     "import pytest",
		async:      []string{"@pytest.mark.asyncio"},
		eq:         func(a, e string) string { return fmt.Sprintf("assert %s == %s", a, e) },
		isTrue:     func(x string) string { return fmt.Sprintf("assert %s is True", x) },
		isFalse:    func(x string) string { return fmt.Sprintf("assert %s is False", x) },
		notNone:    func(x string) string { return fmt.Sprintf("assert %s is not None", x) },
		isInstance: func(x, c string) string { return fmt.Sprintf("assert isinstance(%s, %s)", x, c) },
		raises:     func(exc string) string { return fmt.Sprintf("with pytest.raises(%s):", exc) },
	},
	"unittest": {
		suite:      "unittest/suite",
		module:     "import unittest",
		eq:         func(a, e string) string { return fmt.Sprintf("self.assertEqual(%s, %s)", a, e) },
		isTrue:     func(x string) string { return fmt.Sprintf("self.assertTrue(%s)", x) },
		isFalse:    func(x string) string { return fmt.Sprintf("self.assertFalse(%s)", x) },
		notNone:    func(x string) string { return fmt.Sprintf("self.assertIsNotNone(%s)", x) },
		isInstance: func(x, c string) string { return fmt.Sprintf("self.assertIsInstance(%s, %s)", x, c) },
		raises:     func(exc string) string { return fmt.Sprintf("with self.assertRaises(%s):", exc) },
	},
}

type pythonGenerator struct {
	store templates.Store
	table StrategyTable
}

// NewPython returns the generator for pytest and unittest suites.
func NewPython(store templates.Store) Generator {
	g := &pythonGenerator{store: store}
	g.table = StrategyTable{
		Strategies: []Strategy{
			{Name: "initialization", Match: func(name string) bool { return name == "__init__" }, Build: g.initialization},
			{Name: "area", Match: nameHas("area"), Build: g.area},
			{Name: "email_validation", Match: isEmailValidator, Build: g.email},
		},
		Fallback: Strategy{Name: "generic", Build: g.generic},
	}

	return g
}

func (g *pythonGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	s := newSession("python", opts)
	d := pyDialects[s.opts.Framework]
	suite := newSuite("Test"+Pascal(s.opts.Stem()), "python", s.opts.Framework)

	usesRegex := false

	suite.TestCases = collect(patterns, "#", func(p m.TestablePattern) ([]m.TestCase, error) {
		switch p.Kind {
		case m.PatternFunction:
			c := s.function(p, pythonLiterals, pythonTypes)

			return c.build(g.table.Select(p.Function.Name))
		case m.PatternClass:
			return g.classCase(p, s.names, d)
		case m.PatternException:
			return []m.TestCase{g.exceptionCase(p, s.names, d)}, nil
		case m.PatternFormValidation:
			usesRegex = true

			return []m.TestCase{g.formCase(p, s.names, d)}, nil
		}

		return skip("python", p)
	})

	suite.Imports = []string{d.module}
	if usesRegex {
		suite.Imports = append(suite.Imports, "import re")
	}

	suite.Imports = append(suite.Imports, fmt.Sprintf("from %s import *", s.opts.Stem()))

	base := "unittest.TestCase"
	if s.async && s.opts.Framework == "unittest" {
		base = "unittest.IsolatedAsyncioTestCase"
	}

	assemble(g.store, &suite, d.suite, map[string]any{"Base": base})

	return suite
}

func (g *pythonGenerator) dialect(c *buildCtx) pyDialect {
	return pyDialects[c.Options.Framework]
}

// pyTest renders a test method. Lines are indented one level.
func pyTest(name, doc string, lines ...string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "def %s(self):\n    \"\"\"%s\"\"\"", name, doc)

	for _, body := range lines {
		for _, line := range strings.Split(body, "\n") {
			sb.WriteString("\n    " + line)
		}
	}

	return sb.String()
}

// target is how a function is reached from a test: methods are called on
// a fresh instance of their class.
// target calls a def through its class only when the def is indented.
func (g *pythonGenerator) target(c *buildCtx) string {
	if c.Pattern.Context.ClassName != "" && indented(c.Options.Source, c.Pattern.Location.Line) {
		return fmt.Sprintf("%s().%s", c.Pattern.Context.ClassName, c.name())
	}

	return c.name()
}

// indented reports whether the 1-based line of source starts with whitespace.
func indented(source string, line int) bool {
	if line < 1 {
		return false
	}

	lines := strings.SplitN(source, "\n", line+1)
	if len(lines) < line {
		return false
	}

	text := lines[line-1]

	return text != strings.TrimLeft(text, " \t")
}

func (g *pythonGenerator) literal(c *buildCtx, name, doc string, category m.TestCategory, lines ...string) m.TestCase {
	name = c.names.unique(name)

	return newCase(name, doc, category, pyTest(name, doc, lines...))
}

func (g *pythonGenerator) initialization(c *buildCtx) ([]m.TestCase, error) {
	class := c.Pattern.Context.ClassName
	if class == "" {
		return g.generic(c)
	}

	d := g.dialect(c)
	tc := g.literal(c, "test_"+Snake(class)+"_initialization", "Initialization with sample arguments", m.CategoryHappyPath,
		fmt.Sprintf("instance = %s(%s)", class, c.args()),
		d.notNone("instance"),
		d.isInstance("instance", class),
	)
	tc.Input = sampleValues(c.Samples)

	return []m.TestCase{tc}, nil
}

func (g *pythonGenerator) area(c *buildCtx) ([]m.TestCase, error) {
	if len(c.Fn.Parameters) != 2 {
		return g.generic(c)
	}

	d := g.dialect(c)
	fn := g.target(c)
	base := "test_" + Snake(c.name())

	return []m.TestCase{
		g.literal(c, base+"_positive_values", "Positive dimensions", m.CategoryHappyPath,
			fmt.Sprintf("result = %s(5, 3)", fn), d.eq("result", "15")),
		g.literal(c, base+"_edge_cases", "Zero dimensions", m.CategoryEdgeCase,
			d.eq(fmt.Sprintf("%s(0, 5)", fn), "0"), d.eq(fmt.Sprintf("%s(5, 0)", fn), "0")),
		g.literal(c, base+"_negative_values", "Negative dimensions raise", m.CategoryErrorHandling,
			d.raises("ValueError"), fmt.Sprintf("    %s(-1, 5)", fn)),
		g.literal(c, base+"_type_errors", "Non-numeric input raises", m.CategoryErrorHandling,
			d.raises("TypeError"), fmt.Sprintf("    %s('5', 3)", fn)),
	}, nil
}

func (g *pythonGenerator) email(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	fn := g.target(c)
	base := "test_" + Snake(c.name())

	return []m.TestCase{
		g.literal(c, base+"_valid", "Accepts well-formed addresses", m.CategoryHappyPath,
			d.isTrue(fmt.Sprintf("%s('test@example.com')", fn)),
			d.isTrue(fmt.Sprintf("%s('user.name@domain.co.uk')", fn))),
		g.literal(c, base+"_invalid", "Rejects malformed addresses", m.CategoryEdgeCase,
			"for value in ['invalid-email', 'user@', '@domain.com', '']:",
			"    "+d.isFalse(fmt.Sprintf("%s(value)", fn))),
		g.literal(c, base+"_error_handling", "Rejects non-string input", m.CategoryErrorHandling,
			d.raises("TypeError"), fmt.Sprintf("    %s(None)", fn)),
	}, nil
}

func (g *pythonGenerator) generic(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	fn := g.target(c)
	base := "test_" + Snake(c.name())
	call := fmt.Sprintf("%s(%s)", fn, c.args())

	name := c.names.unique(base + "_basic")

	body, err := g.store.Render("pytest/function", map[string]any{
		"Decorators":  []string{},
		"TestName":    name,
		"Description": "Basic functionality",
		"Call":        call,
		"Assert":      g.assertion(c, d),
	})
	if err != nil {
		return nil, err
	}

	basic := newCase(name, "Basic functionality", m.CategoryHappyPath, body)
	basic.Input = sampleValues(c.Samples)
	out := []m.TestCase{basic}

	if len(c.Samples) > 0 {
		name = c.names.unique(base + "_boundary")

		body, err = g.store.Render("pytest/function", map[string]any{
			"Decorators":  []string{},
			"TestName":    name,
			"Description": "Zero and empty inputs",
			"Call":        fmt.Sprintf("%s(%s)", fn, c.boundaryArgs()),
			"Assert":      "# TODO: verify behaviour at the boundary",
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Zero and empty inputs", m.CategoryBoundary, body))
	}

	out = append(out, g.literal(c, base+"_error_handling", "Invalid input raises", m.CategoryErrorHandling,
		d.raises("Exception"), fmt.Sprintf("    %s(%s)", fn, c.nullArgs())))

	if c.Async {
		name = c.names.unique(base + "_async")

		body, err = g.store.Render("pytest/async", map[string]any{
			"Decorators":  d.async,
			"TestName":    name,
			"Description": "Awaits the coroutine",
			"Call":        call,
			"Assert":      d.notNone("result"),
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Awaits the coroutine", m.CategoryHappyPath, body))
	}

	return out, nil
}

func (g *pythonGenerator) assertion(c *buildCtx, d pyDialect) string {
	switch kind := c.expect(); kind {
	case ExpectBool:
		return d.isTrue("result")
	case ExpectNumber, ExpectString, ExpectList:
		return d.eq("result", ExpectedLiteral(kind, pythonLiterals)) + "  # TODO: set the expected value"
	case ExpectObject:
		return d.isInstance("result", "dict")
	case ExpectNone:
		return d.eq("result", "None")
	}

	return d.notNone("result") + "  # TODO: assert on the result"
}

func (g *pythonGenerator) classCase(p m.TestablePattern, names *nameSet, d pyDialect) ([]m.TestCase, error) {
	class := p.Class.Name
	name := names.unique("test_" + Snake(class) + "_creation")

	body, err := g.store.Render("pytest/class", map[string]any{
		"TestName":    name,
		"Description": fmt.Sprintf("Creates a %s instance", class),
		"Name":        class,
		"Assert":      d.isInstance("instance", class),
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Class creation", m.CategoryHappyPath, body)}, nil
}

func (g *pythonGenerator) exceptionCase(p m.TestablePattern, names *nameSet, d pyDialect) m.TestCase {
	exc := p.Class.Name
	name := names.unique("test_raises_" + Snake(exc))
	doc := fmt.Sprintf("Raises %s", exc)

	return newCase(name, doc, m.CategoryErrorHandling, pyTest(name, doc,
		d.raises(exc),
		fmt.Sprintf("    pass  # TODO: call the code path that raises %s", exc),
	))
}

func (g *pythonGenerator) formCase(p m.TestablePattern, names *nameSet, d pyDialect) m.TestCase {
	field := p.Form.Name
	name := names.unique("test_" + Snake(field) + "_email_validation")
	doc := fmt.Sprintf("Validates the %s email field", field)

	lines := []string{
		`pattern = re.compile(r'^[^@\s]+@[^@\s]+\.[^@\s]+$')`,
		d.isTrue("bool(pattern.match('test@example.com'))"),
		d.isFalse("bool(pattern.match('invalid-email'))"),
	}
	if p.Form.Required {
		lines = append(lines, d.isFalse("bool(pattern.match(''))")+"  # required field")
	}

	tc := newCase(name, doc, m.CategoryHappyPath, pyTest(name, doc, lines...))
	tc.Input = map[string]any{field: "test@example.com"}

	return tc
}
