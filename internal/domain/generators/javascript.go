package generators

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

var jsLiterals = Literals{
	String: func(s string) string { return "'" + strings.ReplaceAll(s, "'", `\'`) + "'" },
	Int:    strconv.Itoa,
	Float:  formatFloat,
	Bool:   strconv.FormatBool,
	List:   func(items []int) string { return "[" + joinInts(items) + "]" },
	Null:   "null",
}

var jsTypes = TypeTable{
	"number":  ExpectNumber,
	"bigint":  ExpectNumber,
	"boolean": ExpectBool,
	"string":  ExpectString,
	"Array<*": ExpectList,
	"object":  ExpectObject,
	"void":    ExpectNone,
}

// jsDialect spells tests for one javascript framework.
type jsDialect struct {
	it       string
	header   []string
	eq       func(actual, expected string) string
	is       func(actual, expected string) string
	defined  func(expr string) string
	instance func(expr, class string) string
	throws   func(call string) string
	rejects  func(call string) string
}

var jsDialects = map[string]jsDialect{
	"jest": {
		it:       "test",
		eq:       func(a, e string) string { return fmt.Sprintf("expect(%s).toEqual(%s);", a, e) },
		is:       func(a, e string) string { return fmt.Sprintf("expect(%s).toBe(%s);", a, e) },
		defined:  func(x string) string { return fmt.Sprintf("expect(%s).toBeDefined();", x) },
		instance: func(x, c string) string { return fmt.Sprintf("expect(%s).toBeInstanceOf(%s);", x, c) },
		throws:   func(call string) string { return fmt.Sprintf("expect(() => %s).toThrow();", call) },
		rejects:  func(call string) string { return fmt.Sprintf("await expect(%s).rejects.toThrow();", call) },
	},
	"vitest": {
		it:       "test",
		header:   []string{"import { describe, test, expect } from 'vitest';"},
		eq:       func(a, e string) string { return fmt.Sprintf("expect(%s).toEqual(%s);", a, e) },
		is:       func(a, e string) string { return fmt.Sprintf("expect(%s).toBe(%s);", a, e) },
		defined:  func(x string) string { return fmt.Sprintf("expect(%s).toBeDefined();", x) },
		instance: func(x, c string) string { return fmt.Sprintf("expect(%s).toBeInstanceOf(%s);", x, c) },
		throws:   func(call string) string { return fmt.Sprintf("expect(() => %s).toThrow();", call) },
		rejects:  func(call string) string { return fmt.Sprintf("await expect(%s).rejects.toThrow();", call) },
	},
	"mocha": {
		it:       "it",
		header:   []string{"const { expect } = require('chai');"},
		eq:       func(a, e string) string { return fmt.Sprintf("expect(%s).to.deep.equal(%s);", a, e) },
		is:       func(a, e string) string { return fmt.Sprintf("expect(%s).to.equal(%s);", a, e) },
		defined:  func(x string) string { return fmt.Sprintf("expect(%s).to.not.be.undefined;", x) },
		instance: func(x, c string) string { return fmt.Sprintf("expect(%s).to.be.instanceOf(%s);", x, c) },
		throws:   func(call string) string { return fmt.Sprintf("expect(() => %s).to.throw();", call) },
		rejects: func(call string) string {
			return fmt.Sprintf("let failed = false;\ntry {\n  await %s;\n} catch (err) {\n  failed = true;\n}\nexpect(failed).to.equal(true);", call)
		},
	},
}

type javascriptGenerator struct {
	store templates.Store
	table StrategyTable
}

// NewJavaScript returns the generator for jest, mocha and vitest suites.
func NewJavaScript(store templates.Store) Generator {
	g := &javascriptGenerator{store: store}
	g.table = StrategyTable{
		Strategies: []Strategy{
			{Name: "math", Match: mathOp("add", "sum"), Build: g.math},
			{Name: "email_validation", Match: isEmailValidator, Build: g.email},
			{Name: "async", Match: isAsyncName, Build: g.async},
		},
		Fallback: Strategy{Name: "generic", Build: g.generic},
	}

	return g
}

func isAsyncName(name string) bool {
	return hasWordPrefix(name, "fetch") || hasWordPrefix(name, "load") || strings.HasSuffix(name, "Async")
}

func (g *javascriptGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	s := newSession("javascript", opts)
	d := jsDialects[s.opts.Framework]
	suite := newSuite(s.opts.Stem(), "javascript", s.opts.Framework)

	var exported []string

	suite.TestCases = collect(patterns, "//", func(p m.TestablePattern) ([]m.TestCase, error) {
		switch p.Kind {
		case m.PatternFunction:
			exported = appendUnique(exported, p.Function.Name)
			c := s.function(p, jsLiterals, jsTypes)

			return c.build(g.table.Select(p.Function.Name))
		case m.PatternClass:
			exported = appendUnique(exported, p.Class.Name)

			return g.classCase(p, s.names, d)
		case m.PatternFormValidation:
			return g.formCases(p, s.names, d), nil
		}

		return skip("javascript", p)
	})

	suite.Imports = append(append([]string{}, d.header...), jsImport(s.opts, exported)...)

	assemble(g.store, &suite, "jest/suite", nil)

	return suite
}

// jsImport pulls the tested names from the source module. TypeScript and
// vitest use ES modules, everything else CommonJS.
func jsImport(o Options, names []string) []string {
	if len(names) == 0 {
		return nil
	}

	module := "./" + o.Stem()
	list := strings.Join(names, ", ")

	switch ext := filepath.Ext(o.File); {
	case ext == ".ts" || ext == ".tsx" || ext == ".mjs" || o.Framework == "vitest":
		return []string{fmt.Sprintf("import { %s } from '%s';", list, module)}
	default:
		return []string{fmt.Sprintf("const { %s } = require('%s');", list, module)}
	}
}

func (g *javascriptGenerator) dialect(c *buildCtx) jsDialect {
	return jsDialects[c.Options.Framework]
}

func jsTest(it, name string, async bool, body string) string {
	arrow := "() =>"
	if async {
		arrow = "async () =>"
	}

	return fmt.Sprintf("%s('%s', %s {\n%s\n});", it, name, arrow, templates.Indent(2, body))
}

func (g *javascriptGenerator) literal(c *buildCtx, name, description string, category m.TestCategory, async bool, lines ...string) m.TestCase {
	name = c.names.unique(name)

	return newCase(name, description, category, jsTest(g.dialect(c).it, name, async, strings.Join(lines, "\n")))
}

func (g *javascriptGenerator) math(c *buildCtx) ([]m.TestCase, error) {
	if len(c.Fn.Parameters) != 2 {
		return g.generic(c)
	}

	d := g.dialect(c)
	fn := c.name()

	return []m.TestCase{
		g.literal(c, fn+" adds positive numbers", "Adds positive numbers", m.CategoryHappyPath, false,
			d.is(fmt.Sprintf("%s(2, 3)", fn), "5")),
		g.literal(c, fn+" adds negative numbers", "Adds negative numbers", m.CategoryEdgeCase, false,
			d.is(fmt.Sprintf("%s(-2, -3)", fn), "-5")),
		g.literal(c, fn+" handles zero", "Adds zero", m.CategoryBoundary, false,
			d.is(fmt.Sprintf("%s(0, 0)", fn), "0")),
	}, nil
}

func (g *javascriptGenerator) email(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	fn := c.name()

	return []m.TestCase{
		g.literal(c, fn+" accepts valid emails", "Accepts well-formed addresses", m.CategoryHappyPath, false,
			d.is(fmt.Sprintf("%s('test@example.com')", fn), "true"),
			d.is(fmt.Sprintf("%s('user.name@domain.co.uk')", fn), "true")),
		g.literal(c, fn+" rejects invalid emails", "Rejects malformed addresses", m.CategoryEdgeCase, false,
			"['invalid-email', 'user@', '@domain.com', ''].forEach((value) => {",
			"  "+d.is(fmt.Sprintf("%s(value)", fn), "false"),
			"});"),
	}, nil
}

func (g *javascriptGenerator) async(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	fn := c.name()
	call := fmt.Sprintf("%s(%s)", fn, c.args())

	name := c.names.unique(fn + " resolves")

	body, err := g.store.Render("jest/async", map[string]any{
		"It":          d.it,
		"TestName":    name,
		"Description": "Resolves with sample input",
		"Call":        call,
		"Assert":      d.defined("result"),
	})
	if err != nil {
		return nil, err
	}

	resolves := newCase(name, "Resolves with sample input", m.CategoryHappyPath, body)
	resolves.Input = sampleValues(c.Samples)

	rejects := g.literal(c, fn+" rejects on failure", "Rejects when the dependency fails", m.CategoryErrorHandling, true,
		"// TODO: make the underlying request fail",
		d.rejects(fmt.Sprintf("%s(%s)", fn, c.nullArgs())))

	return []m.TestCase{resolves, rejects}, nil
}

func (g *javascriptGenerator) generic(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	fn := c.name()
	call := fmt.Sprintf("%s(%s)", fn, c.args())

	name := c.names.unique(fn + " basic functionality")

	body, err := g.store.Render("jest/function", map[string]any{
		"It":          d.it,
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
		name = c.names.unique(fn + " boundary values")

		body, err = g.store.Render("jest/function", map[string]any{
			"It":          d.it,
			"TestName":    name,
			"Description": "Zero and empty inputs",
			"Call":        fmt.Sprintf("%s(%s)", fn, c.boundaryArgs()),
			"Assert":      "// TODO: verify behaviour at the boundary",
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Zero and empty inputs", m.CategoryBoundary, body))
	}

	out = append(out, g.literal(c, fn+" error handling", "Invalid input", m.CategoryErrorHandling, false,
		"// TODO: confirm the function rejects null input",
		d.throws(fmt.Sprintf("%s(%s)", fn, c.nullArgs()))))

	if c.Async {
		name = c.names.unique(fn + " async behaviour")

		body, err = g.store.Render("jest/async", map[string]any{
			"It":          d.it,
			"TestName":    name,
			"Description": "Awaits the result",
			"Call":        call,
			"Assert":      d.defined("result"),
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Awaits the result", m.CategoryHappyPath, body))
	}

	return out, nil
}

func (g *javascriptGenerator) assertion(c *buildCtx, d jsDialect) string {
	switch kind := c.expect(); kind {
	case ExpectBool:
		return d.is("result", "true")
	case ExpectNumber, ExpectString, ExpectList:
		return d.eq("result", ExpectedLiteral(kind, jsLiterals)) + " // TODO: set the expected value"
	case ExpectNone:
		return d.is("result", "undefined")
	}

	return d.defined("result") + " // TODO: assert on the result"
}

func (g *javascriptGenerator) classCase(p m.TestablePattern, names *nameSet, d jsDialect) ([]m.TestCase, error) {
	class := p.Class.Name
	name := names.unique(class + " can be instantiated")

	body, err := g.store.Render("jest/class", map[string]any{
		"It":          d.it,
		"TestName":    name,
		"Description": fmt.Sprintf("Creates a %s instance", class),
		"Name":        class,
		"Assert":      d.instance("instance", class),
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Class creation", m.CategoryHappyPath, body)}, nil
}

const jsEmailPattern = `const pattern = /^[^\s@]+@[^\s@]+\.[^\s@]+$/;`

func (g *javascriptGenerator) formCases(p m.TestablePattern, names *nameSet, d jsDialect) []m.TestCase {
	field := p.Form.Name

	validName := names.unique(field + " accepts a valid email")
	valid := newCase(validName, "Valid email address", m.CategoryHappyPath, jsTest(d.it, validName, false, strings.Join([]string{
		jsEmailPattern,
		d.is("pattern.test('test@example.com')", "true"),
	}, "\n")))
	valid.Input = map[string]any{field: "test@example.com"}

	invalidLines := []string{
		jsEmailPattern,
		d.is("pattern.test('invalid-email')", "false"),
		d.is("pattern.test('user@')", "false"),
	}
	if p.Form.Required {
		invalidLines = append(invalidLines, d.is("pattern.test('')", "false")+" // required")
	}

	invalidName := names.unique(field + " rejects an invalid email")
	invalid := newCase(invalidName, "Invalid email address", m.CategoryErrorHandling,
		jsTest(d.it, invalidName, false, strings.Join(invalidLines, "\n")))
	invalid.Input = map[string]any{field: "invalid-email"}

	return []m.TestCase{valid, invalid}
}
