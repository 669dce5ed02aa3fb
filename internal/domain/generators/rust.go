package generators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

var rustLiterals = Literals{
	String: strconv.Quote,
	Int:    strconv.Itoa,
	Float:  formatFloat,
	Bool:   strconv.FormatBool,
	List:   func(items []int) string { return "vec![" + joinInts(items) + "]" },
	Null:   "None",
}

var rustTypes = TypeTable{
	"i8": ExpectNumber, "i16": ExpectNumber, "i32": ExpectNumber, "i64": ExpectNumber, "i128": ExpectNumber,
	"u8": ExpectNumber, "u16": ExpectNumber, "u32": ExpectNumber, "u64": ExpectNumber, "u128": ExpectNumber,
	"isize": ExpectNumber, "usize": ExpectNumber,
	"f32": ExpectNumber, "f64": ExpectNumber,
	"bool":   ExpectBool,
	"String": ExpectString, "&str": ExpectString, "&'static str": ExpectString,
	"Vec<*": ExpectList,
	"()":    ExpectNone,
}

type rustGenerator struct {
	store templates.Store
	table StrategyTable
}

// NewRust returns the generator for cargo test suites.
func NewRust(store templates.Store) Generator {
	g := &rustGenerator{store: store}
	g.table = StrategyTable{
		Strategies: []Strategy{
			{Name: "math_add", Match: mathOp("add", "sum"), Build: g.addition},
			{Name: "math_multiply", Match: mathOp("multiply", "mul", "product"), Build: g.multiplication},
			{Name: "math_divide", Match: mathOp("divide", "div"), Build: g.division},
			{Name: "email_validation", Match: isEmailValidator, Build: g.email},
			{Name: "fibonacci", Match: nameHas("fibonacci"), Build: g.fibonacci},
			{Name: "main", Match: func(name string) bool { return name == "main" }, Build: g.main},
		},
		Fallback: Strategy{Name: "generic", Build: g.generic},
	}

	return g
}

func (g *rustGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	s := newSession("rust", opts)
	suite := newSuite("test_"+Snake(s.opts.Stem()), "rust", s.opts.Framework)

	suite.TestCases = collect(patterns, "//", func(p m.TestablePattern) ([]m.TestCase, error) {
		switch p.Kind {
		case m.PatternFunction:
			c := s.function(p, rustLiterals, rustTypes)

			return c.build(g.table.Select(p.Function.Name))
		case m.PatternClass:
			return g.structCase(p, s.names)
		case m.PatternInterface:
			return []m.TestCase{g.traitCase(p, s.names)}, nil
		}

		return skip("rust", p)
	})

	assemble(g.store, &suite, "cargo/suite", nil)

	return suite
}

func rustTest(name, body string, attrs ...string) string {
	var sb strings.Builder

	sb.WriteString("#[test]\n")

	for _, a := range attrs {
		sb.WriteString(a + "\n")
	}

	fmt.Fprintf(&sb, "fn %s() {\n", name)

	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			sb.WriteString("\n")

			continue
		}

		sb.WriteString("    " + line + "\n")
	}

	sb.WriteString("}")

	return sb.String()
}

// binary is the two-argument precondition of the arithmetic strategies.
func (g *rustGenerator) binary(c *buildCtx, build func(base string) []m.TestCase) ([]m.TestCase, error) {
	if len(c.Fn.Parameters) != 2 {
		return g.generic(c)
	}

	return build("test_" + Snake(c.name())), nil
}

func (g *rustGenerator) addition(c *buildCtx) ([]m.TestCase, error) {
	fn := c.name()

	return g.binary(c, func(base string) []m.TestCase {
		return []m.TestCase{
			g.literal(c, base+"_positive_numbers", "Adds positive numbers", m.CategoryHappyPath,
				fmt.Sprintf("assert_eq!(%s(2, 3), 5);", fn)),
			g.literal(c, base+"_negative_numbers", "Adds negative numbers", m.CategoryEdgeCase,
				fmt.Sprintf("assert_eq!(%s(-2, -3), -5);", fn)),
			g.literal(c, base+"_boundary_values", "Adds at the integer limits", m.CategoryBoundary,
				fmt.Sprintf("assert_eq!(%[1]s(i32::MAX, 0), i32::MAX);\nassert_eq!(%[1]s(i32::MIN, 0), i32::MIN);", fn)),
		}
	})
}

func (g *rustGenerator) multiplication(c *buildCtx) ([]m.TestCase, error) {
	fn := c.name()

	return g.binary(c, func(base string) []m.TestCase {
		return []m.TestCase{
			g.literal(c, base+"_basic", "Multiplies two numbers", m.CategoryHappyPath,
				fmt.Sprintf("assert_eq!(%s(3, 4), 12);", fn)),
			g.literal(c, base+"_by_zero", "Multiplies by zero", m.CategoryEdgeCase,
				fmt.Sprintf("assert_eq!(%s(5, 0), 0);", fn)),
		}
	})
}

func (g *rustGenerator) division(c *buildCtx) ([]m.TestCase, error) {
	fn := c.name()

	return g.binary(c, func(base string) []m.TestCase {
		return []m.TestCase{
			g.literal(c, base+"_basic", "Divides two numbers", m.CategoryHappyPath,
				fmt.Sprintf("assert_eq!(%s(10, 2), 5);", fn)),
			g.literal(c, base+"_division_by_zero", "Panics on division by zero", m.CategoryErrorHandling,
				fmt.Sprintf("%s(10, 0);", fn), "#[should_panic]"),
		}
	})
}

func (g *rustGenerator) email(c *buildCtx) ([]m.TestCase, error) {
	fn := c.name()
	base := "test_" + Snake(fn)

	return []m.TestCase{
		g.literal(c, base+"_valid", "Accepts a well-formed address", m.CategoryHappyPath,
			fmt.Sprintf("assert!(%s(%q));", fn, "test@example.com")),
		g.literal(c, base+"_invalid", "Rejects malformed addresses", m.CategoryErrorHandling,
			fmt.Sprintf("assert!(!%[1]s(%[2]q));\nassert!(!%[1]s(%[3]q));\nassert!(!%[1]s(%[4]q));",
				fn, "invalid-email", "user@", "@domain.com")),
		g.literal(c, base+"_empty", "Rejects the empty string", m.CategoryBoundary,
			fmt.Sprintf("assert!(!%s(\"\"));", fn)),
	}, nil
}

func (g *rustGenerator) fibonacci(c *buildCtx) ([]m.TestCase, error) {
	if len(c.Fn.Parameters) != 1 {
		return g.generic(c)
	}

	fn := c.name()
	base := "test_" + Snake(fn)

	return []m.TestCase{
		g.literal(c, base+"_known_values", "Matches known sequence values", m.CategoryHappyPath,
			fmt.Sprintf("assert_eq!(%[1]s(0), 0);\nassert_eq!(%[1]s(1), 1);\nassert_eq!(%[1]s(10), 55);", fn)),
		g.literal(c, base+"_performance", "Completes within a second", m.CategoryPerformance,
			fmt.Sprintf("let start = std::time::Instant::now();\nlet _ = %s(20);\nassert!(start.elapsed() < std::time::Duration::from_secs(1));", fn)),
	}, nil
}

func (g *rustGenerator) main(c *buildCtx) ([]m.TestCase, error) {
	return []m.TestCase{
		g.literal(c, "test_main_execution", "Runs main without panicking", m.CategoryHappyPath, "main();"),
	}, nil
}

func (g *rustGenerator) literal(c *buildCtx, name, description string, category m.TestCategory, body string, attrs ...string) m.TestCase {
	name = c.names.unique(name)

	return newCase(name, description, category, rustTest(name, body, attrs...))
}

func (g *rustGenerator) generic(c *buildCtx) ([]m.TestCase, error) {
	fn := c.name()
	base := "test_" + Snake(fn)
	call := fmt.Sprintf("%s(%s)", fn, c.args())

	name := c.names.unique(base + "_basic_functionality")

	body, err := g.store.Render("cargo/function", map[string]any{
		"TestName":    name,
		"Description": "Basic functionality",
		"Call":        call,
		"Assert":      rustAssert(c.expect()),
	})
	if err != nil {
		return nil, err
	}

	basic := newCase(name, "Basic functionality", m.CategoryHappyPath, body)
	basic.Input = sampleValues(c.Samples)
	out := []m.TestCase{basic}

	if len(c.Samples) > 0 {
		name = c.names.unique(base + "_boundary_values")

		body, err = g.store.Render("cargo/function", map[string]any{
			"TestName":    name,
			"Description": "Zero and empty inputs",
			"Call":        fmt.Sprintf("%s(%s)", fn, c.boundaryArgs()),
			"Assert":      "let _ = result; // TODO: verify behaviour at the boundary",
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Zero and empty inputs", m.CategoryBoundary, body))
	}

	errBody := fmt.Sprintf("// TODO: call %s with invalid input and assert on the failure", fn)
	if strings.HasPrefix(c.Fn.ReturnType, "Result<") {
		errBody = fmt.Sprintf("let result = %s(%s);\nassert!(result.is_err()); // TODO: use input that fails", fn, c.boundaryArgs())
	}

	out = append(out, g.literal(c, base+"_error_handling", "Invalid input", m.CategoryErrorHandling, errBody))

	if c.Async {
		name = c.names.unique(base + "_async")

		body, err = g.store.Render("cargo/async", map[string]any{
			"TestName":    name,
			"Description": "Awaits the async call",
			"Call":        call,
			"Assert":      "let _ = result; // TODO: assert on the awaited value",
		})
		if err != nil {
			return nil, err
		}

		out = append(out, newCase(name, "Awaits the async call", m.CategoryHappyPath, body))
	}

	return out, nil
}

func rustAssert(kind ExpectKind) string {
	switch kind {
	case ExpectBool:
		return "assert!(result);"
	case ExpectNumber, ExpectString, ExpectList, ExpectNone:
		return fmt.Sprintf("assert_eq!(result, %s); // TODO: set the expected value", rustExpected(kind))
	}

	return "let _ = result; // TODO: assert on the result"
}

func rustExpected(kind ExpectKind) string {
	if kind == ExpectNone {
		return "()"
	}

	return ExpectedLiteral(kind, rustLiterals)
}

func (g *rustGenerator) structCase(p m.TestablePattern, names *nameSet) ([]m.TestCase, error) {
	name := names.unique("test_" + Snake(p.Class.Name) + "_creation")

	body, err := g.store.Render("cargo/struct", map[string]any{
		"TestName":    name,
		"Description": fmt.Sprintf("Creates %s with default values", p.Class.Name),
		"Name":        p.Class.Name,
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Struct creation", m.CategoryHappyPath, body)}, nil
}

func (g *rustGenerator) traitCase(p m.TestablePattern, names *nameSet) m.TestCase {
	name := names.unique("test_" + Snake(p.Class.Name) + "_implementation")
	body := fmt.Sprintf("// TODO: implement %s for a test type and exercise its methods", p.Class.Name)

	return newCase(name, "Trait implementation", m.CategoryHappyPath, rustTest(name, body))
}
