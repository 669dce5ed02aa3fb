package generators

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

var goLiterals = Literals{
	String: strconv.Quote,
	Int:    strconv.Itoa,
	Float:  formatFloat,
	Bool:   strconv.FormatBool,
	List: func(items []int) string {
		if items == nil {
			return "nil"
		}

		return "[]int{" + joinInts(items) + "}"
	},
	Null: "nil",
	Type: func(kind SampleKind) string {
		switch kind {
		case SampleID, SampleNumber:
			return "int"
		case SamplePrice:
			return "float64"
		case SampleBool:
			return "bool"
		case SampleList:
			return "[]int"
		}

		return "string"
	},
}

var goTypes = TypeTable{
	"int": ExpectNumber, "int8": ExpectNumber, "int16": ExpectNumber, "int32": ExpectNumber, "int64": ExpectNumber,
	"uint": ExpectNumber, "uint8": ExpectNumber, "uint16": ExpectNumber, "uint32": ExpectNumber, "uint64": ExpectNumber,
	"float32": ExpectNumber, "float64": ExpectNumber, "byte": ExpectNumber, "rune": ExpectNumber,
	"bool":   ExpectBool,
	"string": ExpectString,
	"[]*":    ExpectList,
	"map[*":  ExpectObject,
	"void":   ExpectNone,
}

// goDialect spells assertions for testing or testify.
type goDialect struct {
	imports    []string
	equal      func(fn string) string
	checkErr   func(fn string) string
	isType     func(name string) string
	matches    func(fn, expr string) string
	maxInt     func(fn string) string
	concurrent func(name, fn, want string) string
}

var goDialects = map[string]goDialect{
	"testing": {
		imports: []string{"testing"},
		equal: func(fn string) string {
			return lines(3,
				"if !reflect.DeepEqual(got, tt.want) {",
				fmt.Sprintf("\tt.Errorf(\"%s() = %%v, want %%v\", got, tt.want)", fn),
				"}")
		},
		checkErr: func(fn string) string {
			return lines(3,
				"if (err != nil) != tt.wantErr {",
				fmt.Sprintf("\tt.Fatalf(\"%s() error = %%v, wantErr %%v\", err, tt.wantErr)", fn),
				"}",
				"if tt.wantErr {",
				"\treturn",
				"}")
		},
		isType: func(name string) string {
			return lines(1,
				fmt.Sprintf("if reflect.TypeOf(instance).Name() != %q {", name),
				fmt.Sprintf("\tt.Errorf(\"expected %s, got %%T\", instance)", name),
				"}")
		},
		matches: func(fn, expr string) string {
			return lines(3,
				fmt.Sprintf("if got := %s; got != tt.want {", expr),
				fmt.Sprintf("\tt.Errorf(\"%s(%%q) = %%v, want %%v\", tt.email, got, tt.want)", fn),
				"}")
		},
		maxInt: func(fn string) string {
			return lines(1,
				"if got != math.MaxInt32 {",
				fmt.Sprintf("\tt.Errorf(\"%s() = %%v, want %%v\", got, math.MaxInt32)", fn),
				"}")
		},
		concurrent: func(name, fn, want string) string {
			return lines(3,
				fmt.Sprintf("if got := %s(i, i); got != %s {", fn, want),
				fmt.Sprintf("\tt.Errorf(\"%s(%%d, %%d) = %%d, want %%d\", i, i, got, %s)", name, want),
				"}")
		},
	},
	"testify": {
		imports: []string{"testing"},
		equal:   func(string) string { return "assert.Equal(t, tt.want, got)" },
		checkErr: func(string) string {
			return lines(3,
				"if tt.wantErr {",
				"\trequire.Error(t, err)",
				"\treturn",
				"}",
				"require.NoError(t, err)")
		},
		isType:  func(name string) string { return fmt.Sprintf("assert.IsType(t, %s{}, instance)", name) },
		matches: func(_, expr string) string { return fmt.Sprintf("assert.Equal(t, tt.want, %s)", expr) },
		maxInt:  func(string) string { return "assert.Equal(t, math.MaxInt32, got)" },
		concurrent: func(_, fn, want string) string {
			return fmt.Sprintf("assert.Equal(t, %s, %s(i, i))", want, fn)
		},
	},
}

// lines joins code lines for a body nested depth tabs deep.
func lines(depth int, code ...string) string {
	return strings.Join(code, "\n"+strings.Repeat("\t", depth))
}

var (
	goPackageRe = regexp.MustCompile(`(?m)^package\s+(\w+)`)
	goMethodRe  = regexp.MustCompile(`\bfunc\s*\(\s*(?:\w+\s+)?\*?(\w+)(?:\[[^\]]*\])?\s*\)\s*(\w+)`)
)

// goRow is one entry of the test table; Values are "field: literal".
type goRow struct {
	Name   string
	Values []string
}

type goGenerator struct {
	store templates.Store
	table StrategyTable
}

// NewGo returns the generator for go test files.
func NewGo(store templates.Store) Generator {
	g := &goGenerator{store: store}
	g.table = StrategyTable{
		Strategies: []Strategy{
			{Name: "math_add", Match: mathOp("add", "sum"), Build: g.arithmetic("+")},
			{Name: "math_subtract", Match: mathOp("subtract", "sub"), Build: g.arithmetic("-")},
			{Name: "math_multiply", Match: mathOp("multiply", "mul", "product"), Build: g.arithmetic("*")},
			{Name: "email_validation", Match: isEmailValidator, Build: g.email},
			{Name: "performance", Match: nameHas("fibonacci", "sort", "hash"), Build: g.performance},
		},
		Fallback: Strategy{Name: "generic", Build: g.generic},
	}

	return g
}

func (g *goGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	s := newSession("go", opts)
	d := goDialects[s.opts.Framework]
	suite := newSuite(s.opts.Stem()+"_test", "go", s.opts.Framework)
	methods := goMethods(s.opts.Source)

	emailDone := false

	suite.TestCases = collect(patterns, "//", func(p m.TestablePattern) ([]m.TestCase, error) {
		switch p.Kind {
		case m.PatternFunction:
			c := s.function(p, goLiterals, goTypes)
			if recv, ok := methods[p.Function.Name]; ok && recv == p.Context.ClassName {
				c.Receiver = recv
			}

			return c.build(g.table.Select(p.Function.Name))
		case m.PatternClass:
			return g.structCase(p, s.names, d)
		case m.PatternInterface:
			return g.interfaceCase(p, s.names)
		case m.PatternFormValidation:
			if emailDone {
				return nil, nil
			}

			emailDone = true

			return []m.TestCase{g.emailLiteralCase(s.names, d)}, nil
		}

		return skip("go", p)
	})

	suite.Imports = goImports(d, suite.TestCases)

	pkg := "main"
	if mt := goPackageRe.FindStringSubmatch(s.opts.Source); mt != nil {
		pkg = mt[1]
	}

	assemble(g.store, &suite, "go-testing/suite", map[string]any{"Package": pkg})

	return suite
}

// goMethods maps method names to their receiver type.
func goMethods(source string) map[string]string {
	out := map[string]string{}
	for _, mt := range goMethodRe.FindAllStringSubmatch(source, -1) {
		out[mt[2]] = mt[1]
	}

	return out
}

var goImportMarkers = map[string]string{
	"reflect":                             "reflect.",
	"math":                                "math.",
	"regexp":                              "regexp.",
	"sync":                                "sync.",
	"github.com/stretchr/testify/assert":  "assert.",
	"github.com/stretchr/testify/require": "require.",
}

// goImports keeps only the packages the rendered bodies reference, standard
// library first.
func goImports(d goDialect, cases []m.TestCase) []string {
	used := map[string]bool{}
	for _, imp := range d.imports {
		used[imp] = true
	}

	for _, tc := range cases {
		for pkg, marker := range goImportMarkers {
			if strings.Contains(tc.Body, marker) {
				used[pkg] = true
			}
		}
	}

	imports := make([]string, 0, len(used))
	for pkg := range used {
		imports = append(imports, pkg)
	}

	sort.Slice(imports, func(i, j int) bool {
		si, sj := strings.Contains(imports[i], "."), strings.Contains(imports[j], ".")
		if si != sj {
			return !si
		}

		return imports[i] < imports[j]
	})

	return imports
}

func (g *goGenerator) dialect(c *buildCtx) goDialect {
	return goDialects[c.Options.Framework]
}

// testName follows the TestType_Method convention for methods.
func (g *goGenerator) testName(c *buildCtx, suffix string) string {
	name := "Test"
	if c.Receiver != "" {
		name += c.Receiver + "_"
	}

	return c.names.unique(name + templates.Title(c.name()) + suffix)
}

// callee is the expression a test invokes: methods go through a zero value
// of their receiver.
func (g *goGenerator) callee(c *buildCtx) string {
	if c.Receiver != "" {
		return fmt.Sprintf("(&%s{}).%s", c.Receiver, c.name())
	}

	return c.name()
}

// goResults splits "(int, error)" into its result types.
func goResults(returnType string) []string {
	rt := strings.TrimSpace(returnType)
	if rt == "" || rt == "void" {
		return nil
	}

	if strings.HasPrefix(rt, "(") && strings.HasSuffix(rt, ")") {
		var out []string

		for _, part := range strings.Split(rt[1:len(rt)-1], ",") {
			fields := strings.Fields(part)
			if len(fields) > 0 {
				out = append(out, fields[len(fields)-1])
			}
		}

		return out
	}

	return []string{rt}
}

// goZero spells the zero value of a Go type.
func goZero(typ string) string {
	switch {
	case typ == "string":
		return `""`
	case typ == "bool":
		return "false"
	case goTypes[typ] == ExpectNumber:
		return "0"
	case typ == "error" || typ == "any" || strings.HasPrefix(typ, "*") || strings.HasPrefix(typ, "[]") ||
		strings.HasPrefix(typ, "map[") || strings.HasPrefix(typ, "chan ") || strings.HasPrefix(typ, "func"):
		return "nil"
	}

	return typ + "{}"
}

// goFieldName avoids clashes with the table's own fields.
func goFieldName(param string) string {
	switch param {
	case "name", "want", "wantErr", "got", "err", "tt", "t", "tests":
		return param + "Arg"
	}

	return param
}

func (g *goGenerator) generic(c *buildCtx) ([]m.TestCase, error) {
	d := g.dialect(c)
	results := goResults(c.Fn.ReturnType)
	hasErr := len(results) > 0 && results[len(results)-1] == "error"
	values := results
	if hasErr {
		values = results[:len(results)-1]
	}

	fields := make([]string, 0, len(c.Samples)+2)
	args := make([]string, 0, len(c.Samples))
	basic := goRow{Name: "basic"}
	boundary := goRow{Name: "boundary"}

	for _, s := range c.Samples {
		f := goFieldName(s.Param)
		// TODO: detectors keep parameter names only, so field types follow the
		// name-inferred sample kind; carry declared types on FunctionPattern to
		// type Divide(a, b float64) as float64 instead of string.
		fields = append(fields, f+" "+goLiterals.Type(s.Kind))
		args = append(args, "tt."+f)
		basic.Values = append(basic.Values, f+": "+s.Literal)
		boundary.Values = append(boundary.Values, f+": "+BoundaryFor(s.Kind, goLiterals))
	}

	call := fmt.Sprintf("%s(%s)", g.callee(c), strings.Join(args, ", "))

	var lhs []string

	assert := ""

	if len(values) > 0 {
		fields = append(fields, "want "+values[0])
		basic.Values = append(basic.Values, "want: "+goZero(values[0]))
		boundary.Values = append(boundary.Values, "want: "+goZero(values[0]))

		lhs = append(lhs, "got")
		for range values[1:] {
			lhs = append(lhs, "_")
		}

		assert = d.equal(c.name())
	}

	invoke := call

	if hasErr {
		fields = append(fields, "wantErr bool")
		basic.Values = append(basic.Values, "wantErr: false")
		boundary.Values = append(boundary.Values, "wantErr: true")
		lhs = append(lhs, "err")
	}

	if len(lhs) > 0 {
		invoke = strings.Join(lhs, ", ") + " := " + call
	}

	if hasErr {
		invoke += "\n\t\t\t" + d.checkErr(c.name())
	}

	rows := []goRow{basic}
	if len(c.Samples) > 0 || hasErr {
		rows = append(rows, boundary)
	}

	name := g.testName(c, "")

	body, err := g.store.Render("go-testing/function", map[string]any{
		"TestName": name,
		"Fields":   fields,
		"Rows":     rows,
		"Invoke":   invoke,
		"Assert":   assert,
	})
	if err != nil {
		return nil, err
	}

	tc := newCase(name, "Table-driven test", m.CategoryHappyPath, body)
	tc.Input = sampleValues(c.Samples)

	return []m.TestCase{tc}, nil
}

func (g *goGenerator) arithmetic(op string) func(c *buildCtx) ([]m.TestCase, error) {
	return func(c *buildCtx) ([]m.TestCase, error) {
		results := goResults(c.Fn.ReturnType)
		if len(c.Fn.Parameters) != 2 || len(results) != 1 {
			return g.generic(c)
		}

		d := g.dialect(c)
		a, b := goFieldName(c.Fn.Parameters[0]), goFieldName(c.Fn.Parameters[1])
		typ := results[0]
		eval := func(x, y int) string {
			switch op {
			case "-":
				return strconv.Itoa(x - y)
			case "*":
				return strconv.Itoa(x * y)
			}

			return strconv.Itoa(x + y)
		}

		row := func(name string, x, y int) goRow {
			return goRow{Name: name, Values: []string{
				fmt.Sprintf("%s: %d", a, x),
				fmt.Sprintf("%s: %d", b, y),
				"want: " + eval(x, y),
			}}
		}

		name := g.testName(c, "")

		table, err := g.store.Render("go-testing/function", map[string]any{
			"TestName": name,
			"Fields":   []string{a + " " + typ, b + " " + typ, "want " + typ},
			"Rows":     []goRow{row("positive numbers", 2, 3), row("negative numbers", -2, -3), row("zeros", 0, 0)},
			"Invoke":   fmt.Sprintf("got := %s(tt.%s, tt.%s)", g.callee(c), a, b),
			"Assert":   d.equal(c.name()),
		})
		if err != nil {
			return nil, err
		}

		identity := "0"
		if op == "*" {
			identity = "1"
		}

		fn := g.callee(c)
		boundaryName := g.testName(c, "_Boundary")
		boundary := fmt.Sprintf("func %s(t *testing.T) {\n\tgot := %s(math.MaxInt32, %s)\n\t%s\n}",
			boundaryName, fn, identity, d.maxInt(c.name()))

		concurrentName := g.testName(c, "_Concurrent")
		concurrent := fmt.Sprintf(`func %s(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			%s
		}(i)
	}

	wg.Wait()
}`, concurrentName, d.concurrent(c.name(), fn, "i "+op+" i"))

		return []m.TestCase{
			newCase(name, "Table-driven arithmetic", m.CategoryHappyPath, table),
			newCase(boundaryName, "Integer limits", m.CategoryBoundary, boundary),
			newCase(concurrentName, "Concurrent calls", m.CategoryPerformance, concurrent),
		}, nil
	}
}

func (g *goGenerator) email(c *buildCtx) ([]m.TestCase, error) {
	if len(c.Fn.Parameters) != 1 {
		return g.generic(c)
	}

	d := g.dialect(c)
	name := g.testName(c, "")

	body, err := g.store.Render("go-testing/function", map[string]any{
		"TestName": name,
		"Fields":   []string{"email string", "want bool"},
		"Rows": []goRow{
			{Name: "valid address", Values: []string{`email: "test@example.com"`, "want: true"}},
			{Name: "missing at sign", Values: []string{`email: "invalid-email"`, "want: false"}},
			{Name: "missing domain", Values: []string{`email: "user@"`, "want: false"}},
			{Name: "empty", Values: []string{`email: ""`, "want: false"}},
		},
		"Invoke": d.matches(c.name(), fmt.Sprintf("%s(tt.email)", g.callee(c))),
		"Assert": "",
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Email validation table", m.CategoryHappyPath, body)}, nil
}

func (g *goGenerator) performance(c *buildCtx) ([]m.TestCase, error) {
	cases, err := g.generic(c)
	if err != nil {
		return nil, err
	}

	name := c.names.unique("Benchmark" + templates.Title(c.name()))

	body, err := g.store.Render("go-testing/benchmark", map[string]any{
		"TestName": name,
		"Call":     fmt.Sprintf("%s(%s)", g.callee(c), c.args()),
	})
	if err != nil {
		return nil, err
	}

	return append(cases, newCase(name, "Benchmark", m.CategoryPerformance, body)), nil
}

func (g *goGenerator) structCase(p m.TestablePattern, names *nameSet, d goDialect) ([]m.TestCase, error) {
	name := names.unique("Test" + p.Class.Name + "Creation")

	body, err := g.store.Render("go-testing/struct", map[string]any{
		"TestName": name,
		"Name":     p.Class.Name,
		"Assert":   d.isType(p.Class.Name),
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Struct creation", m.CategoryHappyPath, body)}, nil
}

func (g *goGenerator) interfaceCase(p m.TestablePattern, names *nameSet) ([]m.TestCase, error) {
	name := names.unique("Test" + p.Class.Name + "Interface")

	body, err := g.store.Render("go-testing/interface", map[string]any{
		"TestName":    name,
		"Name":        p.Class.Name,
		"Description": fmt.Sprintf("TODO: implement mock%s methods and assert on the contract", p.Class.Name),
	})
	if err != nil {
		return nil, err
	}

	return []m.TestCase{newCase(name, "Interface mock", m.CategoryHappyPath, body)}, nil
}

func (g *goGenerator) emailLiteralCase(names *nameSet, d goDialect) m.TestCase {
	name := names.unique("TestEmailValidation")

	body := fmt.Sprintf(`func %s(t *testing.T) {
	pattern := regexp.MustCompile(%s)

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "valid address", email: "test@example.com", want: true},
		{name: "missing at sign", email: "invalid-email", want: false},
		{name: "missing domain", email: "user@", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			%s
		})
	}
}`, name, "`^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$`", d.matches("MatchString", "pattern.MatchString(tt.email)"))

	return newCase(name, "Email literal validation", m.CategoryHappyPath, body)
}
