package detectors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/uft/internal/model"
)

func TestLineAndColumn(t *testing.T) {
	source := "first\nsecond line\n  third"

	tests := []struct {
		name       string
		offset     int
		wantLine   int
		wantColumn int
	}{
		{"start of file", 0, 1, 1},
		{"inside first line", 3, 1, 4},
		{"start of second line", 6, 2, 1},
		{"inside third line", strings.Index(source, "third"), 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLine, LineOf(source, tt.offset))
			assert.Equal(t, tt.wantColumn, ColumnOf(source, tt.offset))
		})
	}
}

func TestParseParameters(t *testing.T) {
	tests := []struct {
		name   string
		list   string
		format m.ParameterFormat
		want   []string
	}{
		{"empty list", "", m.ParamNameType, []string{}},
		{"blank list", "   ", m.ParamTypeName, []string{}},
		{"name then type", "a int, b string", m.ParamNameType, []string{"a", "b"}},
		{"colon annotated", "a: i32, mut b: Vec<u8>", m.ParamNameType, []string{"a", "b"}},
		{"type then name", "int a, final String b", m.ParamTypeName, []string{"a", "b"}},
		{"generic commas stay together", "Map<String, Integer> counts, int n", m.ParamTypeName, []string{"counts", "n"}},
		{"name only with defaults", "x, y=2, *args, **kwargs", m.ParamNameOnly, []string{"x", "y", "args", "kwargs"}},
		{"typescript annotations", "id: number, name?: string", m.ParamNameOnly, []string{"id", "name"}},
		{"empty tokens dropped", "a int,, b int", m.ParamNameType, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseParameters(tt.list, ",", tt.format))
		})
	}
}

func TestParseParameters_CustomSeparator(t *testing.T) {
	got := ParseParameters("a int; b int", ";", m.ParamNameType)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestParseParameters_CountMatchesTokens(t *testing.T) {
	lists := []string{
		"a int, b int, c int",
		"int x, String y",
		"first, second, third, fourth",
		"@Nullable String value",
	}

	for _, list := range lists {
		tokens := 0

		for _, tok := range strings.Split(list, ",") {
			if strings.TrimSpace(tok) != "" {
				tokens++
			}
		}

		for _, format := range []m.ParameterFormat{m.ParamNameType, m.ParamTypeName, m.ParamNameOnly} {
			assert.Len(t, ParseParameters(list, ",", format), tokens, "list %q format %s", list, format)
		}
	}
}

func TestParseParameters_ReceiversAreNotCounted(t *testing.T) {
	tests := []struct {
		name string
		spec ParamSpec
		list string
		want []string
	}{
		{"python self", pyParams, "self, w", []string{"w"}},
		{"python cls", pyParams, "cls, name, age=3", []string{"name", "age"}},
		{"rust borrowed self", rustParams, "&self, w: f64", []string{"w"}},
		{"rust mutable self", rustParams, "&mut self, items: Vec<i32>", []string{"items"}},
		{"rust owned self", rustParams, "self", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Parse(tt.list))
		})
	}
}

func TestEnclosingClass(t *testing.T) {
	source := "class Outer {\n  void a() {}\n}\ntype Inner struct {\n}\nfunc b() {}\n"

	assert.Equal(t, "", EnclosingClass(source, 0))
	assert.Equal(t, "Outer", EnclosingClass(source, strings.Index(source, "void")))
	assert.Equal(t, "Inner", EnclosingClass(source, strings.Index(source, "func")))
}

func TestScan_RuleOrderNotDocumentOrder(t *testing.T) {
	source := "type Config struct {\n}\n\nfunc Load() error {\n\treturn nil\n}\n"

	patterns := NewGo().Detect("config.go", source)
	require.Len(t, patterns, 2)

	assert.Equal(t, m.PatternFunction, patterns[0].Kind)
	assert.Equal(t, 4, patterns[0].Location.Line)
	assert.Equal(t, m.PatternClass, patterns[1].Kind)
	assert.Equal(t, 1, patterns[1].Location.Line)
}

func TestScan_FillsMetadata(t *testing.T) {
	patterns := NewGo().Detect("pkg/math.go", "\n\nfunc Add(a int, b int) int { return a + b }")
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 0.9, p.Confidence)
	assert.Equal(t, m.SourceLocation{File: "pkg/math.go", Line: 3, Column: 1}, p.Location)
	assert.Equal(t, "Add", p.Context.FunctionName)
	assert.Equal(t, "math", p.Context.ModuleName)
	assert.True(t, p.Valid())
}

func TestDetectors_NoMatchesYieldEmpty(t *testing.T) {
	detectors := map[string]Detector{
		"go":          NewGo(),
		"rust":        NewRust(),
		"python":      NewPython(),
		"javascript":  NewJavaScript(),
		"java":        NewJava(),
		"integration": NewIntegration(),
	}

	for name, d := range detectors {
		t.Run(name, func(t *testing.T) {
			got := d.Detect("empty", "just some prose without any code\n")
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestDetectors_Idempotent(t *testing.T) {
	source := "def add(a, b):\n    return a + b\n\nclass Shape:\n    pass\n"
	d := NewPython()

	first := d.Detect("shapes.py", source)
	second := d.Detect("shapes.py", source)
	require.Len(t, second, len(first))

	for i := range first {
		assert.NotEqual(t, first[i].ID, second[i].ID)

		first[i].ID, second[i].ID = "", ""
		assert.Equal(t, first[i], second[i])
	}
}
