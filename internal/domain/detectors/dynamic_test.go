package detectors

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/uft/internal/model"
)

func intPtr(i int) *int { return &i }

func kotlinConfig() m.LanguageConfig {
	return m.LanguageConfig{
		Name:       "kotlin",
		Extensions: []string{"kt"},
		Framework:  "junit5",
		Patterns: []m.PatternConfig{
			{
				Name:        "function",
				PatternType: "function",
				Regex:       `fun\s+(\w+)\s*\(([^)]*)\)(?:\s*:\s*(\w+))?`,
				CaptureGroups: m.CaptureGroups{
					Name:               intPtr(1),
					Parameters:         intPtr(2),
					ReturnType:         intPtr(3),
					ParameterSeparator: ",",
					ParameterFormat:    m.ParamNameType,
				},
				Confidence: 0.8,
			},
			{
				Name:          "class",
				PatternType:   "class",
				Regex:         `class\s+(\w+)`,
				CaptureGroups: m.CaptureGroups{Name: intPtr(1)},
				Confidence:    0.7,
			},
		},
	}
}

func TestNewDynamic_Detect(t *testing.T) {
	d, err := NewDynamic(kotlinConfig())
	require.NoError(t, err)

	source := "class Greeter {\n    fun greet(name: String, times: Int): String {\n    }\n    fun reset() {\n    }\n}\n"

	patterns := d.Detect("Greeter.kt", source)
	require.Equal(t, []m.PatternKind{m.PatternFunction, m.PatternFunction, m.PatternClass}, kinds(patterns))

	greet := patterns[0]
	assert.Equal(t, "greet", greet.Function.Name)
	assert.Equal(t, []string{"name", "times"}, greet.Function.Parameters)
	assert.Equal(t, "String", greet.Function.ReturnType)
	assert.Equal(t, 2, greet.Location.Line)
	assert.Equal(t, 5, greet.Location.Column)
	assert.Equal(t, "greet", greet.Context.FunctionName)
	assert.Equal(t, "Greeter", greet.Context.ClassName)
	assert.Equal(t, 0.8, greet.Confidence)

	reset := patterns[1].Function
	assert.Equal(t, []string{}, reset.Parameters)
	assert.Equal(t, "void", reset.ReturnType)

	assert.Equal(t, "Greeter", patterns[2].Class.Name)
}

func TestNewDynamic_MissingCaptureDefaults(t *testing.T) {
	cfg := kotlinConfig()
	cfg.Patterns = []m.PatternConfig{{
		Name:        "entry",
		PatternType: "method",
		Regex:       `main\(\)`,
	}}

	d, err := NewDynamic(cfg)
	require.NoError(t, err)

	patterns := d.Detect("Main.kt", "fun main() {}")
	require.Len(t, patterns, 1)
	assert.Equal(t, "unknown", patterns[0].Function.Name)
	assert.Equal(t, "void", patterns[0].Function.ReturnType)
	assert.Empty(t, patterns[0].Function.Parameters)
}

func TestNewDynamic_InvalidRegex(t *testing.T) {
	cfg := kotlinConfig()
	cfg.Patterns[1].Regex = `class\s+(\w+`

	d, err := NewDynamic(cfg)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, m.ErrInvalidRegex))
	assert.Contains(t, err.Error(), "kotlin")
}

func TestKindForPatternType(t *testing.T) {
	tests := map[string]m.PatternKind{
		"function":    m.PatternFunction,
		"method":      m.PatternFunction,
		"Class":       m.PatternClass,
		"struct":      m.PatternClass,
		"trait":       m.PatternInterface,
		"constructor": m.PatternConstructor,
		"whatever":    m.PatternFunction,
	}

	for input, want := range tests {
		assert.Equal(t, want, KindForPatternType(input), input)
	}
}
