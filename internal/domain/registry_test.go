package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

func intPtr(i int) *int { return &i }

func kotlinConfig() m.LanguageConfig {
	return m.LanguageConfig{
		Name:       "kotlin",
		Extensions: []string{".kt", "KTS"},
		Framework:  "junit5",
		Patterns: []m.PatternConfig{
			{
				Name:        "function",
				PatternType: "function",
				Regex:       `fun\s+(\w+)\s*\(([^)]*)\)`,
				CaptureGroups: m.CaptureGroups{
					Name:               intPtr(1),
					Parameters:         intPtr(2),
					ParameterSeparator: ",",
					ParameterFormat:    m.ParamNameType,
				},
				Confidence: 0.8,
			},
		},
		TestTemplate: m.TestTemplate{
			Setup:         "class {{CLASS_NAME}} {",
			TestFunction:  "    @Test fun {{TEST_NAME}}() {}",
			Teardown:      "}",
			FileExtension: "Test.kt",
		},
	}
}

func TestNewRegistry_Builtins(t *testing.T) {
	r := NewRegistry(templates.NewStore())

	assert.Equal(t, []string{"go", "java", "javascript", "python", "rust"}, r.Languages())
	assert.Equal(t, []string{"go", "java", "js", "jsx", "py", "rs", "ts", "tsx"}, r.Extensions())

	a, ok := r.ForExtension(".tsx")
	require.True(t, ok)
	assert.Equal(t, "javascript", a.Language())
	assert.False(t, a.Dynamic())
	assert.Equal(t, []string{"jest", "mocha", "vitest"}, a.Frameworks())

	_, ok = r.ForExtension("cpp")
	assert.False(t, ok)
}

func TestNewRegistry_DynamicConfig(t *testing.T) {
	r := NewRegistry(templates.NewStore(), kotlinConfig())

	assert.Equal(t, []string{"go", "java", "javascript", "kotlin", "python", "rust"}, r.Languages())

	a, ok := r.ForExtension("kts")
	require.True(t, ok)
	assert.Equal(t, "kotlin", a.Language())
	assert.True(t, a.Dynamic())
	assert.Equal(t, []string{"kt", "kts"}, a.Extensions())
	assert.Equal(t, []string{"junit5"}, a.Frameworks())
	assert.Equal(t, "Test.kt", a.TestExtension())
}

func TestNewRegistry_ConfigNeverOverridesBuiltin(t *testing.T) {
	shadow := kotlinConfig()
	shadow.Name = "python"
	shadow.Extensions = []string{"pyx"}

	r := NewRegistry(templates.NewStore(), shadow)

	a, ok := r.Adapter("python")
	require.True(t, ok)
	assert.False(t, a.Dynamic())

	_, ok = r.ForExtension("pyx")
	assert.False(t, ok)
}

func TestNewRegistry_ExtensionClaimedByBuiltin(t *testing.T) {
	cfg := kotlinConfig()
	cfg.Extensions = []string{"kt", "go"}

	r := NewRegistry(templates.NewStore(), cfg)

	a, ok := r.ForExtension("go")
	require.True(t, ok)
	assert.Equal(t, "go", a.Language())

	a, ok = r.ForExtension("kt")
	require.True(t, ok)
	assert.Equal(t, "kotlin", a.Language())
}

func TestNewRegistry_InvalidConfigSkipped(t *testing.T) {
	broken := kotlinConfig()
	broken.Name = "broken"
	broken.Extensions = []string{"brk"}
	broken.Patterns[0].Regex = `fun\s+(`

	r := NewRegistry(templates.NewStore(), broken, kotlinConfig())

	_, ok := r.Adapter("broken")
	assert.False(t, ok)

	_, ok = r.Adapter("kotlin")
	assert.True(t, ok)
}
