package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

func newTestOrchestrator(opts ...OrchestratorOption) Orchestrator {
	return NewOrchestrator(NewRegistry(templates.NewStore(), kotlinConfig()), opts...)
}

func TestOrchestrator_DetectLanguage(t *testing.T) {
	o := newTestOrchestrator()

	tests := []struct {
		path    string
		want    string
		wantErr error
	}{
		{"src/app.ts", "javascript", nil},
		{"lib/calc.py", "python", nil},
		{"Main.JAVA", "java", nil},
		{"Greeter.kt", "kotlin", nil},
		{"native/lib.cpp", "", m.ErrUnsupportedLanguage},
		{"Makefile", "", m.ErrNoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := o.DetectLanguage(tt.path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrchestrator_UnsupportedHintListsExtensions(t *testing.T) {
	_, err := newTestOrchestrator().DetectLanguage("engine.cpp")
	require.Error(t, err)

	hints := errors.FlattenHints(err)
	assert.Contains(t, hints, ".go")
	assert.Contains(t, hints, ".kt")
	assert.Contains(t, hints, ".tsx")
}

func TestOrchestrator_Analyze(t *testing.T) {
	patterns, err := newTestOrchestrator().Analyze("add.go", "func Add(a int, b int) int { return a + b }")
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	assert.Equal(t, "Add", patterns[0].Function.Name)
	assert.Equal(t, []string{"a", "b"}, patterns[0].Function.Parameters)

	_, err = newTestOrchestrator().Analyze("add.cpp", "int add(int a, int b);")
	assert.True(t, errors.Is(err, m.ErrUnsupportedLanguage))
}

func TestOrchestrator_Generate(t *testing.T) {
	suite, err := newTestOrchestrator().Generate("src/math.rs", "fn add(a: i32, b: i32) -> i32 { a + b }")
	require.NoError(t, err)

	assert.Equal(t, "rust", suite.Language)
	assert.Equal(t, "cargo-test", suite.Framework)
	assert.Contains(t, suite.RenderedCode, "assert_eq!(add(2, 3), 5);")
}

func TestOrchestrator_GenerateWithFramework(t *testing.T) {
	o := newTestOrchestrator(WithFrameworks(map[string]string{"python": "unittest"}))

	suite, err := o.Generate("calc.py", "def add(a, b):\n    return a + b\n")
	require.NoError(t, err)

	assert.Equal(t, "unittest", suite.Framework)
	assert.Contains(t, suite.RenderedCode, "unittest.main()")
}

func TestOrchestrator_GenerateUnknownFramework(t *testing.T) {
	o := newTestOrchestrator(WithFrameworks(map[string]string{"go": "ginkgo"}))

	_, err := o.Generate("add.go", "func Add(a, b int) int { return a + b }")
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrUnknownFramework))
	assert.Contains(t, errors.FlattenHints(err), "testing, testify")
}

func TestOrchestrator_GenerateDynamic(t *testing.T) {
	suite, err := newTestOrchestrator().Generate("Greeter.kt", "fun greet(name: String) {}\n")
	require.NoError(t, err)

	assert.Equal(t, "kotlin", suite.Language)
	require.Len(t, suite.TestCases, 1)
	assert.Equal(t, "testGreet", suite.TestCases[0].Name)
	assert.Contains(t, suite.RenderedCode, "@Test fun testGreet() {}")
}

func TestOrchestrator_Integration(t *testing.T) {
	source := "const load = () => fetch('/api/users');\nawait User.create({ name });\n"

	suite, err := newTestOrchestrator().Integration("web/users.js", source)
	require.NoError(t, err)

	assert.Equal(t, m.TestTypeIntegration, suite.TestType)
	assert.Len(t, suite.TestCases, 2)
	assert.Contains(t, suite.SetupRequirements, "Test database connection")
	assert.Contains(t, suite.CleanupRequirements, "Close database connection")
}

func TestOrchestrator_IntegrationRejectsOtherLanguages(t *testing.T) {
	_, err := newTestOrchestrator().Integration("calc.py", "def add(a, b):\n    return a + b\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrUnsupportedLanguage))
	assert.Contains(t, errors.FlattenHints(err), "javascript sources only")
}

func TestOrchestrator_AnalyzeHonorsIgnoreDirectives(t *testing.T) {
	o := newTestOrchestrator()

	const plain = "def add(a, b):\n    return a + b\n\ndef sub(a, b):\n    return a - b\n"
	const annotated = "def add(a, b):\n    return a + b\n\n# uft:ignore\ndef sub(a, b):\n    return a - b\n"

	all, err := o.Analyze("calc.py", plain)
	require.NoError(t, err)

	filtered, err := o.Analyze("calc.py", annotated)
	require.NoError(t, err)

	assert.Len(t, filtered, len(all)-1)

	for _, p := range filtered {
		assert.NotEqual(t, "sub", p.Name())
	}
}
