package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/uft/internal/model"
)

const kotlinJSONC = `{
  // Kotlin support
  "name": "kotlin",
  "extensions": ["kt", "kts"],
  "framework": "junit5",
  "patterns": [
    {
      "name": "function",
      "pattern_type": "function",
      "regex": "fun\\s+(\\w+)\\s*\\(([^)]*)\\)",
      "capture_groups": {
        "name_index": 1,
        "parameters_index": 2,
        "parameter_separator": ",",
        "parameter_format": "name_type"
      },
      "confidence": 0.8 /* inert */
    }
  ],
  "test_template": {
    "setup": "class {{CLASS_NAME}} {",
    "test_function": "    @Test fun {{TEST_NAME}}() {}",
    "teardown": "}",
    "file_extension": "Test.kt"
  },
  "imports": ["import org.junit.jupiter.api.Test"]
}`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestParseLanguageConfig_JSONC(t *testing.T) {
	cfg, err := ParseLanguageConfig([]byte(kotlinJSONC), "kotlin.jsonc")
	require.NoError(t, err)

	assert.Equal(t, "kotlin", cfg.Name)
	assert.Equal(t, []string{"kt", "kts"}, cfg.Extensions)
	assert.Equal(t, "kotlin.jsonc", cfg.Origin)
	require.Len(t, cfg.Patterns, 1)

	cg := cfg.Patterns[0].CaptureGroups
	require.NotNil(t, cg.Name)
	require.NotNil(t, cg.Parameters)
	assert.Equal(t, 1, *cg.Name)
	assert.Equal(t, 2, *cg.Parameters)
	assert.Nil(t, cg.ReturnType)
	assert.Equal(t, m.ParamNameType, cg.ParameterFormat)
	assert.Equal(t, "Test.kt", cfg.TestTemplate.FileExtension)
}

func TestParseLanguageConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		isRegex bool
	}{
		{
			name: "not json",
			doc:  `{"name": `,
		},
		{
			name: "schema type mismatch",
			doc:  `{"name": "x", "extensions": "x", "patterns": [], "test_template": {}}`,
		},
		{
			name: "schema missing test_template",
			doc:  `{"name": "x", "extensions": ["x"], "patterns": [{"pattern_type": "function", "regex": "a"}]}`,
		},
		{
			name: "empty extensions",
			doc:  `{"name": "x", "extensions": [], "patterns": [{"pattern_type": "function", "regex": "a"}], "test_template": {}}`,
		},
		{
			name: "no patterns",
			doc:  `{"name": "x", "extensions": ["x"], "patterns": [], "test_template": {}}`,
		},
		{
			name: "empty name",
			doc:  `{"name": "", "extensions": ["x"], "patterns": [{"pattern_type": "function", "regex": "a"}], "test_template": {}}`,
		},
		{
			name: "bad parameter format",
			doc: `{"name": "x", "extensions": ["x"], "test_template": {},
				"patterns": [{"pattern_type": "function", "regex": "a", "capture_groups": {"parameter_format": "reversed"}}]}`,
		},
		{
			name:    "bad regex",
			doc:     `{"name": "x", "extensions": ["x"], "patterns": [{"pattern_type": "function", "regex": "fun(("}], "test_template": {}}`,
			isRegex: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLanguageConfig([]byte(tt.doc), "x.json")
			require.Error(t, err)
			assert.True(t, errors.Is(err, m.ErrInvalidLanguageConfig))
			assert.Equal(t, tt.isRegex, errors.Is(err, m.ErrInvalidRegex))
		})
	}
}

func TestLoadLanguageConfigs_SkipsInvalidSiblings(t *testing.T) {
	dir := t.TempDir()

	writeConfig(t, dir, "kotlin.jsonc", kotlinJSONC)
	writeConfig(t, dir, "broken.json", `{"name": "broken", "extensions": [], "patterns": [{"pattern_type": "function", "regex": "a"}], "test_template": {}}`)
	writeConfig(t, dir, "README.md", "not a config")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	configs, err := LoadLanguageConfigs(dir)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "kotlin", configs[0].Name)
	assert.Equal(t, filepath.Join(dir, "kotlin.jsonc"), configs[0].Origin)
}

func TestLoadLanguageConfigs_MissingDirectory(t *testing.T) {
	configs, err := LoadLanguageConfigs(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestLoadLanguageConfig_MissingFile(t *testing.T) {
	_, err := LoadLanguageConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, m.ErrInvalidLanguageConfig))
}

func TestLoadLanguageConfigs_ShippedConfigs(t *testing.T) {
	configs, err := LoadLanguageConfigs(filepath.Join("..", "..", "language_configs"))
	require.NoError(t, err)
	require.Len(t, configs, 1)

	kotlin := configs[0]
	assert.Equal(t, "kotlin", kotlin.Name)
	assert.Equal(t, []string{"kt", "kts"}, kotlin.Extensions)
	assert.Len(t, kotlin.Patterns, 2)
	assert.Equal(t, "Test.kt", kotlin.TestTemplate.FileExtension)
}
