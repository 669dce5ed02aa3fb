package generators

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/uft/internal/model"
)

// frameworks lists the supported frameworks per built-in language. The
// first entry is the default.
var frameworks = map[string][]string{
	"go":         {"testing", "testify"},
	"java":       {"junit5", "testng"},
	"javascript": {"jest", "mocha", "vitest"},
	"python":     {"pytest", "unittest"},
	"rust":       {"cargo-test", "nextest"},
}

// Frameworks returns the frameworks offered for language.
func Frameworks(language string) []string {
	return slices.Clone(frameworks[language])
}

// DefaultFramework returns the first framework offered for language.
func DefaultFramework(language string) string {
	if fws := frameworks[language]; len(fws) > 0 {
		return fws[0]
	}

	return ""
}

// SupportsFramework reports whether language offers framework.
func SupportsFramework(language, framework string) bool {
	return slices.Contains(frameworks[language], framework)
}

// ResolveFramework validates a requested framework. An empty request
// yields the default.
func ResolveFramework(language, framework string) (string, error) {
	if framework == "" {
		return DefaultFramework(language), nil
	}

	if !SupportsFramework(language, framework) {
		return "", errors.WithHintf(
			errors.Wrapf(m.ErrUnknownFramework, "%s for %s", framework, language),
			"%s supports: %s", language, strings.Join(frameworks[language], ", "),
		)
	}

	return framework, nil
}

// coverageTargets are the percentage goals recorded on generated suites.
var coverageTargets = map[string]float64{
	"rust":       75,
	"javascript": 80,
	"typescript": 80,
	"python":     85,
	"java":       80,
	"go":         70,
	"csharp":     80,
	"swift":      75,
	"kotlin":     80,
	"php":        70,
	"ruby":       80,
	"scala":      75,
	"cpp":        60,
	"c":          65,
}

const defaultCoverage = 70

// CoverageTarget returns the coverage goal for language.
func CoverageTarget(language string) float64 {
	if target, ok := coverageTargets[language]; ok {
		return target
	}

	return defaultCoverage
}
