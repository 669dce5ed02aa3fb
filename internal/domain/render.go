package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/uft/internal/model"
)

// lineComments is the line comment token of each built-in language.
var lineComments = map[string]string{
	"go":         "//",
	"java":       "//",
	"javascript": "//",
	"rust":       "//",
	"python":     "#",
}

// RenderFile produces the final file content for suite. Built-in languages
// get a provenance header; dynamic languages are written as rendered.
func RenderFile(suite m.TestSuite, source m.Path) []byte {
	code := suite.RenderedCode
	if code == "" {
		bodies := make([]string, 0, len(suite.TestCases))
		for _, tc := range suite.TestCases {
			bodies = append(bodies, tc.Body)
		}

		code = strings.Join(append(append([]string{}, suite.Imports...), bodies...), "\n\n")
	}

	var sb strings.Builder

	if comment, ok := lineComments[suite.Language]; ok {
		fmt.Fprintf(&sb, "%s Generated by uft from %s (%s, %d test cases).\n", comment,
			filepath.Base(string(source)), suite.Framework, len(suite.TestCases))
		fmt.Fprintf(&sb, "%s Replace the TODO placeholders before relying on these tests.\n\n", comment)
	}

	sb.WriteString(code)

	if !strings.HasSuffix(code, "\n") {
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}
