package detectors

import (
	"regexp"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	jsFunctionRe = regexp.MustCompile(`\bfunction\s*\*?\s+(\w+)\s*\(([^)]*)\)(?:\s*:\s*([^{;\n]+))?`)
	jsArrowRe    = regexp.MustCompile(`\b(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s*)?\(([^)]*)\)\s*(?::\s*([^=\n]+?))?\s*=>`)
	jsClassRe    = regexp.MustCompile(`\bclass\s+(\w+)`)
)

var jsParams = ParamSpec{Separator: ",", Format: m.ParamNameOnly}

// NewJavaScript returns the detector for JavaScript and TypeScript sources.
func NewJavaScript() Detector {
	fn := func(mt Match) (m.TestablePattern, bool) {
		return function(mt.Group(1), jsParams.Parse(mt.Group(2)), mt.GroupOr(3, "undefined")), true
	}

	return &ruleDetector{
		language: "javascript",
		rules: []Rule{
			{Kind: m.PatternFunction, Pattern: jsFunctionRe, Confidence: 0.9, Extract: fn},
			{Kind: m.PatternFunction, Pattern: jsArrowRe, Confidence: 0.85, Extract: fn},
			{
				Kind:       m.PatternClass,
				Pattern:    jsClassRe,
				Confidence: 0.85,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternClass, mt.Group(1)), true
				},
			},
			emailInputRule(0.8),
		},
	}
}
