package detectors

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	rustFnRe     = regexp.MustCompile(`\bfn\s+(\w+)\s*(?:<[^>]*>)?\s*\(([^)]*)\)(?:\s*->\s*([^{;\n]+))?`)
	rustStructRe = regexp.MustCompile(`\bstruct\s+(\w+)`)
	rustTraitRe  = regexp.MustCompile(`\btrait\s+(\w+)`)
)

var rustParams = ParamSpec{
	Separator: ",",
	Format:    m.ParamNameType,
	Skip: func(token string) bool {
		return !strings.Contains(token, ":") && strings.HasSuffix(token, "self")
	},
}

// NewRust returns the detector for Rust sources.
func NewRust() Detector {
	return &ruleDetector{
		language: "rust",
		rules: []Rule{
			{
				Kind:       m.PatternFunction,
				Pattern:    rustFnRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					ret := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(mt.Group(3)), "where"))

					if ret == "" {
						ret = "()"
					}

					return function(mt.Group(1), rustParams.Parse(mt.Group(2)), ret), true
				},
			},
			{
				Kind:       m.PatternClass,
				Pattern:    rustStructRe,
				Confidence: 0.8,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternClass, mt.Group(1)), true
				},
			},
			{
				Kind:       m.PatternInterface,
				Pattern:    rustTraitRe,
				Confidence: 0.8,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternInterface, mt.Group(1)), true
				},
			},
		},
	}
}
