package detectors

import (
	"regexp"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	pyDefRe        = regexp.MustCompile(`\bdef\s+(\w+)\s*\(([^)]*)\)(?:\s*->\s*([^:]+?))?\s*:`)
	pyClassRe      = regexp.MustCompile(`(?m)^[ \t]*class\s+(\w+)`)
	pyEmailFieldRe = regexp.MustCompile(`(\w+)\s*=\s*(?:\w+\.)*EmailField\(`)
	pyExceptRe     = regexp.MustCompile(`\bexcept\s+\(?\s*(\w+(?:Error|Exception))`)
	pyOptionalRe   = regexp.MustCompile(`blank\s*=\s*True|required\s*=\s*False`)
)

var pyParams = ParamSpec{
	Separator: ",",
	Format:    m.ParamNameOnly,
	Skip: func(token string) bool {
		return token == "self" || token == "cls" || token == "*" || token == "/"
	},
}

// NewPython returns the detector for Python sources.
func NewPython() Detector {
	return &ruleDetector{
		language: "python",
		rules: []Rule{
			{
				Kind:       m.PatternFunction,
				Pattern:    pyDefRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return function(mt.Group(1), pyParams.Parse(mt.Group(2)), mt.GroupOr(3, "None")), true
				},
			},
			{
				Kind:       m.PatternClass,
				Pattern:    pyClassRe,
				Confidence: 0.85,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternClass, mt.Group(1)), true
				},
			},
			{
				Kind:       m.PatternFormValidation,
				Pattern:    pyEmailFieldRe,
				Confidence: 0.7,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					p := emailField(mt.Group(1))
					p.Form.Required = !pyOptionalRe.MatchString(lineAround(mt.Source, mt.Start))

					return p, true
				},
			},
			emailInputRule(0.7),
			{
				Kind:       m.PatternException,
				Pattern:    pyExceptRe,
				Confidence: 0.6,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					p := class(m.PatternException, mt.Group(1))
					p.Context.ClassName = ""

					return p, true
				},
			},
		},
	}
}
