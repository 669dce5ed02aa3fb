package detectors

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	goFuncRe      = regexp.MustCompile(`\bfunc\s+(?:\(\s*(?:\w+\s+)?\*?(\w+)(?:\[[^\]]*\])?\s*\)\s*)?(\w+)(?:\[[^\]]*\])?\s*\(([^)]*)\)([^{\n]*)`)
	goStructRe    = regexp.MustCompile(`\btype\s+(\w+)(?:\[[^\]]*\])?\s+struct\s*\{`)
	goInterfaceRe = regexp.MustCompile(`\btype\s+(\w+)(?:\[[^\]]*\])?\s+interface\s*\{`)
)

var goBuiltinTypes = map[string]bool{
	"bool": true, "string": true, "error": true, "any": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

var goParams = ParamSpec{
	Separator: ",",
	Format:    m.ParamNameType,
	// A lone word is a grouped name ("a, b int") unless it is clearly a type.
	Bare: func(word string) string {
		if goBuiltinTypes[word] || strings.ContainsAny(word, ".*[]") {
			return "param_" + strings.ToLower(strings.Trim(word, "*[]."))
		}

		return word
	},
}

// NewGo returns the detector for Go sources.
func NewGo() Detector {
	return &ruleDetector{
		language: "go",
		rules: []Rule{
			{
				Kind:       m.PatternFunction,
				Pattern:    goFuncRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					p := function(mt.Group(2), goParams.Parse(mt.Group(3)), goReturnType(mt.Group(4)))
					p.Context.ClassName = mt.Group(1)

					return p, true
				},
			},
			{
				Kind:       m.PatternClass,
				Pattern:    goStructRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternClass, mt.Group(1)), true
				},
			},
			{
				Kind:       m.PatternInterface,
				Pattern:    goInterfaceRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternInterface, mt.Group(1)), true
				},
			},
			emailLiteralRule(0.6),
		},
	}
}

func goReturnType(raw string) string {
	ret := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "{"))
	if ret == "" {
		return "void"
	}

	return ret
}
