package detectors

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	javaMethodRe      = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected)\s+)?(?:static\s+)?(?:final\s+)?(?:synchronized\s+)?(\w+(?:<[^>]*>)?(?:\[\])*)\s+(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[^{;]*)?(?:\{|;)`)
	javaClassRe       = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected)\s+)?(?:static\s+)?(?:abstract\s+)?(?:final\s+)?class\s+(\w+)`)
	javaInterfaceRe   = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected)\s+)?interface\s+(\w+)`)
	javaConstructorRe = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected)\s+)?(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[^{]*)?\{`)
	javaThrowsRe      = regexp.MustCompile(`\bthrows\s+(\w+(?:Exception|Error))`)
	javaClassNamesRe  = regexp.MustCompile(`\bclass\s+(\w+)`)
)

// javaNotTypes are words the method rule could mistake for a return type.
var javaNotTypes = map[string]bool{
	"return": true, "new": true, "throw": true, "else": true, "case": true,
	"package": true, "import": true, "public": true, "private": true,
	"protected": true, "static": true, "final": true, "abstract": true,
}

// javaNotNames are control keywords that look like calls.
var javaNotNames = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"synchronized": true, "return": true, "try": true,
}

var javaParams = ParamSpec{
	Separator: ",",
	Format:    m.ParamTypeName,
	Bare: func(word string) string {
		return "param_" + strings.ToLower(word)
	},
}

// NewJava returns the detector for Java sources.
func NewJava() Detector {
	return &ruleDetector{
		language: "java",
		rules: []Rule{
			{
				Kind:       m.PatternFunction,
				Pattern:    javaMethodRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					ret, name := mt.Group(1), mt.Group(2)
					if javaNotTypes[ret] || javaNotNames[name] || isJavaClass(mt.Source, name) {
						return m.TestablePattern{}, false
					}

					return function(name, javaParams.Parse(mt.Group(3)), ret), true
				},
			},
			{
				Kind:       m.PatternClass,
				Pattern:    javaClassRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternClass, mt.Group(1)), true
				},
			},
			{
				Kind:       m.PatternInterface,
				Pattern:    javaInterfaceRe,
				Confidence: 0.9,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					return class(m.PatternInterface, mt.Group(1)), true
				},
			},
			{
				Kind:       m.PatternConstructor,
				Pattern:    javaConstructorRe,
				Confidence: 0.85,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					name := mt.Group(1)
					if !isJavaClass(mt.Source, name) {
						return m.TestablePattern{}, false
					}

					p := function(name, javaParams.Parse(mt.Group(2)), name)
					p.Kind = m.PatternConstructor
					p.Context.ClassName = name

					return p, true
				},
			},
			emailLiteralRule(0.6),
			{
				Kind:       m.PatternException,
				Pattern:    javaThrowsRe,
				Confidence: 0.7,
				Extract: func(mt Match) (m.TestablePattern, bool) {
					p := class(m.PatternException, mt.Group(1))
					p.Context.ClassName = ""

					return p, true
				},
			},
		},
	}
}

func isJavaClass(source, name string) bool {
	for _, match := range javaClassNamesRe.FindAllStringSubmatch(source, -1) {
		if match[1] == name {
			return true
		}
	}

	return false
}
