package detectors

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/uft/internal/model"
)

// NewDynamic builds a detector from a language config. Every regex is
// compiled here so a bad rule fails registration, never detection.
func NewDynamic(cfg m.LanguageConfig) (Detector, error) {
	rules := make([]Rule, 0, len(cfg.Patterns))

	for _, pc := range cfg.Patterns {
		re, err := regexp.Compile(pc.Regex)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, m.ErrInvalidRegex),
				"language %q pattern %q", cfg.Name, pc.Name)
		}

		rules = append(rules, dynamicRule(re, pc))
	}

	return &ruleDetector{language: cfg.Name, rules: rules}, nil
}

// KindForPatternType maps a config pattern_type onto a pattern kind.
func KindForPatternType(patternType string) m.PatternKind {
	switch strings.ToLower(patternType) {
	case "class", "struct", "record", "object":
		return m.PatternClass
	case "interface", "trait", "protocol":
		return m.PatternInterface
	case "constructor", "init":
		return m.PatternConstructor
	default:
		return m.PatternFunction
	}
}

func dynamicRule(re *regexp.Regexp, pc m.PatternConfig) Rule {
	kind := KindForPatternType(pc.PatternType)
	cg := pc.CaptureGroups
	spec := ParamSpec{Separator: cg.ParameterSeparator, Format: cg.ParameterFormat}

	return Rule{
		Kind:       kind,
		Pattern:    re,
		Confidence: pc.Confidence,
		Extract: func(mt Match) (m.TestablePattern, bool) {
			name := captured(mt, cg.Name, "unknown")

			switch kind {
			case m.PatternClass, m.PatternInterface:
				return class(kind, name), true
			}

			params := []string{}
			if cg.Parameters != nil {
				params = spec.Parse(mt.Group(*cg.Parameters))
			}

			p := function(name, params, captured(mt, cg.ReturnType, "void"))
			p.Kind = kind

			return p, true
		},
	}
}

func captured(mt Match, index *int, def string) string {
	if index == nil {
		return def
	}

	return mt.GroupOr(*index, def)
}
