// Package detectors turns raw source text into testable patterns using
// ordered regular-expression rules.
package detectors

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	m "github.com/mouse-blink/uft/internal/model"
)

// Detector extracts patterns from source text. Implementations are pure:
// no I/O and no state shared between calls.
type Detector interface {
	Detect(file, source string) []m.TestablePattern
}

// Match is a single regex hit handed to a rule extractor.
type Match struct {
	Source string
	Start  int
	End    int
	groups []int
}

// Text returns the whole matched text.
func (mt Match) Text() string {
	return mt.Source[mt.Start:mt.End]
}

// Has reports whether submatch i participated in the match.
func (mt Match) Has(i int) bool {
	return 2*i+1 < len(mt.groups) && mt.groups[2*i] >= 0
}

// Group returns submatch i, or "" when absent.
func (mt Match) Group(i int) string {
	if !mt.Has(i) {
		return ""
	}

	return mt.Source[mt.groups[2*i]:mt.groups[2*i+1]]
}

// GroupOr returns the trimmed submatch i, or def when it is absent or blank.
func (mt Match) GroupOr(i int, def string) string {
	if g := strings.TrimSpace(mt.Group(i)); g != "" {
		return g
	}

	return def
}

// Rule is one detection rule. Extract returns false to drop a match.
type Rule struct {
	Kind       m.PatternKind
	Pattern    *regexp.Regexp
	Confidence float64
	// Once stops the rule after its first accepted match.
	Once    bool
	Extract func(Match) (m.TestablePattern, bool)
}

// ruleDetector evaluates its rules in order. All matches of rule N precede
// those of rule N+1.
type ruleDetector struct {
	language string
	rules    []Rule
}

func (d *ruleDetector) Detect(file, source string) []m.TestablePattern {
	return Scan(file, source, d.rules)
}

// Scan applies rules to source and returns patterns in rule order, then
// document order. It never returns nil.
func Scan(file, source string, rules []Rule) []m.TestablePattern {
	patterns := []m.TestablePattern{}
	module := moduleName(file)

	for _, rule := range rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(source, -1) {
			mt := Match{Source: source, Start: loc[0], End: loc[1], groups: loc}

			p, ok := rule.Extract(mt)
			if !ok {
				continue
			}

			p.ID = uuid.NewString()
			if p.Kind == "" {
				p.Kind = rule.Kind
			}

			p.Confidence = rule.Confidence
			p.Location = m.SourceLocation{
				File:   file,
				Line:   LineOf(source, loc[0]),
				Column: ColumnOf(source, loc[0]),
			}

			if p.Context.ClassName == "" {
				p.Context.ClassName = EnclosingClass(source, loc[0])
			}

			if p.Context.ModuleName == "" {
				p.Context.ModuleName = module
			}

			patterns = append(patterns, p)

			if rule.Once {
				break
			}
		}
	}

	return patterns
}

// LineOf converts a byte offset to a 1-based line number.
func LineOf(source string, offset int) int {
	return strings.Count(source[:offset], "\n") + 1
}

// ColumnOf converts a byte offset to a 1-based column.
func ColumnOf(source string, offset int) int {
	return offset - (strings.LastIndex(source[:offset], "\n") + 1) + 1
}

var enclosingRe = regexp.MustCompile(`\b(?:class|struct|interface|trait)\s+(\w+)|\btype\s+(\w+)\s+struct\b`)

// EnclosingClass returns the nearest type declaration before offset.
func EnclosingClass(source string, offset int) string {
	all := enclosingRe.FindAllStringSubmatch(source[:offset], -1)
	if len(all) == 0 {
		return ""
	}

	last := all[len(all)-1]
	if last[1] != "" {
		return last[1]
	}

	return last[2]
}

func moduleName(file string) string {
	base := filepath.Base(file)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParamSpec describes how a parameter list is split and reduced to names.
type ParamSpec struct {
	Separator string
	Format    m.ParameterFormat
	// Bare rewrites a single-word token. Nil keeps the word.
	Bare func(word string) string
	// Skip drops receiver tokens such as self.
	Skip func(token string) bool
}

// ParseParameters splits list on sep and reduces each token per format.
func ParseParameters(list, sep string, format m.ParameterFormat) []string {
	return ParamSpec{Separator: sep, Format: format}.Parse(list)
}

var identRe = regexp.MustCompile(`^\w+$`)

// Parse returns one name per non-empty token. Tokens that reduce to
// nothing become param_<n>.
func (s ParamSpec) Parse(list string) []string {
	params := []string{}

	sep := s.Separator
	if sep == "" {
		sep = ","
	}

	for i, token := range splitTopLevel(list, sep) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if s.Skip != nil && s.Skip(token) {
			continue
		}

		name := s.reduce(token)
		if !identRe.MatchString(name) {
			name = fmt.Sprintf("param_%d", i+1)
		}

		params = append(params, name)
	}

	return params
}

func (s ParamSpec) reduce(token string) string {
	if before, _, found := strings.Cut(token, "="); found {
		token = strings.TrimSpace(before)
	}

	words := strings.Fields(token)
	if len(words) == 0 {
		return ""
	}

	if len(words) == 1 && s.Bare != nil && !strings.Contains(token, ":") {
		return s.Bare(words[0])
	}

	var name string

	switch s.Format {
	case m.ParamNameType:
		if before, _, found := strings.Cut(token, ":"); found {
			fields := strings.Fields(before)
			if len(fields) > 0 {
				name = fields[len(fields)-1]
			}
		} else {
			name = words[0]
		}
	case m.ParamTypeName:
		name = words[len(words)-1]
	default:
		name = token
		if before, _, found := strings.Cut(name, ":"); found {
			name = before
		}
	}

	return strings.TrimRight(strings.TrimLeft(strings.TrimSpace(name), "*&."), "?")
}

// splitTopLevel splits on sep outside of (), [], {} and <> nesting.
func splitTopLevel(list, sep string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	if sep != "," {
		return strings.Split(list, sep)
	}

	var (
		parts []string
		depth int
		start int
	)

	for i, r := range list {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, list[start:])
}

func function(name string, params []string, returnType string) m.TestablePattern {
	return m.TestablePattern{
		Kind:     m.PatternFunction,
		Function: &m.FunctionPattern{Name: name, Parameters: params, ReturnType: returnType},
		Context:  m.Context{FunctionName: name},
	}
}

func class(kind m.PatternKind, name string) m.TestablePattern {
	return m.TestablePattern{
		Kind:    kind,
		Class:   &m.ClassPattern{Name: name},
		Context: m.Context{ClassName: name},
	}
}

func emailField(name string) m.TestablePattern {
	return m.TestablePattern{
		Kind: m.PatternFormValidation,
		Form: &m.FormField{Name: name, Kind: m.FieldEmail, Required: true},
	}
}

var emailLiteralRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// emailLiteralRule flags the first email-shaped literal in a file.
func emailLiteralRule(confidence float64) Rule {
	return Rule{
		Kind:       m.PatternFormValidation,
		Pattern:    emailLiteralRe,
		Confidence: confidence,
		Once:       true,
		Extract: func(Match) (m.TestablePattern, bool) {
			return emailField("email"), true
		},
	}
}

var (
	emailInputRe = regexp.MustCompile(`type\s*=\s*["']email["']`)
	nameAttrRe   = regexp.MustCompile(`\bname\s*=\s*["'](\w+)["']`)
)

// emailInputRule flags each type="email" attribute. The field name comes
// from a name="..." attribute on the same line when present.
func emailInputRule(confidence float64) Rule {
	return Rule{
		Kind:       m.PatternFormValidation,
		Pattern:    emailInputRe,
		Confidence: confidence,
		Extract: func(mt Match) (m.TestablePattern, bool) {
			name := "email"
			if attr := nameAttrRe.FindStringSubmatch(lineAround(mt.Source, mt.Start)); attr != nil {
				name = attr[1]
			}

			return emailField(name), true
		},
	}
}

func lineAround(source string, offset int) string {
	start := strings.LastIndex(source[:offset], "\n") + 1

	end := strings.Index(source[offset:], "\n")
	if end < 0 {
		return source[start:]
	}

	return source[start : offset+end]
}
