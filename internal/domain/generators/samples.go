package generators

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SampleKind is the inferred shape of a sample argument.
type SampleKind string

// Available SampleKind values.
const (
	SampleEmail  SampleKind = "email"
	SampleID     SampleKind = "id"
	SampleName   SampleKind = "name"
	SampleNumber SampleKind = "number"
	SamplePrice  SampleKind = "price"
	SampleBool   SampleKind = "bool"
	SampleList   SampleKind = "list"
	SampleText   SampleKind = "text"
)

// Sample is an inferred argument value and its literal spelling.
type Sample struct {
	Param   string
	Kind    SampleKind
	Value   any
	Literal string
}

// Literals spells values in a target language.
type Literals struct {
	String func(s string) string
	Int    func(n int) string
	Float  func(f float64) string
	Bool   func(b bool) string
	List   func(items []int) string
	Null   string
	// Type names a sample kind for languages with declared types.
	Type func(kind SampleKind) string
}

// Spell renders v using the literal table.
func (l Literals) Spell(v any) string {
	switch val := v.(type) {
	case string:
		return l.String(val)
	case int:
		return l.Int(val)
	case float64:
		return l.Float(val)
	case bool:
		return l.Bool(val)
	case []int:
		return l.List(val)
	case nil:
		return l.Null
	}

	return fmt.Sprint(v)
}

type sampleRule struct {
	needles []string
	kind    SampleKind
	value   func(n int) any
}

// sampleRules are evaluated top to bottom against the lower-cased name.
var sampleRules = []sampleRule{
	{[]string{"email"}, SampleEmail, func(int) any { return "test@example.com" }},
	{[]string{"id"}, SampleID, func(n int) any { return n }},
	{[]string{"name"}, SampleName, func(n int) any { return fmt.Sprintf("TestName%d", n) }},
	{[]string{"count", "number", "age"}, SampleNumber, func(int) any { return 42 }},
	{[]string{"price", "amount"}, SamplePrice, func(int) any { return 19.99 }},
	{[]string{"bool", "flag"}, SampleBool, func(int) any { return true }},
	{[]string{"list", "array"}, SampleList, func(int) any { return []int{1, 2, 3} }},
}

// SampleFor infers a sample for the parameter at index (0-based).
func SampleFor(param string, index int, lits Literals) Sample {
	lower := strings.ToLower(param)
	n := index + 1

	for _, rule := range sampleRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				v := rule.value(n)

				return Sample{Param: param, Kind: rule.kind, Value: v, Literal: lits.Spell(v)}
			}
		}
	}

	v := fmt.Sprintf("test_value_%d", n)

	return Sample{Param: param, Kind: SampleText, Value: v, Literal: lits.Spell(v)}
}

// SamplesFor infers samples for a whole parameter list.
func SamplesFor(params []string, lits Literals) []Sample {
	samples := make([]Sample, 0, len(params))
	for i, p := range params {
		samples = append(samples, SampleFor(p, i, lits))
	}

	return samples
}

// BoundaryFor returns the zero, empty or extreme value for a sample kind.
func BoundaryFor(kind SampleKind, lits Literals) string {
	switch kind {
	case SampleEmail, SampleName, SampleText:
		return lits.String("")
	case SampleID, SampleNumber:
		return lits.Int(0)
	case SamplePrice:
		return lits.Float(0)
	case SampleBool:
		return lits.Bool(false)
	case SampleList:
		return lits.List(nil)
	}

	return lits.Null
}

func literals(samples []Sample) []string {
	out := make([]string, 0, len(samples))
	for _, s := range samples {
		out = append(out, s.Literal)
	}

	return out
}

func sampleValues(samples []Sample) map[string]any {
	out := make(map[string]any, len(samples))
	for _, s := range samples {
		out[s.Param] = s.Value
	}

	return out
}

// ExpectKind is the inferred shape of a return value.
type ExpectKind string

// Available ExpectKind values.
const (
	ExpectBool    ExpectKind = "boolean"
	ExpectNumber  ExpectKind = "numeric"
	ExpectString  ExpectKind = "string"
	ExpectList    ExpectKind = "list"
	ExpectObject  ExpectKind = "object"
	ExpectNone    ExpectKind = "none"
	ExpectUnknown ExpectKind = "unknown"
)

// TypeTable maps declared return types to expectation kinds. Keys ending
// in "*" match as prefixes.
type TypeTable map[string]ExpectKind

func (t TypeTable) lookup(returnType string) (ExpectKind, bool) {
	rt := strings.TrimSpace(returnType)
	if rt == "" {
		return "", false
	}

	if kind, ok := t[rt]; ok {
		return kind, true
	}

	for key, kind := range t {
		if prefix, ok := strings.CutSuffix(key, "*"); ok && strings.HasPrefix(rt, prefix) {
			return kind, true
		}
	}

	return "", false
}

// ExpectedFor infers the expected-output kind from the declared return
// type first and from the function name second.
func ExpectedFor(returnType, name string, types TypeTable) ExpectKind {
	if kind, ok := types.lookup(returnType); ok {
		return kind
	}

	lower := strings.ToLower(name)

	switch {
	case hasWordPrefix(name, "is") || strings.Contains(lower, "validate") || strings.Contains(lower, "check"):
		return ExpectBool
	case strings.Contains(lower, "calculate") || strings.Contains(lower, "add") || strings.Contains(lower, "sum"):
		return ExpectNumber
	case hasWordPrefix(name, "get") || hasWordPrefix(name, "fetch"):
		switch {
		case strings.Contains(lower, "list") || strings.Contains(lower, "all") || strings.HasSuffix(lower, "s"):
			return ExpectList
		case strings.Contains(lower, "user") || strings.Contains(lower, "item") || strings.Contains(lower, "config"):
			return ExpectObject
		default:
			return ExpectString
		}
	}

	return ExpectUnknown
}

// hasWordPrefix matches "is_valid" and "isValid" but not "issue".
func hasWordPrefix(name, prefix string) bool {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, prefix) || len(name) <= len(prefix) {
		return false
	}

	next := rune(name[len(prefix)])

	return next == '_' || unicode.IsUpper(next)
}

// ExpectedLiteral spells a placeholder expected value for kind.
func ExpectedLiteral(kind ExpectKind, lits Literals) string {
	switch kind {
	case ExpectBool:
		return lits.Bool(true)
	case ExpectNumber:
		return lits.Int(0)
	case ExpectString:
		return lits.String("expected")
	case ExpectList:
		return lits.List(nil)
	}

	return lits.Null
}

// ExpectedValue is the placeholder expected value for kind, as recorded
// on a test case.
func ExpectedValue(kind ExpectKind) any {
	switch kind {
	case ExpectBool:
		return true
	case ExpectNumber:
		return 0
	case ExpectString:
		return "expected"
	case ExpectList:
		return []any{}
	case ExpectObject:
		return map[string]any{}
	}

	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func joinInts(items []int) string {
	parts := make([]string, 0, len(items))
	for _, i := range items {
		parts = append(parts, strconv.Itoa(i))
	}

	return strings.Join(parts, ", ")
}
