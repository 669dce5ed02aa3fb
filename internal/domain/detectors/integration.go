package detectors

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	apiCallRe         = regexp.MustCompile("\\b(fetch|axios\\.(?:get|post|put|delete|patch))\\s*\\(\\s*[`'\"]([^`'\"]+)[`'\"]")
	fetchMethodRe     = regexp.MustCompile(`method\s*:\s*['"](\w+)['"]`)
	authHintRe        = regexp.MustCompile(`Authorization|Bearer`)
	componentRe       = regexp.MustCompile(`\bexport\s+(?:default\s+)?(?:function|const|class)\s+(\w+)|\bclass\s+(\w+)\s+extends\s+(?:React\.)?Component\b`)
	importFromRe      = regexp.MustCompile(`(?m)^\s*import\s+.*?\s+from\s+['"]([^'"]+)['"]`)
	reactHintRe       = regexp.MustCompile(`\bReact\b|from\s+['"]react['"]|<[A-Z]\w*[\s/>]`)
	vueHintRe         = regexp.MustCompile(`\bVue\b|defineComponent\s*\(`)
	dbCallRe          = regexp.MustCompile(`\b([A-Z]\w*|model)\.((create|find|update|delete|save|remove|destroy)\w*)\s*\(`)
	transactionRe     = regexp.MustCompile(`(?i)transaction`)
	propsFunctionTmpl = `function\s+%s\s*\(\s*\{([^}]+)\}`
	propTypesRe       = regexp.MustCompile(`propTypes\s*=\s*\{([^}]+)\}`)
)

// dbGlobals are built-in objects whose methods share ORM verbs.
var dbGlobals = map[string]bool{
	"Object": true, "Array": true, "Promise": true, "JSON": true, "Math": true,
	"Reflect": true, "Date": true, "Map": true, "Set": true, "Proxy": true,
	"React": true, "ReactDOM": true, "Vue": true, "Symbol": true, "Number": true,
	"String": true, "URL": true, "Intl": true,
}

// NewIntegration returns the detector for JavaScript integration points:
// HTTP calls, exported components and ORM operations.
func NewIntegration() Detector {
	return &ruleDetector{
		language: "javascript",
		rules: []Rule{
			{
				Kind:       m.PatternAPIIntegration,
				Pattern:    apiCallRe,
				Confidence: 0.85,
				Extract:    extractAPICall,
			},
			{
				Kind:       m.PatternComponentIntegration,
				Pattern:    componentRe,
				Confidence: 0.9,
				Extract:    extractComponent,
			},
			{
				Kind:       m.PatternDatabaseOperation,
				Pattern:    dbCallRe,
				Confidence: 0.8,
				Extract:    extractDatabaseCall,
			},
		},
	}
}

func extractAPICall(mt Match) (m.TestablePattern, bool) {
	method := "GET"

	call := mt.Group(1)
	if verb, found := strings.CutPrefix(call, "axios."); found {
		method = strings.ToUpper(verb)
	} else if opts := fetchMethodRe.FindStringSubmatch(window(mt.Source, mt.End, 300)); opts != nil {
		method = strings.ToUpper(opts[1])
	}

	return m.TestablePattern{
		Kind: m.PatternAPIIntegration,
		API: &m.APIEndpoint{
			Endpoint:     mt.Group(2),
			Method:       method,
			AuthRequired: authHintRe.MatchString(mt.Source),
		},
	}, true
}

func extractComponent(mt Match) (m.TestablePattern, bool) {
	name := mt.GroupOr(1, mt.Group(2))

	kind := "Module"

	switch {
	case reactHintRe.MatchString(mt.Source):
		kind = "React"
	case vueHintRe.MatchString(mt.Source):
		kind = "Vue"
	}

	deps := []string{}
	for _, imp := range importFromRe.FindAllStringSubmatch(mt.Source, -1) {
		deps = append(deps, imp[1])
	}

	return m.TestablePattern{
		Kind: m.PatternComponentIntegration,
		Component: &m.ComponentPattern{
			Name:         name,
			Kind:         kind,
			Dependencies: deps,
			Props:        componentProps(mt.Source, name),
		},
		Context: m.Context{ClassName: name},
	}, true
}

func componentProps(source, name string) []string {
	var raw string

	fnRe := regexp.MustCompile(fmt.Sprintf(propsFunctionTmpl, regexp.QuoteMeta(name)))
	if match := fnRe.FindStringSubmatch(source); match != nil {
		raw = match[1]
	} else if match := propTypesRe.FindStringSubmatch(source); match != nil {
		raw = match[1]
	}

	props := []string{}

	for _, part := range strings.Split(raw, ",") {
		prop, _, _ := strings.Cut(part, ":")
		prop, _, _ = strings.Cut(prop, "=")

		if prop = strings.TrimSpace(prop); prop != "" {
			props = append(props, prop)
		}
	}

	return props
}

func extractDatabaseCall(mt Match) (m.TestablePattern, bool) {
	target := mt.Group(1)
	if dbGlobals[target] {
		return m.TestablePattern{}, false
	}

	table := "unknown"
	if target != "Model" && target != "model" {
		table = strings.ToLower(target)
	}

	return m.TestablePattern{
		Kind: m.PatternDatabaseOperation,
		Database: &m.DatabasePattern{
			Operation:   operationFor(mt.Group(3)),
			Table:       table,
			Method:      mt.Group(2),
			Transaction: transactionRe.MatchString(mt.Source),
		},
	}, true
}

func operationFor(verb string) m.OperationKind {
	switch verb {
	case "create", "save":
		return m.OperationCreate
	case "find":
		return m.OperationRead
	case "update":
		return m.OperationUpdate
	case "delete", "remove", "destroy":
		return m.OperationDelete
	}

	return m.OperationQuery
}

func window(source string, from, size int) string {
	end := from + size
	if end > len(source) {
		end = len(source)
	}

	return source[from:end]
}
