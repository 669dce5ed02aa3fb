package domain

import (
	"strings"

	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

const (
	ignoreDirective     = "uft:ignore"
	ignoreFileDirective = "uft:ignore-file"
)

// commentMarkers are the line and block comment openers of the supported
// languages.
var commentMarkers = []string{"//", "/*", "#", "--", "*"}

type ignoreRule struct {
	all   bool
	kinds map[m.PatternKind]struct{}
}

func (r ignoreRule) ignores(kind m.PatternKind) bool {
	if r.all {
		return true
	}

	if len(r.kinds) == 0 {
		return false
	}

	_, ok := r.kinds[kind]

	return ok
}

func (r ignoreRule) empty() bool {
	return !r.all && len(r.kinds) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.kinds = nil

		return
	}

	if dst.all || len(src.kinds) == 0 {
		return
	}

	if dst.kinds == nil {
		dst.kinds = make(map[m.PatternKind]struct{}, len(src.kinds))
	}

	for kind := range src.kinds {
		dst.kinds[kind] = struct{}{}
	}
}

// parseIgnoreDirective reads a directive from the comment text that starts
// at a comment marker. fileScope reports an uft:ignore-file directive.
func parseIgnoreDirective(commentText string) (rule ignoreRule, fileScope bool, ok bool) {
	s := strings.TrimSpace(commentText)

	for _, marker := range commentMarkers {
		if strings.HasPrefix(s, marker) {
			s = strings.TrimSpace(strings.TrimPrefix(s, marker))

			break
		}
	}

	s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))

	var rest string

	switch {
	case strings.HasPrefix(s, ignoreFileDirective):
		fileScope = true
		rest = strings.TrimPrefix(s, ignoreFileDirective)
	case strings.HasPrefix(s, ignoreDirective):
		rest = strings.TrimPrefix(s, ignoreDirective)
	default:
		return ignoreRule{}, false, false
	}

	// uft:ignored and similar words are not directives.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return ignoreRule{}, false, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, fileScope, true
	}

	parts := strings.Split(rest, ",")
	rule = ignoreRule{kinds: make(map[m.PatternKind]struct{}, len(parts))}

	for _, part := range parts {
		kind := strings.ToLower(strings.TrimSpace(part))
		if kind == "" {
			continue
		}

		rule.kinds[m.PatternKind(kind)] = struct{}{}
	}

	if len(rule.kinds) == 0 {
		rule.all = true
		rule.kinds = nil
	}

	return rule, fileScope, true
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

// buildIgnoreIndex collects the directives of content. A directive on a
// line of its own applies to the next line; a trailing one applies to its
// own line. Lines are 1-based.
func buildIgnoreIndex(content string) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}

	if !strings.Contains(content, ignoreDirective) {
		return idx
	}

	for i, text := range strings.Split(content, "\n") {
		pos := strings.Index(text, ignoreDirective)
		if pos < 0 {
			continue
		}

		start := commentStart(text[:pos])
		if start < 0 {
			continue
		}

		rule, fileScope, ok := parseIgnoreDirective(text[start:])
		if !ok {
			continue
		}

		if fileScope {
			mergeIgnoreRule(&idx.file, rule)

			continue
		}

		target := i + 1
		if strings.TrimSpace(text[:start]) == "" {
			target = i + 2
		}

		current := idx.line[target]
		mergeIgnoreRule(&current, rule)
		idx.line[target] = current
	}

	return idx
}

// commentStart returns the offset of the last comment marker in prefix
// that is followed only by whitespace, or -1.
func commentStart(prefix string) int {
	trimmed := strings.TrimRight(prefix, " \t")

	for _, marker := range commentMarkers {
		if strings.HasSuffix(trimmed, marker) {
			return len(trimmed) - len(marker)
		}
	}

	return -1
}

func (idx ignoreIndex) ignores(p m.TestablePattern) bool {
	if idx.file.ignores(p.Kind) {
		return true
	}

	return idx.line[p.Location.Line].ignores(p.Kind)
}

// filterIgnored drops the patterns suppressed by uft:ignore directives in
// content.
func filterIgnored(path, content string, patterns []m.TestablePattern) []m.TestablePattern {
	idx := buildIgnoreIndex(content)
	if idx.file.empty() && len(idx.line) == 0 {
		return patterns
	}

	kept := patterns[:0:0]

	for _, p := range patterns {
		if idx.ignores(p) {
			logger.Logger.Debugw("pattern ignored by directive",
				"path", path,
				"line", p.Location.Line,
				"kind", p.Kind,
				"name", p.Name(),
			)

			continue
		}

		kept = append(kept, p)
	}

	return kept
}
