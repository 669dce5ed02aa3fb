package domain

import (
	"testing"

	m "github.com/mouse-blink/uft/internal/model"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, fileScope, ok := parseIgnoreDirective("// uft:ignore")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if fileScope {
		t.Fatalf("expected line scope")
	}
	if !r.all || r.kinds != nil {
		t.Fatalf("expected all=true and kinds=nil")
	}
}

func TestParseIgnoreDirective_Kinds(t *testing.T) {
	r, _, ok := parseIgnoreDirective("# uft:ignore Function, class ")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if r.all {
		t.Fatalf("expected all=false")
	}
	if len(r.kinds) != 2 {
		t.Fatalf("expected 2 kinds, got %d", len(r.kinds))
	}
	if !r.ignores(m.PatternFunction) || !r.ignores(m.PatternClass) {
		t.Fatalf("expected function and class to be ignored")
	}
	if r.ignores(m.PatternException) {
		t.Fatalf("did not expect exception to be ignored")
	}
}

func TestParseIgnoreDirective_BlockComment(t *testing.T) {
	r, _, ok := parseIgnoreDirective("/* uft:ignore api_integration */")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if !r.ignores(m.PatternAPIIntegration) || r.all {
		t.Fatalf("expected only api_integration to be ignored")
	}
}

func TestParseIgnoreDirective_FileScope(t *testing.T) {
	r, fileScope, ok := parseIgnoreDirective("-- uft:ignore-file")
	if !ok || !fileScope || !r.all {
		t.Fatalf("expected file scoped ignore-all, got ok=%v fileScope=%v rule=%+v", ok, fileScope, r)
	}
}

func TestParseIgnoreDirective_NotADirective(t *testing.T) {
	for _, text := range []string{"// regular comment", "// uft:ignored", "# uft:ignore-this"} {
		if _, _, ok := parseIgnoreDirective(text); ok {
			t.Fatalf("parseIgnoreDirective(%q) parsed a directive", text)
		}
	}
}

func TestBuildIgnoreIndex_LeadingAndTrailing(t *testing.T) {
	const src = "package p\n" +
		"\n" +
		"// uft:ignore\n" +
		"func skipped() {}\n" +
		"\n" +
		"func trailing() {} // uft:ignore function\n" +
		"func kept() {}\n"

	idx := buildIgnoreIndex(src)

	if !idx.file.empty() {
		t.Fatalf("did not expect a file rule")
	}

	if rule, ok := idx.line[4]; !ok || !rule.all {
		t.Fatalf("expected ignore-all on line 4, got %+v", idx.line)
	}

	if rule, ok := idx.line[6]; !ok || !rule.ignores(m.PatternFunction) {
		t.Fatalf("expected function ignore on line 6, got %+v", idx.line)
	}

	if _, ok := idx.line[7]; ok {
		t.Fatalf("did not expect a rule on line 7")
	}
}

func TestBuildIgnoreIndex_MergesRules(t *testing.T) {
	const src = "x = 1  # uft:ignore function\n" +
		"# uft:ignore-file class\n" +
		"# uft:ignore-file exception\n"

	idx := buildIgnoreIndex(src)

	if !idx.file.ignores(m.PatternClass) || !idx.file.ignores(m.PatternException) {
		t.Fatalf("expected class and exception in file rule, got %+v", idx.file)
	}

	if !idx.line[1].ignores(m.PatternFunction) {
		t.Fatalf("expected trailing rule on line 1")
	}
}

func TestFilterIgnored(t *testing.T) {
	const src = "def kept():\n" +
		"    pass\n" +
		"# uft:ignore function\n" +
		"def skipped():\n" +
		"    pass\n" +
		"class Model:  # uft:ignore function\n"

	patterns := []m.TestablePattern{
		{Kind: m.PatternFunction, Function: &m.FunctionPattern{Name: "kept"}, Location: m.SourceLocation{Line: 1}},
		{Kind: m.PatternFunction, Function: &m.FunctionPattern{Name: "skipped"}, Location: m.SourceLocation{Line: 4}},
		{Kind: m.PatternClass, Class: &m.ClassPattern{Name: "Model"}, Location: m.SourceLocation{Line: 6}},
	}

	got := filterIgnored("models.py", src, patterns)

	if len(got) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(got))
	}
	if got[0].Name() != "kept" || got[1].Name() != "Model" {
		t.Fatalf("unexpected patterns kept: %s, %s", got[0].Name(), got[1].Name())
	}
	if len(patterns) != 3 || patterns[1].Name() != "skipped" {
		t.Fatalf("input slice was modified")
	}
}

func TestFilterIgnored_NoDirectives(t *testing.T) {
	patterns := []m.TestablePattern{{Kind: m.PatternFunction, Function: &m.FunctionPattern{Name: "f"}}}

	got := filterIgnored("f.go", "func f() {}\n", patterns)
	if len(got) != 1 {
		t.Fatalf("expected patterns to be returned unchanged")
	}
}
