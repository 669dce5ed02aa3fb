package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/uft/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return cmd, &buf
}

func samplePatterns() []m.TestablePattern {
	return []m.TestablePattern{
		{
			ID:       "p1",
			Kind:     m.PatternFunction,
			Function: &m.FunctionPattern{Name: "add", Parameters: []string{"a", "b"}, ReturnType: "int"},
			Location: m.SourceLocation{File: "calc.go", Line: 3, Column: 1},
		},
		{
			ID:       "p2",
			Kind:     m.PatternAPIIntegration,
			API:      &m.APIEndpoint{Endpoint: "/api/users", Method: "GET", AuthRequired: true},
			Location: m.SourceLocation{File: "calc.go", Line: 9, Column: 5},
		},
	}
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayPatterns_Table(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayPatterns("calc.go", "go", samplePatterns(), FormatTable); err != nil {
		t.Fatalf("DisplayPatterns() error = %v", err)
	}

	assertContains(t, buf.String(),
		"calc.go (go)",
		"function",
		"add(a, b) -> int",
		"GET /api/users (auth)",
		"2 PATTERNS",
	)
}

func TestSimpleUI_DisplayPatterns_JSON(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayPatterns("calc.go", "go", samplePatterns(), FormatJSON); err != nil {
		t.Fatalf("DisplayPatterns() error = %v", err)
	}

	var doc struct {
		File     string `json:"file"`
		Language string `json:"language"`
		Patterns []struct {
			Kind string `json:"pattern_type"`
		} `json:"patterns"`
	}

	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if doc.File != "calc.go" || doc.Language != "go" || len(doc.Patterns) != 2 {
		t.Fatalf("unexpected document %+v", doc)
	}

	if doc.Patterns[1].Kind != string(m.PatternAPIIntegration) {
		t.Fatalf("pattern kind = %q, want %q", doc.Patterns[1].Kind, m.PatternAPIIntegration)
	}
}

func TestSimpleUI_DisplayPatterns_YAMLEmpty(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.DisplayPatterns("empty.py", "python", nil, FormatYAML); err != nil {
		t.Fatalf("DisplayPatterns() error = %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}

	patterns, ok := doc["patterns"].([]interface{})
	if !ok || len(patterns) != 0 {
		t.Fatalf("patterns = %#v, want empty list", doc["patterns"])
	}
}

func TestSimpleUI_DisplayPatterns_UnknownFormat(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayPatterns("calc.go", "go", samplePatterns(), Format("xml"))
	if err == nil {
		t.Fatal("DisplayPatterns() error = nil, want error")
	}

	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestDescribePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern m.TestablePattern
		want    string
	}{
		{
			name:    "function without return",
			pattern: m.TestablePattern{Function: &m.FunctionPattern{Name: "run"}},
			want:    "run()",
		},
		{
			name:    "class",
			pattern: m.TestablePattern{Class: &m.ClassPattern{Name: "Account"}},
			want:    "Account",
		},
		{
			name:    "required form field",
			pattern: m.TestablePattern{Form: &m.FormField{Name: "email", Kind: m.FieldEmail, Required: true}},
			want:    "email (email, required)",
		},
		{
			name:    "component",
			pattern: m.TestablePattern{Component: &m.ComponentPattern{Name: "Header", Kind: "react"}},
			want:    "react Header",
		},
		{
			name: "database",
			pattern: m.TestablePattern{Database: &m.DatabasePattern{
				Operation: m.OperationCreate, Table: "User", Method: "create",
			}},
			want: "create User.create",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describePattern(tt.pattern); got != tt.want {
				t.Fatalf("describePattern() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayGenerated(t *testing.T) {
	source := m.Source{Origin: "calc.go", Language: "go", Test: "calc_test.go"}

	tests := []struct {
		name   string
		report m.Report
		want   string
	}{
		{
			name:   "generated",
			report: m.Report{Source: source, Status: m.FileGenerated, TestCount: 4},
			want:   "Generated 4 test cases for calc.go\n  -> calc_test.go\n",
		},
		{
			name:   "skipped",
			report: m.Report{Source: source, Status: m.FileSkipped, Reason: "test file already exists"},
			want:   "Skipped calc.go: test file already exists (use --force to overwrite calc_test.go)\n",
		},
		{
			name:   "failed",
			report: m.Report{Source: source, Status: m.FileFailed, Error: errors.New("boom")},
			want:   "Failed calc.go: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()
			NewSimpleUI(cmd).DisplayGenerated(tt.report)

			if buf.String() != tt.want {
				t.Fatalf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayLanguages(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayLanguages([]m.LanguageInfo{
		{Name: "go", Extensions: []string{"go"}, Frameworks: []string{"testing", "testify"}, TestFormat: "_test.go", Coverage: 85},
		{Name: "kotlin", Dynamic: true, Extensions: []string{"kt", "kts"}, Frameworks: []string{"junit5"}, TestFormat: "Test.kt", Coverage: 70},
	})

	assertContains(t, buf.String(),
		"go",
		"Built-in",
		".kt, .kts",
		"Dynamic",
		"testing, testify",
		"85%",
		"70%",
		"2 total languages (1 built-in, 1 dynamic)",
	)
}

func TestSimpleUI_BatchOutput(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	reports := []m.Report{
		{Source: m.Source{Origin: "a.go", Test: "a_test.go"}, Status: m.FileGenerated, TestCount: 3},
		{Source: m.Source{Origin: "b.go", Test: "b_test.go"}, Status: m.FileSkipped, Reason: "test file already exists"},
		{Source: m.Source{Origin: "c.go", Test: "c_test.go"}, Status: m.FileFailed, Error: errors.New("write failed")},
	}

	ui.DisplayBatchStart("src", len(reports), 2)

	for _, r := range reports {
		ui.DisplayFileResult(r)
	}

	ui.DisplayBatchSummary(m.BatchResult{Reports: reports})

	assertContains(t, buf.String(),
		"Scanning src: 3 files, 2 worker(s)",
		"[generated] a.go -> a_test.go (3 tests)",
		"[skipped] b.go: test file already exists",
		"[failed] c.go: write failed",
		"TOTAL TESTS",
	)
}

func TestSimpleUI_DisplayIntegration(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayIntegration(
		m.Report{Source: m.Source{Origin: "api.js", Test: "integration-tests/api.integration.test.js"}, TestCount: 2},
		m.TestSuite{
			SetupRequirements:   []string{"Start test server"},
			CleanupRequirements: []string{"Stop test server"},
		},
	)

	assertContains(t, buf.String(),
		"Generated 2 integration tests for api.js",
		"-> integration-tests/api.integration.test.js",
		"Setup requirements:\n  - Start test server",
		"Cleanup requirements:\n  - Stop test server",
	)
}

func TestSimpleUI_DisplayPluginFiles(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayPluginFiles("zed", []m.Path{"target/plugins/zed-uft/extension.toml"})

	want := "Created zed plugin:\n  target/plugins/zed-uft/extension.toml\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestSimpleUI_LifecycleIsNoop(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	if err := ui.Start(WithBatchMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Wait()
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
