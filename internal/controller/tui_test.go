package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/uft/internal/model"
)

func newTestTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewTUI(cmd), &buf
}

func TestTUI_FileModeDoesNotStartProgram(t *testing.T) {
	tui, _ := newTestTUI()

	if err := tui.Start(WithFileMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if tui.program != nil {
		t.Fatal("file mode started a progress program")
	}

	// Without a program these are no-ops and must not block.
	tui.DisplayFileResult(m.Report{Status: m.FileGenerated})
	tui.Wait()
	tui.Close()
}

func TestTUI_DisplayGenerated(t *testing.T) {
	tui, buf := newTestTUI()

	tui.DisplayGenerated(m.Report{
		Source:    m.Source{Origin: "calc.py", Test: "test_calc.py"},
		Status:    m.FileGenerated,
		TestCount: 7,
	})

	for _, want := range []string{"generated", "7", "calc.py", "test_calc.py"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayGeneratedSkipped(t *testing.T) {
	tui, buf := newTestTUI()

	tui.DisplayGenerated(m.Report{
		Source: m.Source{Origin: "calc.py", Test: "test_calc.py"},
		Status: m.FileSkipped,
		Reason: "test file already exists",
	})

	for _, want := range []string{"skipped", "test file already exists", "use --force to overwrite test_calc.py"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\n%s", want, buf.String())
		}
	}
}

func TestTUI_DelegatesTables(t *testing.T) {
	tui, buf := newTestTUI()

	if err := tui.DisplayPatterns("calc.go", "go", samplePatterns(), FormatTable); err != nil {
		t.Fatalf("DisplayPatterns() error = %v", err)
	}

	tui.DisplayLanguages([]m.LanguageInfo{{Name: "rust", Extensions: []string{"rs"}, Coverage: 80}})

	for _, want := range []string{"calc.go (go)", "add(a, b) -> int", ".rs", "1 total languages"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayIntegrationAndPlugins(t *testing.T) {
	tui, buf := newTestTUI()

	tui.DisplayIntegration(
		m.Report{Source: m.Source{Origin: "api.js", Test: "it/api.integration.test.js"}, TestCount: 1},
		m.TestSuite{SetupRequirements: []string{"Start test server"}},
	)
	tui.DisplayPluginFiles("vscode", []m.Path{"out/vscode-uft/package.json"})

	output := buf.String()
	for _, want := range []string{"Setup requirements", "Start test server", "Created vscode plugin", "out/vscode-uft/package.json"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}

	if strings.Contains(output, "Cleanup requirements") {
		t.Fatalf("empty section printed\n%s", output)
	}
}

func TestTUI_BatchModeCloseReturns(t *testing.T) {
	tui, _ := newTestTUI()

	if err := tui.Start(WithBatchMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	tui.DisplayBatchStart("src", 1, 1)
	tui.DisplayFileResult(m.Report{Source: m.Source{Origin: "src/a.go"}, Status: m.FileGenerated, TestCount: 1})
	tui.DisplayBatchSummary(m.BatchResult{})

	closed := make(chan struct{})
	go func() {
		tui.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close() timed out")
	}
}
