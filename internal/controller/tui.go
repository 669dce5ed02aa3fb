package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/uft/internal/model"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

func statusStyle(status m.FileStatus) lipgloss.Style {
	switch status {
	case m.FileGenerated:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case m.FileSkipped:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}
}

// TUI implements UI using Bubble Tea for batch progress and lipgloss for
// styled single file output. Tables are shared with SimpleUI.
type TUI struct {
	output io.Writer
	plain  *SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		output: cmd.OutOrStdout(),
		plain:  NewSimpleUI(cmd),
	}
}

// Start launches the progress program in batch mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.mode != ModeBatch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(newBatchModel(), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := p.Run(); err != nil {
			_, _ = fmt.Fprintf(t.output, "progress display error: %v\n", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress program and restores the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	p, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Quit()
	<-done
}

// Wait blocks until the progress program has exited.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// DisplayPatterns prints the detected patterns.
func (t *TUI) DisplayPatterns(path m.Path, language string, patterns []m.TestablePattern, format Format) error {
	return t.plain.DisplayPatterns(path, language, patterns, format)
}

// DisplayGenerated reports a single file generation with status colors.
func (t *TUI) DisplayGenerated(report m.Report) {
	status := statusStyle(report.Status).Render(string(report.Status))

	switch report.Status {
	case m.FileGenerated:
		t.printf("%s %s test cases for %s\n  %s %s\n", status,
			accentStyle.Render(fmt.Sprintf("%d", report.TestCount)),
			pathStyle.Render(string(report.Source.Origin)),
			mutedStyle.Render("->"),
			pathStyle.Render(string(report.Source.Test)))
	case m.FileSkipped:
		t.printf("%s %s: %s\n  %s\n", status,
			pathStyle.Render(string(report.Source.Origin)),
			report.Reason,
			mutedStyle.Render("use --force to overwrite "+string(report.Source.Test)))
	default:
		t.printf("%s %s: %v\n", status, pathStyle.Render(string(report.Source.Origin)), report.Error)
	}
}

// DisplayLanguages prints the registered languages.
func (t *TUI) DisplayLanguages(languages []m.LanguageInfo) {
	t.plain.DisplayLanguages(languages)
}

// DisplayBatchStart announces the batch to the progress program.
func (t *TUI) DisplayBatchStart(root m.Path, total int, parallel int) {
	t.send(batchStartMsg{root: string(root), total: total, parallel: parallel})
}

// DisplayFileResult forwards a per-file result to the progress program.
func (t *TUI) DisplayFileResult(report m.Report) {
	t.send(fileResultMsg{report: report})
}

// DisplayBatchSummary hands the final result to the progress program,
// which renders it and exits.
func (t *TUI) DisplayBatchSummary(result m.BatchResult) {
	t.send(batchDoneMsg{result: result})
}

// DisplayIntegration reports an integration suite with its requirements.
func (t *TUI) DisplayIntegration(report m.Report, suite m.TestSuite) {
	t.printf("%s %s integration tests for %s\n  %s %s\n",
		statusStyle(m.FileGenerated).Render(string(m.FileGenerated)),
		accentStyle.Render(fmt.Sprintf("%d", report.TestCount)),
		pathStyle.Render(string(report.Source.Origin)),
		mutedStyle.Render("->"),
		pathStyle.Render(string(report.Source.Test)))

	for _, section := range []struct {
		title string
		items []string
	}{
		{"Setup requirements", suite.SetupRequirements},
		{"Cleanup requirements", suite.CleanupRequirements},
	} {
		if len(section.items) == 0 {
			continue
		}

		t.printf("%s\n", titleStyle.Render(section.title))

		for _, item := range section.items {
			t.printf("  %s %s\n", mutedStyle.Render("•"), item)
		}
	}
}

// DisplayPluginFiles lists the scaffold files written for target.
func (t *TUI) DisplayPluginFiles(target string, files []m.Path) {
	t.printf("%s\n", titleStyle.Render(fmt.Sprintf("Created %s plugin", target)))

	for _, f := range files {
		t.printf("  %s\n", pathStyle.Render(string(f)))
	}
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
