package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/uft/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; nothing is interactive.
func (s *SimpleUI) Wait() {}

// patternReport is the document printed by the json and yaml formats.
type patternReport struct {
	File     string              `json:"file" yaml:"file"`
	Language string              `json:"language" yaml:"language"`
	Patterns []m.TestablePattern `json:"patterns" yaml:"patterns"`
}

// DisplayPatterns prints the detected patterns in the requested format.
func (s *SimpleUI) DisplayPatterns(path m.Path, language string, patterns []m.TestablePattern, format Format) error {
	if patterns == nil {
		patterns = []m.TestablePattern{}
	}

	doc := patternReport{File: string(path), Language: language, Patterns: patterns}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode patterns")
		}

		s.printf("%s\n", data)
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "failed to encode patterns")
		}

		s.printf("%s", data)
	case FormatTable, "":
		s.printf("%s (%s)\n\n%s", path, language, patternTable(patterns))
	default:
		return errors.WithHint(
			errors.Newf("unknown output format %q", format),
			"supported formats: table, json, yaml",
		)
	}

	return nil
}

func patternTable(patterns []m.TestablePattern) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Kind", "Name", "Line", "Details"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, p := range patterns {
		table.Append([]string{string(p.Kind), p.Name(), fmt.Sprintf("%d", p.Location.Line), describePattern(p)})
	}

	table.SetFooter([]string{"", "", "Total", fmt.Sprintf("%d patterns", len(patterns))})
	table.Render()

	return buf.String()
}

// describePattern renders the payload of p on one line.
func describePattern(p m.TestablePattern) string {
	switch {
	case p.Function != nil:
		sig := fmt.Sprintf("%s(%s)", p.Function.Name, strings.Join(p.Function.Parameters, ", "))
		if p.Function.ReturnType != "" {
			sig += " -> " + p.Function.ReturnType
		}

		return sig
	case p.Class != nil:
		return p.Class.Name
	case p.Form != nil:
		required := ""
		if p.Form.Required {
			required = ", required"
		}

		return fmt.Sprintf("%s (%s%s)", p.Form.Name, p.Form.Kind, required)
	case p.API != nil:
		auth := ""
		if p.API.AuthRequired {
			auth = " (auth)"
		}

		return fmt.Sprintf("%s %s%s", p.API.Method, p.API.Endpoint, auth)
	case p.Component != nil:
		return fmt.Sprintf("%s %s", p.Component.Kind, p.Component.Name)
	case p.Database != nil:
		return fmt.Sprintf("%s %s.%s", p.Database.Operation, p.Database.Table, p.Database.Method)
	}

	return ""
}

// DisplayGenerated reports the outcome of a single file generation.
func (s *SimpleUI) DisplayGenerated(report m.Report) {
	switch report.Status {
	case m.FileSkipped:
		s.printf("Skipped %s: %s (use --force to overwrite %s)\n", report.Source.Origin, report.Reason, report.Source.Test)
	case m.FileFailed:
		s.printf("Failed %s: %v\n", report.Source.Origin, report.Error)
	default:
		s.printf("Generated %d test cases for %s\n  -> %s\n", report.TestCount, report.Source.Origin, report.Source.Test)
	}
}

// DisplayLanguages prints the registered languages.
func (s *SimpleUI) DisplayLanguages(languages []m.LanguageInfo) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Language", "Type", "Extensions", "Frameworks", "Test Format", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	dynamic := 0

	for _, lang := range languages {
		kind := "Built-in"
		if lang.Dynamic {
			kind = "Dynamic"
			dynamic++
		}

		exts := make([]string, 0, len(lang.Extensions))
		for _, ext := range lang.Extensions {
			exts = append(exts, "."+ext)
		}

		table.Append([]string{
			lang.Name,
			kind,
			strings.Join(exts, ", "),
			strings.Join(lang.Frameworks, ", "),
			lang.TestFormat,
			fmt.Sprintf("%.0f%%", lang.Coverage),
		})
	}

	table.Render()

	s.printf("\n%s\n%d total languages (%d built-in, %d dynamic)\n",
		buf.String(), len(languages), len(languages)-dynamic, dynamic)
}

// DisplayBatchStart announces a directory batch.
func (s *SimpleUI) DisplayBatchStart(root m.Path, total int, parallel int) {
	s.printf("Scanning %s: %d files, %d worker(s)\n", root, total, parallel)
}

// DisplayFileResult prints one line per processed file.
func (s *SimpleUI) DisplayFileResult(report m.Report) {
	switch report.Status {
	case m.FileGenerated:
		s.printf("[%s] %s -> %s (%d tests)\n", report.Status, report.Source.Origin, report.Source.Test, report.TestCount)
	case m.FileSkipped:
		s.printf("[%s] %s: %s\n", report.Status, report.Source.Origin, report.Reason)
	default:
		s.printf("[%s] %s: %v\n", report.Status, report.Source.Origin, report.Error)
	}
}

// DisplayBatchSummary prints the per-status totals of a batch.
func (s *SimpleUI) DisplayBatchSummary(result m.BatchResult) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Status", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, status := range []m.FileStatus{m.FileGenerated, m.FileSkipped, m.FileFailed} {
		table.Append([]string{string(status), fmt.Sprintf("%d", result.Count(status))})
	}

	table.SetFooter([]string{"Total Tests", fmt.Sprintf("%d", result.TotalTests())})
	table.Render()

	s.printf("\n%s", buf.String())
}

// DisplayIntegration reports an integration suite with its requirements.
func (s *SimpleUI) DisplayIntegration(report m.Report, suite m.TestSuite) {
	s.printf("Generated %d integration tests for %s\n  -> %s\n", report.TestCount, report.Source.Origin, report.Source.Test)

	s.printList("Setup requirements", suite.SetupRequirements)
	s.printList("Cleanup requirements", suite.CleanupRequirements)
}

// DisplayPluginFiles lists the scaffold files written for target.
func (s *SimpleUI) DisplayPluginFiles(target string, files []m.Path) {
	s.printf("Created %s plugin:\n", target)

	for _, f := range files {
		s.printf("  %s\n", f)
	}
}

func (s *SimpleUI) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}

	s.printf("%s:\n", title)

	for _, item := range items {
		s.printf("  - %s\n", item)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
