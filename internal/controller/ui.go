// Package controller provides output adapters for displaying detected
// patterns and generation results.
package controller

import (
	m "github.com/mouse-blink/uft/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFile StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFileMode sets the UI to single file mode.
func WithFileMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFile
	}
}

// WithBatchMode sets the UI to directory batch mode.
func WithBatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
	}
}

// Format selects how analysis results are printed.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// UI defines the interface for displaying results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPatterns(path m.Path, language string, patterns []m.TestablePattern, format Format) error
	DisplayGenerated(report m.Report)
	DisplayLanguages(languages []m.LanguageInfo)
	DisplayBatchStart(root m.Path, total int, parallel int)
	DisplayFileResult(report m.Report)
	DisplayBatchSummary(result m.BatchResult)
	DisplayIntegration(report m.Report, suite m.TestSuite)
	DisplayPluginFiles(target string, files []m.Path)
}
