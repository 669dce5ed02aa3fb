package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/uft/internal/model"
)

const recentResults = 6

// batchModel renders the progress of a directory batch.
type batchModel struct {
	width    int
	spinner  spinner.Model
	progress progress.Model

	root      string
	total     int
	parallel  int
	completed int
	counts    map[m.FileStatus]int
	tests     int
	recent    []m.Report
	failures  []m.Report

	started  bool
	finished bool
}

func newBatchModel() batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return batchModel{
		spinner:  s,
		progress: prog,
		counts:   make(map[m.FileStatus]int),
	}
}

func (bm batchModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width

		bm.progress.Width = bm.width - 8
		if bm.progress.Width < 20 {
			bm.progress.Width = 20
		}

		return bm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		}

		return bm, nil

	case spinner.TickMsg:
		if bm.finished {
			return bm, nil
		}

		var cmd tea.Cmd

		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd

	case batchStartMsg:
		bm.root = msg.root
		bm.total = msg.total
		bm.parallel = msg.parallel
		bm.started = true

		return bm, nil

	case fileResultMsg:
		return bm.handleFileResult(msg), nil

	case batchDoneMsg:
		bm.finished = true
		bm.counts = map[m.FileStatus]int{
			m.FileGenerated: msg.result.Count(m.FileGenerated),
			m.FileSkipped:   msg.result.Count(m.FileSkipped),
			m.FileFailed:    msg.result.Count(m.FileFailed),
		}
		bm.tests = msg.result.TotalTests()

		return bm, tea.Quit
	}

	return bm, nil
}

func (bm batchModel) handleFileResult(msg fileResultMsg) batchModel {
	bm.completed++
	bm.counts[msg.report.Status]++
	bm.tests += msg.report.TestCount

	bm.recent = append(bm.recent, msg.report)
	if len(bm.recent) > recentResults {
		bm.recent = bm.recent[len(bm.recent)-recentResults:]
	}

	if msg.report.Status == m.FileFailed {
		bm.failures = append(bm.failures, msg.report)
	}

	return bm
}

func (bm batchModel) percent() float64 {
	if bm.total == 0 {
		return 1
	}

	return float64(bm.completed) / float64(bm.total)
}

func (bm batchModel) View() string {
	if !bm.started {
		return bm.spinner.View() + " Scanning…\n"
	}

	if bm.finished {
		return bm.viewSummary()
	}

	return bm.viewProgress()
}

func (bm batchModel) viewProgress() string {
	header := fmt.Sprintf("%s %s %s",
		bm.spinner.View(),
		titleStyle.Render("uft"),
		pathStyle.Render(truncateToWidth(bm.root, bm.lineWidth()-8)),
	)

	summary := fmt.Sprintf("Files: %s / %s  •  Workers: %s  •  Tests: %s",
		accentStyle.Render(fmt.Sprintf("%d", bm.completed)),
		accentStyle.Render(fmt.Sprintf("%d", bm.total)),
		accentStyle.Render(fmt.Sprintf("%d", bm.parallel)),
		accentStyle.Render(fmt.Sprintf("%d", bm.tests)),
	)

	lines := make([]string, 0, len(bm.recent))
	for _, r := range bm.recent {
		lines = append(lines, bm.resultLine(r))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		summary,
		bm.progress.ViewAs(bm.percent()),
		strings.Join(lines, "\n"),
		mutedStyle.Render("Press q to hide progress"),
	) + "\n"
}

func (bm batchModel) viewSummary() string {
	counts := fmt.Sprintf("%s %s  •  %s %s  •  %s %s  •  Tests: %s",
		statusStyle(m.FileGenerated).Render("generated"),
		accentStyle.Render(fmt.Sprintf("%d", bm.counts[m.FileGenerated])),
		statusStyle(m.FileSkipped).Render("skipped"),
		accentStyle.Render(fmt.Sprintf("%d", bm.counts[m.FileSkipped])),
		statusStyle(m.FileFailed).Render("failed"),
		accentStyle.Render(fmt.Sprintf("%d", bm.counts[m.FileFailed])),
		accentStyle.Render(fmt.Sprintf("%d", bm.tests)),
	)

	parts := []string{
		titleStyle.Render("uft ▸ " + bm.root),
		counts,
	}

	for _, r := range bm.failures {
		parts = append(parts, bm.resultLine(r))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)) + "\n"
}

func (bm batchModel) resultLine(r m.Report) string {
	status := statusStyle(r.Status).Width(10).Render(string(r.Status))
	detail := string(r.Source.Test)

	switch r.Status {
	case m.FileSkipped:
		detail = r.Reason
	case m.FileFailed:
		if r.Error != nil {
			detail = r.Error.Error()
		}
	}

	line := fmt.Sprintf("%s  %s", r.Source.Origin, detail)

	return status + " " + pathStyle.Render(truncateToWidth(line, bm.lineWidth()-11))
}

func (bm batchModel) lineWidth() int {
	if bm.width <= 0 {
		return 80
	}

	return bm.width
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
