package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/uft/internal/model"
)

func updateBatch(t *testing.T, bm batchModel, msg tea.Msg) (batchModel, tea.Cmd) {
	t.Helper()

	model, cmd := bm.Update(msg)

	next, ok := model.(batchModel)
	if !ok {
		t.Fatalf("Update() returned %T, want batchModel", model)
	}

	return next, cmd
}

func TestBatchModel_InitialView(t *testing.T) {
	bm := newBatchModel()

	if !strings.Contains(bm.View(), "Scanning") {
		t.Fatalf("View() = %q, want scanning placeholder", bm.View())
	}

	if bm.Init() == nil {
		t.Fatal("Init() = nil, want spinner tick")
	}
}

func TestBatchModel_TracksProgress(t *testing.T) {
	bm := newBatchModel()
	bm, _ = updateBatch(t, bm, batchStartMsg{root: "src", total: 2, parallel: 4})

	bm, cmd := updateBatch(t, bm, fileResultMsg{report: m.Report{
		Source:    m.Source{Origin: "src/a.go", Test: "src/a_test.go"},
		Status:    m.FileGenerated,
		TestCount: 5,
	}})
	if cmd != nil {
		t.Fatal("fileResultMsg returned a command")
	}

	if bm.completed != 1 || bm.tests != 5 || bm.counts[m.FileGenerated] != 1 {
		t.Fatalf("unexpected state completed=%d tests=%d counts=%v", bm.completed, bm.tests, bm.counts)
	}

	if got := bm.percent(); got != 0.5 {
		t.Fatalf("percent() = %v, want 0.5", got)
	}

	view := bm.View()
	for _, want := range []string{"src", "Files: 1 / 2", "Workers: 4", "Tests: 5", "src/a.go"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestBatchModel_KeepsRecentWindow(t *testing.T) {
	bm := newBatchModel()
	bm, _ = updateBatch(t, bm, batchStartMsg{root: "src", total: 10, parallel: 1})

	for i := 0; i < recentResults+3; i++ {
		bm, _ = updateBatch(t, bm, fileResultMsg{report: m.Report{Status: m.FileSkipped, Reason: "excluded"}})
	}

	if len(bm.recent) != recentResults {
		t.Fatalf("len(recent) = %d, want %d", len(bm.recent), recentResults)
	}
}

func TestBatchModel_DoneQuitsWithSummary(t *testing.T) {
	bm := newBatchModel()
	bm, _ = updateBatch(t, bm, batchStartMsg{root: "src", total: 2, parallel: 1})

	failed := m.Report{
		Source: m.Source{Origin: "src/b.go"},
		Status: m.FileFailed,
		Error:  errors.New("permission denied"),
	}
	bm, _ = updateBatch(t, bm, fileResultMsg{report: failed})

	bm, cmd := updateBatch(t, bm, batchDoneMsg{result: m.BatchResult{Reports: []m.Report{
		{Status: m.FileGenerated, TestCount: 3},
		failed,
	}}})

	if cmd == nil {
		t.Fatal("batchDoneMsg returned nil command, want tea.Quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("batchDoneMsg command does not quit")
	}

	view := bm.View()
	for _, want := range []string{"uft ▸ src", "generated 1", "failed 1", "Tests: 3", "permission denied"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestBatchModel_WindowResizeClampsProgress(t *testing.T) {
	bm := newBatchModel()
	bm, _ = updateBatch(t, bm, tea.WindowSizeMsg{Width: 10, Height: 20})

	if bm.progress.Width != 20 {
		t.Fatalf("progress width = %d, want 20", bm.progress.Width)
	}

	if bm.lineWidth() != 10 {
		t.Fatalf("lineWidth() = %d, want 10", bm.lineWidth())
	}
}

func TestBatchModel_QuitKey(t *testing.T) {
	bm := newBatchModel()

	_, cmd := updateBatch(t, bm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned nil command, want tea.Quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q command does not quit")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 6, "trunc…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
