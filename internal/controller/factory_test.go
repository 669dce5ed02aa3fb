package controller

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_PicksImplementation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if ui, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Fatalf("NewUI(interactive) = %T, want *TUI", ui)
	}

	if ui, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Fatalf("NewUI(piped) = %T, want *SimpleUI", ui)
	}
}

func TestIsTTY(t *testing.T) {
	report, err := os.Create(filepath.Join(t.TempDir(), "report.txt"))
	if err != nil {
		t.Fatalf("create report file: %v", err)
	}
	defer report.Close()

	closed, err := os.Create(filepath.Join(t.TempDir(), "closed.txt"))
	if err != nil {
		t.Fatalf("create closed file: %v", err)
	}
	closed.Close()

	tests := []struct {
		name string
		w    io.Writer
		want bool
	}{
		{"buffer", &bytes.Buffer{}, false},
		{"discard", io.Discard, false},
		{"regular file", report, false},
		{"closed file", closed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTTY(tt.w); got != tt.want {
				t.Fatalf("IsTTY() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTTY_DevNullIsCharDevice(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("%s not available: %v", os.DevNull, err)
	}
	defer devNull.Close()

	if !IsTTY(devNull) {
		t.Fatalf("IsTTY(%s) = false, want true", os.DevNull)
	}
}
