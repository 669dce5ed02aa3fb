package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the progress TUI for interactive terminals and the plain
// table output everywhere else, so piped uft output stays greppable.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if !interactive {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd)
}

// IsTTY reports whether w is a character device. Buffers, pipes and
// regular files are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
