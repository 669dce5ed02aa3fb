package controller

import (
	m "github.com/mouse-blink/uft/internal/model"
)

// Message types.
type batchStartMsg struct {
	root     string
	total    int
	parallel int
}

type fileResultMsg struct {
	report m.Report
}

type batchDoneMsg struct {
	result m.BatchResult
}
