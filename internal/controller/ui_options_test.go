package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithBatchMode()(cfg)
	if cfg.mode != ModeBatch {
		t.Fatalf("WithBatchMode() mode = %v, want %v", cfg.mode, ModeBatch)
	}

	WithFileMode()(cfg)
	if cfg.mode != ModeFile {
		t.Fatalf("WithFileMode() mode = %v, want %v", cfg.mode, ModeFile)
	}
}
