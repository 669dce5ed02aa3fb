package model

// Path represents a file system path.
type Path string

// Source is a file selected for generation together with where its test goes.
type Source struct {
	Origin   Path
	Language string
	Test     Path
}

// FileStatus describes what happened to a source file during a batch run.
type FileStatus string

// Available FileStatus values.
const (
	FileGenerated FileStatus = "generated"
	FileSkipped   FileStatus = "skipped"
	FileFailed    FileStatus = "failed"
)
