package model

import (
	"github.com/cockroachdb/errors"
)

// Error kinds surfaced by the pipeline. Callers wrap them with context and
// match with errors.Is.
var (
	// ErrUnsupportedLanguage is returned for an extension no adapter handles.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNoExtension is returned for a path without an extension.
	ErrNoExtension = errors.New("file has no extension")
	// ErrInvalidRegex is returned when a detection rule does not compile.
	ErrInvalidRegex = errors.New("invalid regex")
	// ErrInvalidLanguageConfig is returned when a language config fails validation.
	ErrInvalidLanguageConfig = errors.New("invalid language config")
	// ErrTemplateNotFound is returned for an unregistered template name.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrTemplateRender is returned when a template fails to parse or execute.
	ErrTemplateRender = errors.New("template render error")
	// ErrUnknownPlugin is returned for an unsupported editor plugin target.
	ErrUnknownPlugin = errors.New("unknown plugin target")
	// ErrUnknownFramework is returned when a framework is not offered by a language.
	ErrUnknownFramework = errors.New("unknown test framework")
)
