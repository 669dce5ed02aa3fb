package domain

import (
	"path/filepath"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

// testSuffixes is the test file suffix per built-in language.
var testSuffixes = map[string]string{
	"go":         "_test.go",
	"java":       "Test.java",
	"python":     ".py",
	"rust":       ".rs",
	"javascript": ".test.js",
}

const fallbackSuffix = ".txt"

// TestSuffix returns the suffix of generated test files for a.
func TestSuffix(a LanguageAdapter) string {
	if a.Dynamic() {
		if ext := a.TestExtension(); ext != "" {
			return ext
		}

		return fallbackSuffix
	}

	if suffix, ok := testSuffixes[a.Language()]; ok {
		return suffix
	}

	return fallbackSuffix
}

// TestFileName is the base name of the test file generated for source.
func TestFileName(source m.Path, a LanguageAdapter) string {
	base := filepath.Base(string(source))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if a.Dynamic() {
		return stem + TestSuffix(a)
	}

	switch a.Language() {
	case "java":
		return templates.Title(stem) + "Test.java"
	case "javascript":
		if ext == ".ts" || ext == ".tsx" {
			return stem + ".test.ts"
		}

		return stem + ".test.js"
	case "python":
		return "test_" + stem + ".py"
	case "rust":
		return "test_" + stem + ".rs"
	case "go":
		return stem + "_test.go"
	}

	return stem + TestSuffix(a)
}

// testDirs is the directory, relative to the source, tests are placed in.
var testDirs = map[string]string{
	"java":       "test",
	"javascript": "__tests__",
	"python":     "tests",
	"rust":       "tests",
	"go":         "",
}

// TestPath places the test for source following the language convention.
func TestPath(source m.Path, a LanguageAdapter) m.Path {
	dir, ok := testDirs[a.Language()]
	if !ok || a.Dynamic() {
		dir = "tests"
	}

	return m.Path(filepath.Join(filepath.Dir(string(source)), dir, TestFileName(source, a)))
}

// OutputPath places the test for source directly under output.
func OutputPath(output string, source m.Path, a LanguageAdapter) m.Path {
	return m.Path(filepath.Join(output, TestFileName(source, a)))
}

// IgnoredDirs are never descended into during directory scans.
var IgnoredDirs = map[string]bool{
	"node_modules": true, "target": true, "build": true, "dist": true, "out": true,
	".git": true, ".svn": true, ".hg": true, "__pycache__": true, ".pytest_cache": true,
	"vendor": true, "deps": true, "_build": true, ".gradle": true, ".mvn": true,
	"bin": true, "obj": true,
}

// IgnoredFiles are skipped by name during directory scans.
var IgnoredFiles = map[string]bool{
	".gitignore": true, ".dockerignore": true, "Dockerfile": true, "README.md": true,
	"LICENSE": true, "CHANGELOG.md": true, "package-lock.json": true, "Cargo.lock": true,
}

// testIndicators mark a path component as belonging to tests.
var testIndicators = []string{"test", "tests", "spec", "specs", "__tests__", "Test", "Tests"}

// IsTestPath reports whether any component of rel contains a test indicator.
func IsTestPath(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		for _, indicator := range testIndicators {
			if strings.Contains(part, indicator) {
				return true
			}
		}
	}

	return false
}
