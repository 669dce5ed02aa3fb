package adapter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/uft/internal/model"
)

func sampleReports() []m.Report {
	return []m.Report{
		{
			Source:    m.Source{Origin: "src/calc.py", Language: "python", Test: "src/tests/test_calc.py"},
			Status:    m.FileGenerated,
			TestCount: 4,
			Hash:      "abc123",
		},
		{
			Source: m.Source{Origin: "src/app.js", Language: "javascript", Test: "src/__tests__/app.test.js"},
			Status: m.FileSkipped,
			Reason: "test file already exists",
		},
		{
			Source: m.Source{Origin: "src/Main.java", Language: "java", Test: "src/test/MainTest.java"},
			Status: m.FileFailed,
			Error:  errors.New("permission denied"),
		},
	}
}

func fixedStore() *reportStore {
	return &reportStore{now: func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}}
}

func TestReportStore_SaveReports_JSON(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "reports", "batch.json"))

	if err := fixedStore().SaveReports(path, sampleReports()); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}

	var doc BatchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, data)
	}

	if doc.Generated != 1 || doc.Skipped != 1 || doc.Failed != 1 || doc.TotalTests != 4 {
		t.Fatalf("unexpected totals: %+v", doc)
	}

	if len(doc.Files) != 3 {
		t.Fatalf("expected 3 records, got %d", len(doc.Files))
	}

	if doc.Files[0].SourceHash != "abc123" || doc.Files[0].Test != "src/tests/test_calc.py" {
		t.Fatalf("unexpected first record: %+v", doc.Files[0])
	}

	if doc.Files[2].Error != "permission denied" {
		t.Fatalf("expected error text, got %q", doc.Files[2].Error)
	}

	if !doc.GeneratedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %v", doc.GeneratedAt)
	}
}

func TestReportStore_SaveReports_YAML(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "batch.yml"))

	if err := fixedStore().SaveReports(path, sampleReports()); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("report is not YAML: %v", err)
	}

	if raw["total_tests"] != 4 {
		t.Fatalf("total_tests = %v, want 4", raw["total_tests"])
	}
}

func TestReportStore_LoadReports_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"batch.json", "batch.yaml"} {
		path := m.Path(filepath.Join(t.TempDir(), name))
		store := fixedStore()

		if err := store.SaveReports(path, sampleReports()); err != nil {
			t.Fatalf("%s: SaveReports returned error: %v", name, err)
		}

		doc, err := store.LoadReports(path)
		if err != nil {
			t.Fatalf("%s: LoadReports returned error: %v", name, err)
		}

		if len(doc.Files) != 3 || doc.Files[1].Reason != "test file already exists" {
			t.Fatalf("%s: unexpected document %+v", name, doc)
		}
	}
}

func TestReportStore_LoadReports_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewReportStore().LoadReports(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	if err == nil {
		t.Fatalf("expected error for missing report")
	}
}

func TestReportStore_SaveReports_Empty(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "empty.json"))

	if err := NewReportStore().SaveReports(path, nil); err != nil {
		t.Fatalf("SaveReports returned error: %v", err)
	}

	doc, err := NewReportStore().LoadReports(path)
	if err != nil {
		t.Fatalf("LoadReports returned error: %v", err)
	}

	if len(doc.Files) != 0 || doc.TotalTests != 0 {
		t.Fatalf("expected empty document, got %+v", doc)
	}
}
