package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/uft/internal/model"
)

// ReportRecord is the serialized form of a Report.
type ReportRecord struct {
	Source     string `json:"source" yaml:"source"`
	Language   string `json:"language,omitempty" yaml:"language,omitempty"`
	Test       string `json:"test" yaml:"test"`
	Status     string `json:"status" yaml:"status"`
	TestCount  int    `json:"test_count" yaml:"test_count"`
	Reason     string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	SourceHash string `json:"source_sha256,omitempty" yaml:"source_sha256,omitempty"`
}

// BatchDocument is the file written for a directory batch.
type BatchDocument struct {
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Generated   int            `json:"generated" yaml:"generated"`
	Skipped     int            `json:"skipped" yaml:"skipped"`
	Failed      int            `json:"failed" yaml:"failed"`
	TotalTests  int            `json:"total_tests" yaml:"total_tests"`
	Files       []ReportRecord `json:"files" yaml:"files"`
}

// ReportStore persists and retrieves batch reports. The encoding follows
// the file extension: .yaml and .yml are YAML, everything else is JSON.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) (BatchDocument, error)
}

type reportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{now: time.Now}
}

func (rs *reportStore) SaveReports(path m.Path, reports []m.Report) error {
	result := m.BatchResult{Reports: reports}
	doc := BatchDocument{
		GeneratedAt: rs.now().UTC(),
		Generated:   result.Count(m.FileGenerated),
		Skipped:     result.Count(m.FileSkipped),
		Failed:      result.Count(m.FileFailed),
		TotalTests:  result.TotalTests(),
		Files:       make([]ReportRecord, 0, len(reports)),
	}

	for _, r := range reports {
		record := ReportRecord{
			Source:     string(r.Source.Origin),
			Language:   r.Source.Language,
			Test:       string(r.Source.Test),
			Status:     string(r.Status),
			TestCount:  r.TestCount,
			Reason:     r.Reason,
			SourceHash: r.Hash,
		}
		if r.Error != nil {
			record.Error = r.Error.Error()
		}

		doc.Files = append(doc.Files, record)
	}

	var (
		data []byte
		err  error
	)

	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}

	if err != nil {
		return errors.Wrap(err, "failed to encode batch report")
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write batch report %s", path)
	}

	return nil
}

func (rs *reportStore) LoadReports(path m.Path) (BatchDocument, error) {
	// #nosec G304 - the report path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return BatchDocument{}, errors.Wrapf(err, "failed to read batch report %s", path)
	}

	var doc BatchDocument
	if isYAML(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}

	if err != nil {
		return BatchDocument{}, errors.Wrapf(err, "failed to decode batch report %s", path)
	}

	return doc, nil
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))

	return ext == ".yaml" || ext == ".yml"
}
