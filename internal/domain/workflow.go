// Package domain holds the language registry, the orchestrator and the
// CLI-facing workflow.
package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/uft/internal/adapter"
	"github.com/mouse-blink/uft/internal/controller"
	"github.com/mouse-blink/uft/internal/domain/generators"
	"github.com/mouse-blink/uft/internal/domain/plugins"
	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

// GenerateArgs holds the arguments of a single file generation.
type GenerateArgs struct {
	Path m.Path
	// Output, when set, receives the test file instead of the
	// conventional location next to the source.
	Output m.Path
	Force  bool
}

// AnalyzeArgs holds the arguments of a pattern listing.
type AnalyzeArgs struct {
	Path   m.Path
	Format controller.Format
}

// DirArgs holds the arguments of a directory batch.
type DirArgs struct {
	Root     m.Path
	Parallel int
	Exclude  []string
	Force    bool
	// Report, when set, receives the per-file results as JSON or YAML.
	Report m.Path
}

// IntegrationArgs holds the arguments of an integration suite generation.
type IntegrationArgs struct {
	Path   m.Path
	Output m.Path
}

// GitRepoArgs holds the arguments of a repository batch. An empty Dir
// clones into a fresh temporary directory that is kept for inspection.
type GitRepoArgs struct {
	URL    string
	Branch string
	Dir    m.Path
	DirArgs
}

// PluginArgs holds the arguments of an editor plugin scaffold.
type PluginArgs struct {
	Target string
	Output m.Path
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Generate(args GenerateArgs) error
	Analyze(args AnalyzeArgs) error
	Languages() error
	Dir(ctx context.Context, args DirArgs) error
	Integration(args IntegrationArgs) error
	GitRepo(ctx context.Context, args GitRepoArgs) error
	Plugin(args PluginArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	gitAdapter  adapter.GitAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	gitAdapter adapter.GitAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		gitAdapter:  gitAdapter,
		reportStore: reportStore,
		ui:          ui,
		orch:        orch,
	}
}

func (w *workflow) Generate(args GenerateArgs) error {
	src, err := w.resolve(args.Path, args.Output)
	if err != nil {
		return err
	}

	report, err := w.generate(src, args.Force)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithFileMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayGenerated(report)

	return nil
}

func (w *workflow) Analyze(args AnalyzeArgs) error {
	content, err := w.fsAdapter.ReadFile(args.Path)
	if err != nil {
		return err
	}

	language, err := w.orch.DetectLanguage(string(args.Path))
	if err != nil {
		return err
	}

	patterns, err := w.orch.Analyze(string(args.Path), string(content))
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithFileMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayPatterns(args.Path, language, patterns, args.Format)
}

func (w *workflow) Languages() error {
	registry := w.orch.Registry()
	names := registry.Languages()
	infos := make([]m.LanguageInfo, 0, len(names))

	for _, name := range names {
		a, _ := registry.Adapter(name)
		infos = append(infos, m.LanguageInfo{
			Name:       name,
			Dynamic:    a.Dynamic(),
			Extensions: a.Extensions(),
			Frameworks: a.Frameworks(),
			TestFormat: TestSuffix(a),
			Coverage:   generators.CoverageTarget(name),
		})
	}

	if err := w.ui.Start(controller.WithFileMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayLanguages(infos)

	return nil
}

func (w *workflow) Dir(ctx context.Context, args DirArgs) error {
	sources, err := w.scan(args.Root, args.Exclude)
	if err != nil {
		return err
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	if err := w.ui.Start(controller.WithBatchMode()); err != nil {
		return err
	}

	w.ui.DisplayBatchStart(args.Root, len(sources), parallel)

	reports := make([]m.Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := w.generate(src, args.Force)
			if err != nil {
				logger.Logger.Warnw("generation failed",
					"path", src.Origin,
					"error", err,
				)

				report = m.Report{Source: src, Status: m.FileFailed, Error: err}
			}

			reports[i] = report
			w.ui.DisplayFileResult(report)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		w.ui.Close()

		return errors.Wrapf(err, "scan of %s interrupted", args.Root)
	}

	w.ui.DisplayBatchSummary(m.BatchResult{Reports: reports})
	w.ui.Close()
	w.ui.Wait()

	if args.Report != "" {
		return w.saveReports(args.Report, reports)
	}

	return nil
}

// saveReports fingerprints every source and persists the batch.
func (w *workflow) saveReports(path m.Path, reports []m.Report) error {
	for i := range reports {
		hash, err := w.fsAdapter.HashFile(reports[i].Source.Origin)
		if err != nil {
			logger.Logger.Debugw("failed to hash source", "path", reports[i].Source.Origin, "error", err)

			continue
		}

		reports[i].Hash = hash
	}

	if err := w.reportStore.SaveReports(path, reports); err != nil {
		return err
	}

	logger.Logger.Infow("batch report saved", "path", path, "files", len(reports))

	return nil
}

func (w *workflow) Integration(args IntegrationArgs) error {
	content, err := w.fsAdapter.ReadFile(args.Path)
	if err != nil {
		return err
	}

	suite, err := w.orch.Integration(string(args.Path), string(content))
	if err != nil {
		return err
	}

	output := args.Output
	if output == "" {
		output = "integration-tests"
	}

	base := filepath.Base(string(args.Path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	test := w.fsAdapter.JoinPath(string(output), stem+".integration.test.js")

	if err := w.fsAdapter.WriteFile(test, RenderFile(suite, args.Path)); err != nil {
		return err
	}

	report := m.Report{
		Source:    m.Source{Origin: args.Path, Language: suite.Language, Test: test},
		Status:    m.FileGenerated,
		TestCount: len(suite.TestCases),
	}

	if err := w.ui.Start(controller.WithFileMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayIntegration(report, suite)

	return nil
}

func (w *workflow) GitRepo(ctx context.Context, args GitRepoArgs) error {
	dir := args.Dir
	cleanup := false

	if dir == "" {
		tmp, err := w.fsAdapter.CreateTempDir("uft-" + adapter.RepoName(args.URL) + "-*")
		if err != nil {
			return err
		}

		dir = tmp
		cleanup = true
	}

	if err := w.gitAdapter.Clone(ctx, args.URL, args.Branch, dir); err != nil {
		if cleanup {
			if rmErr := w.fsAdapter.RemoveAll(dir); rmErr != nil {
				logger.Logger.Warnw("failed to remove clone directory", "dir", dir, "error", rmErr)
			}
		}

		return err
	}

	logger.Logger.Infow("repository cloned", "url", args.URL, "dir", dir)

	dirArgs := args.DirArgs
	dirArgs.Root = dir

	return w.Dir(ctx, dirArgs)
}

func (w *workflow) Plugin(args PluginArgs) error {
	registry := w.orch.Registry()
	names := registry.Languages()
	languages := make([]plugins.Language, 0, len(names))

	for _, name := range names {
		a, _ := registry.Adapter(name)
		languages = append(languages, plugins.Language{Name: name, Extensions: a.Extensions()})
	}

	files, err := plugins.Build(args.Target, languages)
	if err != nil {
		return err
	}

	output := args.Output
	if output == "" {
		output = "target/plugins"
	}

	written := make([]m.Path, 0, len(files))

	for _, f := range files {
		path := w.fsAdapter.JoinPath(string(output), filepath.FromSlash(f.Path))
		if err := w.fsAdapter.WriteFile(path, f.Content); err != nil {
			return err
		}

		written = append(written, path)
	}

	if err := w.ui.Start(controller.WithFileMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayPluginFiles(args.Target, written)

	return nil
}

// resolve maps path to a Source whose Test follows the language convention,
// or lands in output when one is given.
func (w *workflow) resolve(path, output m.Path) (m.Source, error) {
	language, err := w.orch.DetectLanguage(string(path))
	if err != nil {
		return m.Source{}, err
	}

	a, _ := w.orch.Registry().Adapter(language)

	test := TestPath(path, a)
	if output != "" {
		test = OutputPath(string(output), path, a)
	}

	return m.Source{Origin: path, Language: language, Test: test}, nil
}

// generate renders the suite for src and writes it. The file is fully
// rendered before anything touches the disk.
func (w *workflow) generate(src m.Source, force bool) (m.Report, error) {
	if !force && w.fsAdapter.Exists(src.Test) {
		logger.Logger.Debugw("test file exists, skipping", "path", src.Origin, "test", src.Test)

		return m.Report{Source: src, Status: m.FileSkipped, Reason: "test file already exists"}, nil
	}

	content, err := w.fsAdapter.ReadFile(src.Origin)
	if err != nil {
		return m.Report{}, err
	}

	suite, err := w.orch.Generate(string(src.Origin), string(content))
	if err != nil {
		return m.Report{}, err
	}

	if err := w.fsAdapter.WriteFile(src.Test, RenderFile(suite, src.Origin)); err != nil {
		return m.Report{}, err
	}

	return m.Report{Source: src, Status: m.FileGenerated, TestCount: len(suite.TestCases)}, nil
}

// scan walks root and selects files a registered language handles, skipping
// ignored directories, ignored files, test paths and excluded globs.
func (w *workflow) scan(root m.Path, exclude []string) ([]m.Source, error) {
	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return nil, errors.Wrap(err, "root path error")
	}

	if !info.IsDir() {
		return nil, errors.WithHint(
			errors.Newf("%s is not a directory", root),
			"use `uft generate` for single files",
		)
	}

	for _, glob := range exclude {
		if !doublestar.ValidatePattern(glob) {
			return nil, errors.Newf("invalid exclude pattern %q", glob)
		}
	}

	var sources []m.Source

	err = w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := w.fsAdapter.RelPath(root, m.Path(path))
		if err != nil {
			return err
		}

		slashed := filepath.ToSlash(string(rel))

		if info.IsDir() {
			if slashed != "." && (IgnoredDirs[info.Name()] || excluded(slashed, exclude)) {
				return adapter.SkipDir
			}

			return nil
		}

		if IgnoredFiles[info.Name()] || IsTestPath(slashed) || excluded(slashed, exclude) {
			return nil
		}

		src, err := w.resolve(m.Path(path), "")
		if err != nil {
			logger.Logger.Debugw("skipping unsupported file", "path", path)

			return nil
		}

		sources = append(sources, src)

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %s", root)
	}

	return sources, nil
}

func excluded(rel string, exclude []string) bool {
	for _, glob := range exclude {
		if ok, _ := doublestar.Match(glob, rel); ok {
			return true
		}
	}

	return false
}
