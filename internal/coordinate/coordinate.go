// Package coordinate implements the parse coordinator (component D): it
// runs discovery, pre-compiles pattern bundles once per language, then
// parses and extracts files in parallel, turning per-file failures into
// Error rows instead of aborting the run.
package coordinate

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/codelens/codelens/internal/columnar"
	"github.com/codelens/codelens/internal/discover"
	"github.com/codelens/codelens/internal/extract"
	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/lang/queries"
	"github.com/codelens/codelens/internal/model"
	"github.com/codelens/codelens/internal/util"
)

// Options configures one extraction run.
type Options struct {
	Root       string
	OutputDir  string
	Languages  []lang.Tag // empty means every supported language
	IgnoreFile string     // optional, YAML-or-plain glob list
	NumWorkers int        // 0 = util.GetOptimalPoolSize()
}

// Summary is the stderr-reported outcome of a run.
type Summary struct {
	FilesDiscovered int
	FilesSupported  int
	FilesIndexed    int
	FilesFailed     int
	Symbols         int
	Imports         int
	Comments        int
	Duration        time.Duration
}

// Run executes one full extraction: discover, pre-compile, parse in
// parallel, merge, write. An empty opts.Languages selects every
// supported language. The total run fails only on an unreadable root,
// an unreadable ignore file, a pattern bundle that does not compile, or
// an unwritable output directory — per-file failures become Error rows.
func Run(opts Options, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	tags := opts.Languages
	if len(tags) == 0 {
		tags = lang.AllTags()
	}

	var ignorePatterns []string
	if opts.IgnoreFile != "" {
		patterns, err := discover.LoadIgnoreFile(opts.IgnoreFile)
		if err != nil {
			return nil, fmt.Errorf("loading ignore file: %w", err)
		}
		ignorePatterns = patterns
	}

	logger.Info("starting extraction run", "root", opts.Root)
	walked, err := discover.Walk(opts.Root, ignorePatterns)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	supported := discover.FilterByLanguage(walked.Supported, tags)

	logger.Info("file discovery complete",
		"supported", len(supported), "unsupported", len(walked.Unsupported))

	parsers := lang.NewParserManager(logger)
	defer parsers.Close()
	qm := queries.NewManager(parsers, logger)
	defer qm.Close()

	if err := qm.Precompile(tags); err != nil {
		return nil, fmt.Errorf("pre-compiling pattern bundles: %w", err)
	}

	ex := extract.New(parsers, qm, logger)

	jobs := make([]fileJob, len(supported))
	for i, rel := range supported {
		jobs[i] = fileJob{RelPath: rel, FullPath: filepath.Join(opts.Root, rel)}
	}

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = util.GetOptimalPoolSize()
	}
	pool := newWorkerPool(numWorkers, ex, logger)
	outcomes := pool.run(jobs)

	var files []model.File
	var symbols []model.Symbol
	var imports []model.Import
	var comments []model.Comment
	var errs []model.Error

	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, *o.Err)
			logger.Warn("file processing failed", "file", o.Err.FilePath, "error_type", o.Err.ErrorType)
			continue
		}
		files = append(files, o.FileRow)
		symbols = append(symbols, o.Facts.Symbols...)
		imports = append(imports, o.Facts.Imports...)
		comments = append(comments, o.Facts.Comments...)
	}

	for _, rel := range walked.Unsupported {
		full := filepath.Join(opts.Root, rel)
		size, lineCount, statErr := discover.FileStats(full)
		if statErr != nil {
			lineCount = 0
		}
		files = append(files, model.File{
			Path:      rel,
			Name:      baseName(rel),
			Extension: extOf(rel),
			Language:  "unsupported",
			SizeBytes: size,
			LineCount: lineCount,
		})
	}

	if err := columnar.WriteAll(opts.OutputDir, files, symbols, imports, comments, errs); err != nil {
		return nil, fmt.Errorf("writing tables: %w", err)
	}

	summary := &Summary{
		FilesDiscovered: len(walked.Supported) + len(walked.Unsupported),
		FilesSupported:  len(supported),
		FilesIndexed:    len(supported) - len(errs),
		FilesFailed:     len(errs),
		Symbols:         len(symbols),
		Imports:         len(imports),
		Comments:        len(comments),
		Duration:        time.Since(start),
	}
	logger.Info("extraction run complete",
		"files_indexed", summary.FilesIndexed, "files_failed", summary.FilesFailed,
		"symbols", summary.Symbols, "imports", summary.Imports, "comments", summary.Comments,
		"duration", summary.Duration)

	return summary, nil
}
