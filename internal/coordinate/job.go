package coordinate

import (
	"os"

	"github.com/codelens/codelens/internal/discover"
	"github.com/codelens/codelens/internal/extract"
	"github.com/codelens/codelens/internal/model"
)

// fileJob is one supported file awaiting extraction.
type fileJob struct {
	RelPath  string // repo-relative, forward-slash
	FullPath string // root joined with RelPath, for reading off disk
}

// fileOutcome is what one worker produces for one job: either a
// successful extraction or a categorized Error row, never both.
type fileOutcome struct {
	FileRow model.File
	Facts   *extract.Result
	Err     *model.Error
}

// processJob reads, parses, and extracts one file, turning any of
// {file read, parser creation, parse failure} into an Error row instead
// of propagating — a faulty file must not abort the run.
func processJob(job fileJob, ex *extract.Extractor) fileOutcome {
	var sizeBytes int64
	if info, statErr := os.Stat(job.FullPath); statErr == nil {
		sizeBytes = info.Size()
	}

	source, readErr := os.ReadFile(job.FullPath)
	if readErr != nil {
		return fileOutcome{Err: newErrorRow(job.RelPath, model.ErrorFileRead, readErr, sizeBytes)}
	}

	result, err := ex.ExtractFile(job.RelPath, source)
	if err != nil {
		return fileOutcome{Err: newErrorRow(job.RelPath, categorize(err), err, int64(len(source)))}
	}

	size, lineCount, statErr := discover.FileStats(job.FullPath)
	if statErr != nil {
		size = int64(len(source))
		lineCount = 0
	}

	return fileOutcome{
		FileRow: model.File{
			Path:      job.RelPath,
			Name:      baseName(job.RelPath),
			Extension: extOf(job.RelPath),
			Language:  string(result.Tag),
			SizeBytes: size,
			LineCount: lineCount,
		},
		Facts: result,
	}
}
