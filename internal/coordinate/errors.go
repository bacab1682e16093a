package coordinate

import (
	"errors"
	"path/filepath"

	"github.com/codelens/codelens/internal/lang"
	"github.com/codelens/codelens/internal/model"
)

// categorize maps an extraction error to one of the three error_type
// values model.Error supports, via errors.Is against the parser layer's sentinels.
// Anything else (query evaluation failures) is recorded as parse_failure,
// the closest-fitting category — extraction past the parse step is
// still "the parse didn't yield usable facts" from the coordinator's
// point of view.
func categorize(err error) model.ErrorType {
	switch {
	case errors.Is(err, lang.ErrParserCreation):
		return model.ErrorParserCreation
	case errors.Is(err, lang.ErrParseFailure):
		return model.ErrorParseFailure
	default:
		return model.ErrorParseFailure
	}
}

func newErrorRow(relPath string, errType model.ErrorType, err error, sizeBytes int64) *model.Error {
	tag := lang.DetectTag(relPath)
	return &model.Error{
		FilePath:     relPath,
		FileName:     baseName(relPath),
		Extension:    extOf(relPath),
		Language:     string(tag),
		ErrorType:    errType,
		ErrorMessage: err.Error(),
		SizeBytes:    sizeBytes,
	}
}

func baseName(relPath string) string {
	return filepath.Base(relPath)
}

func extOf(relPath string) string {
	return filepath.Ext(relPath)
}
