package lang

import "github.com/codelens/codelens/internal/util"

// defaultPoolSize returns the parser pool size for one language.
//
// This MUST match the parse coordinator's worker pool size: if the
// worker pool is larger, excess workers simply block waiting for a
// parser that will never come free any sooner.
func defaultPoolSize() int {
	return util.GetOptimalPoolSize()
}
