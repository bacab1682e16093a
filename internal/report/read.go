package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readFileLines reads filePath relative to sourceRoot and renders the
// [startLine, endLine] range (1-based, inclusive; 0 means open-ended)
// with each line prefixed by its 1-based number.
func readFileLines(sourceRoot, filePath string, startLine, endLine int) (string, error) {
	full := filepath.Join(sourceRoot, filePath)
	f, err := os.Open(full)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}
	defer f.Close()

	width := 1
	if endLine > 0 {
		width = len(strconv.Itoa(endLine))
	}

	var out strings.Builder
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if startLine > 0 && line < startLine {
			continue
		}
		if endLine > 0 && line > endLine {
			break
		}
		fmt.Fprintf(&out, "%*d  %s\n", width, line, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}
	return out.String(), nil
}
