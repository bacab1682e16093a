package discover

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mmapThreshold is the size above which FileStats maps the file instead
// of reading it into a []byte.
const mmapThreshold = 256 * 1024

// FileStats returns a file's size and newline count, used to populate
// the files table for both supported and unsupported files. On a read
// failure the caller is expected to zero the line count rather than
// fail the whole run.
func FileStats(path string) (sizeBytes int64, lineCount int64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		return 0, 0, nil
	}

	if size < mmapThreshold {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return size, 0, fmt.Errorf("reading %s: %w", path, readErr)
		}
		return size, countLines(data), nil
	}

	mapped, mapErr := mmap.Map(file, mmap.RDONLY, 0)
	if mapErr != nil {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return size, 0, fmt.Errorf("mmap and fallback read both failed for %s: %w", path, readErr)
		}
		return size, countLines(data), nil
	}
	defer mapped.Unmap()
	return size, countLines(mapped), nil
}

func countLines(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	count := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		count++
	}
	return count
}
