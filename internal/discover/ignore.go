package discover

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadIgnoreFile reads the `--ignore-file` pattern list, accepting either
// a YAML sequence of strings or a plain gitignore-style line list (one
// glob per line, blank lines and `#` comments ignored) — whichever the
// file actually is, tried in that order.
func LoadIgnoreFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}

	var patterns []string
	if yamlErr := yaml.Unmarshal(data, &patterns); yamlErr == nil && len(patterns) > 0 {
		return patterns, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
