package input

import (
	"bufio"
	"os"
	"strings"
)

// Stats counts the lines seen during a single Load
type Stats struct {
	Lines   int
	Skipped int
}

// Loader loads domain tokens from list files
type Loader struct{}

// NewLoader creates loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads one list file and returns the first whitespace-separated
// token of every non-blank, non-comment line
func (l *Loader) Load(filePath string) ([]string, Stats, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, Stats{}, err
	}
	defer file.Close()

	var tokens []string
	var stats Stats
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}

		token := line
		if fields := strings.Fields(line); len(fields) > 0 {
			token = fields[0]
		}
		tokens = append(tokens, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return tokens, stats, nil
}
