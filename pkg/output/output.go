package output

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Writer writes sorted apex domain lists
type Writer struct {
	outputDir string
}

// NewWriter creates writer
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Dir returns the output directory
func (w *Writer) Dir() string {
	return w.outputDir
}

// EnsureDir creates the output directory if absent
func (w *Writer) EnsureDir() error {
	return os.MkdirAll(w.outputDir, 0755)
}

// PathFor returns the output path for an input file, keeping its base name
func (w *Writer) PathFor(inputPath string) string {
	return filepath.Join(w.outputDir, filepath.Base(inputPath))
}

// WriteSorted writes the set members ascending, one per line, overwriting
// any existing file
func (w *Writer) WriteSorted(path string, domains mapset.Set[string]) error {
	sorted := domains.ToSlice()
	sort.Strings(sorted)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, domain := range sorted {
		if _, err := writer.WriteString(domain + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}
