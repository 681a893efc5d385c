package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Config holds all application configuration
type Config struct {
	// Input/Output
	InputDir  string `short:"i" long:"input-dir" description:"Directory containing domain list files (default: <exedir>/../platforms)"`
	OutputDir string `short:"o" long:"output-dir" description:"Directory for apex domain lists (default: <exedir>/../platforms_apex)"`
	Extension string `long:"extension" description:"Input file extension" default:".txt"`

	// Dedup estimate
	BloomFilterSize uint64  `long:"bloom-size" description:"Bloom filter size for the cross-file distinct estimate" default:"1000000"`
	BloomFilterFP   float64 `long:"bloom-fp" description:"Bloom filter false positive rate" default:"0.01"`

	// Real bloom filter size (uint)
	RealBloomFilterSize uint

	// Observability
	MetricsAddr string `long:"metrics-addr" description:"Expose Prometheus metrics on this address (e.g. :2112)"`

	// UI
	ShowDashboard bool `long:"dashboard" description:"Show interactive TUI dashboard"`
	ShowProgress  bool `long:"progress" description:"Show a progress bar while processing"`

	Version bool `short:"v" long:"version" description:"Print version information and exit"`
}

// ParseFlags parses command line flags
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	parser := flags.NewParser(cfg, flags.Default)
	parser.Usage = "[OPTIONS]"

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			// Help has been printed by the library, exit cleanly
			os.Exit(0)
		}
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset directories with the conventional layout and
// converts raw flag values
func (c *Config) ApplyDefaults() {
	inputDir, outputDir := DefaultDirs()
	if c.InputDir == "" {
		c.InputDir = inputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = outputDir
	}
	c.RealBloomFilterSize = uint(c.BloomFilterSize)
}

// DefaultDirs returns the conventional platforms directories: siblings of
// the directory containing the executable, one level up. Falls back to the
// working directory when the executable path is unavailable.
func DefaultDirs() (string, string) {
	base := "."
	if exe, err := os.Executable(); err == nil {
		base = filepath.Dir(exe)
	}
	parent := filepath.Dir(base)
	return filepath.Join(parent, "platforms"), filepath.Join(parent, "platforms_apex")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with '.', got %q", c.Extension)
	}

	if c.BloomFilterSize == 0 {
		return fmt.Errorf("bloom filter size must be > 0")
	}

	if c.BloomFilterFP <= 0 || c.BloomFilterFP >= 1 {
		return fmt.Errorf("bloom filter false positive rate must be between 0 and 1, got %f", c.BloomFilterFP)
	}

	if c.ShowDashboard && c.ShowProgress {
		return fmt.Errorf("--dashboard and --progress are mutually exclusive")
	}

	return nil
}
