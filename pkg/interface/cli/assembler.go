package cli

import (
	"github.com/WangYihang/Apex-Extractor/pkg/application"
	"github.com/WangYihang/Apex-Extractor/pkg/dedup"
	"github.com/WangYihang/Apex-Extractor/pkg/domain"
	"github.com/WangYihang/Apex-Extractor/pkg/input"
	"github.com/WangYihang/Apex-Extractor/pkg/output"
)

// Assembler assembles all components for the application
type Assembler struct {
	config *Config
}

// NewAssembler creates a new assembler
func NewAssembler(config *Config) *Assembler {
	return &Assembler{config: config}
}

// AssembleUseCase assembles the extract use case with all dependencies
func (a *Assembler) AssembleUseCase() *application.ExtractUseCase {
	resolver := domain.NewResolver()
	loader := input.NewLoader()
	writer := output.NewWriter(a.config.OutputDir)
	seen := dedup.NewFilter(a.config.RealBloomFilterSize, a.config.BloomFilterFP)

	return application.NewExtractUseCase(application.Config{
		InputDir:  a.config.InputDir,
		Extension: a.config.Extension,
		Quiet:     a.config.ShowDashboard,
	}, resolver, loader, writer, seen)
}
