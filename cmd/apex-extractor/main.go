package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WangYihang/Apex-Extractor/internal/common"
	"github.com/WangYihang/Apex-Extractor/pkg/interface/cli"
	"github.com/WangYihang/Apex-Extractor/pkg/interface/presenter"
	"github.com/WangYihang/Apex-Extractor/pkg/metrics"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse command line flags
	config, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.Version {
		fmt.Println(common.PV.String())
		return
	}

	// Optionally expose Prometheus metrics for the duration of the run
	if config.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(config.MetricsAddr); err != nil {
				fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			}
		}()
	}

	// Assemble use case with all dependencies
	assembler := cli.NewAssembler(config)
	useCase := assembler.AssembleUseCase()

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, stopping after the current file...")
		cancel()
	}()

	if config.ShowDashboard {
		dashboard := presenter.NewDashboard()
		useCase.RegisterMetricsObserver(dashboard)

		p := tea.NewProgram(dashboard, tea.WithAltScreen())

		// Run extraction in background while the TUI owns the terminal
		go func() {
			if err := useCase.Execute(ctx); err != nil && err != context.Canceled {
				fmt.Fprintf(os.Stderr, "Extraction error: %v\n", err)
			}
			p.Quit()
		}()

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}

		// The alt screen swallowed the report, print the summary after exit
		fmt.Print(useCase.Summary())
	} else {
		if config.ShowProgress {
			reporter := presenter.NewProgressReporter(os.Stderr)
			useCase.RegisterMetricsObserver(reporter)
			defer reporter.Wait()
		}

		// Per-file failures are reported inside Execute and never abort
		// the batch; the process exits zero either way.
		if err := useCase.Execute(ctx); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "Extraction error: %v\n", err)
		}
	}
}
