package presenter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/WangYihang/Apex-Extractor/pkg/domain/entity"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dashboard is a TUI dashboard for extraction progress
type Dashboard struct {
	metrics     *entity.Metrics
	recentFiles []string // Recent per-file results
	progressBar progress.Model
	width       int
	height      int
	startTime   time.Time
	mu          sync.RWMutex
}

type tickMsg time.Time

// NewDashboard creates a new TUI dashboard
func NewDashboard() *Dashboard {
	return &Dashboard{
		metrics:     &entity.Metrics{},
		progressBar: progress.New(progress.WithDefaultGradient()),
		startTime:   time.Now(),
	}
}

// Init initializes the dashboard
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

// Update handles dashboard updates
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c":
			return d, tea.Quit
		}

	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.progressBar.Width = msg.Width - 4
		return d, nil

	case tickMsg:
		return d, tickCmd()
	}

	return d, nil
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.width == 0 {
		return "Initializing..."
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var sections []string

	header := d.renderHeader()
	sections = append(sections, header)
	headerHeight := lipgloss.Height(header)

	bar := d.renderProgressBar()
	sections = append(sections, bar)
	barHeight := lipgloss.Height(bar)

	footer := d.renderFooter()
	footerHeight := lipgloss.Height(footer)

	availableHeight := d.height - headerHeight - barHeight - footerHeight
	if availableHeight < 0 {
		availableHeight = 0
	}

	halfWidth := d.width / 2
	leftWidth := halfWidth
	rightWidth := d.width - leftWidth

	row := lipgloss.JoinHorizontal(
		lipgloss.Top,
		d.renderStats(leftWidth, availableHeight),
		d.renderRecentFiles(rightWidth, availableHeight),
	)
	sections = append(sections, row)

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// OnMetricsUpdate implements application.MetricsObserver
func (d *Dashboard) OnMetricsUpdate(metrics *entity.Metrics) {
	d.mu.Lock()
	d.metrics = metrics
	d.mu.Unlock()
}

// AddFileResult implements application.MetricsObserver
func (d *Dashboard) AddFileResult(result entity.FileResult) {
	line := fmt.Sprintf("%s: %d", result.InputPath, result.UniqueCount)
	if result.Err != nil {
		line = fmt.Sprintf("%s: failed (%v)", result.InputPath, result.Err)
	}

	d.mu.Lock()
	d.recentFiles = append(d.recentFiles, line)
	if len(d.recentFiles) > 50 {
		d.recentFiles = d.recentFiles[len(d.recentFiles)-50:]
	}
	d.mu.Unlock()
}

func (d *Dashboard) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Padding(0, 1)

	timeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999999"))

	elapsed := time.Since(d.startTime)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60

	var timeStr string
	if minutes > 0 {
		timeStr = fmt.Sprintf("%dm %ds", minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%ds", seconds)
	}

	title := titleStyle.Render("🌐 Apex Extractor")
	timeInfo := timeStyle.Render(fmt.Sprintf(" Running: %s | Time: %s", timeStr, time.Now().Format("15:04:05")))

	return title + timeInfo
}

func (d *Dashboard) renderProgressBar() string {
	var pct float64
	if d.metrics.TotalFiles > 0 {
		pct = float64(d.metrics.DoneFiles) / float64(d.metrics.TotalFiles)
	}

	barStyle := lipgloss.NewStyle().Padding(0, 2)
	return barStyle.Render(d.progressBar.ViewAs(pct))
}

func (d *Dashboard) renderStats(width, height int) string {
	statStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#874BFD")).
		Padding(1, 2).
		Width(width - 2).  // Adjust for border
		Height(height - 2) // Adjust for border

	stats := []string{
		"📊 Extraction Statistics",
		"",
		fmt.Sprintf("Files:             %d / %d", d.metrics.DoneFiles, d.metrics.TotalFiles),
		fmt.Sprintf("Failed Files:      %d", d.metrics.FailedFiles),
		fmt.Sprintf("Lines Read:        %d", d.metrics.LinesRead),
		fmt.Sprintf("Lines Skipped:     %d", d.metrics.LinesSkipped),
		fmt.Sprintf("Domains Resolved:  %d", d.metrics.DomainsResolved),
		fmt.Sprintf("Unique Written:    %d", d.metrics.UniqueWritten),
		fmt.Sprintf("Distinct (approx): %d", d.metrics.ApproxDistinct),
	}

	if d.metrics.CurrentFile != "" {
		stats = append(stats,
			"",
			fmt.Sprintf("Current File:      %s", d.metrics.CurrentFile),
		)
	}

	elapsed := time.Since(d.startTime).Seconds()
	if elapsed > 0 {
		lineRate := float64(d.metrics.LinesRead) / elapsed
		stats = append(stats,
			"",
			fmt.Sprintf("Line Rate:         %.1f lines/s", lineRate),
		)
	}

	return statStyle.Render(strings.Join(stats, "\n"))
}

func (d *Dashboard) renderRecentFiles(width, height int) string {
	recentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Padding(1, 2).
		Width(width - 2).  // Adjust for border
		Height(height - 2) // Adjust for border

	recentCount := len(d.recentFiles)
	recentCopy := make([]string, recentCount)
	copy(recentCopy, d.recentFiles)

	lines := []string{
		"📁 Recent Files",
		"",
	}

	if recentCount == 0 {
		lines = append(lines, "No files processed yet...")
	} else {
		// Height - 2 (border) - 2 (padding) - 2 (title + empty line)
		maxShow := height - 6
		if maxShow < 0 {
			maxShow = 0
		}

		start := 0
		if recentCount > maxShow {
			start = recentCount - maxShow
		}

		for i := start; i < recentCount; i++ {
			lines = append(lines, fmt.Sprintf("  • %s", recentCopy[i]))
		}
	}

	return recentStyle.Render(strings.Join(lines, "\n"))
}

func (d *Dashboard) renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Padding(1, 0)

	return footerStyle.Render("Press 'q' or 'Ctrl+C' to quit")
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*500, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard
func (d *Dashboard) Run() error {
	p := tea.NewProgram(d, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
