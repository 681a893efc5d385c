package presenter

import (
	"io"
	"sync"
	"time"

	"github.com/WangYihang/Apex-Extractor/internal/common"
	"github.com/WangYihang/Apex-Extractor/pkg/domain/entity"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressReporter renders a progress bar across input files
type ProgressReporter struct {
	progress *mpb.Progress
	bar      *mpb.Bar
	lastTick time.Time

	nameMu  sync.Mutex
	current string
}

// NewProgressReporter creates a progress reporter writing to w
func NewProgressReporter(w io.Writer) *ProgressReporter {
	return &ProgressReporter{
		progress: mpb.New(mpb.WithOutput(w), mpb.WithWidth(64)),
	}
}

// OnMetricsUpdate implements application.MetricsObserver
func (r *ProgressReporter) OnMetricsUpdate(m *entity.Metrics) {
	r.nameMu.Lock()
	r.current = truncateName(m.CurrentFile)
	r.nameMu.Unlock()

	if r.bar == nil && m.TotalFiles > 0 {
		r.lastTick = time.Now()
		r.bar = r.progress.AddBar(int64(m.TotalFiles),
			mpb.PrependDecorators(
				decor.Any(func(decor.Statistics) string {
					r.nameMu.Lock()
					defer r.nameMu.Unlock()
					return r.current
				}, decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("[%d / %d]", decor.WCSyncWidth),
				decor.Percentage(decor.WCSyncSpace),
				decor.OnComplete(
					decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncSpace), "done",
				),
			),
		)
	}
}

// AddFileResult implements application.MetricsObserver
func (r *ProgressReporter) AddFileResult(entity.FileResult) {
	if r.bar == nil {
		return
	}
	r.bar.EwmaIncrement(time.Since(r.lastTick))
	r.lastTick = time.Now()
}

// Wait flushes the bar and waits for completion
func (r *ProgressReporter) Wait() {
	r.progress.Wait()
}

// truncateName shortens a file name to a fraction of the terminal width so
// the bar itself keeps room to render
func truncateName(name string) string {
	width := common.TerminalWidth / 4
	if width < 16 {
		width = 16
	}
	if len(name) <= width {
		return name
	}
	return name[:width-3] + "..."
}
