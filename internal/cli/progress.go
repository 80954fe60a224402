package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"sentilex/internal/usecase"
)

// newProgress returns a callback drawing a progress bar for the batch pass
// on w, or nil when disabled.
func newProgress(w io.Writer, enabled bool) usecase.ProgressFunc {
	if !enabled {
		return nil
	}

	var bar *progressbar.ProgressBar
	var startTime time.Time

	return func(processed, total int) {
		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionSetDescription("[cyan]Matching reviews[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}

		bar.Set(processed)

		if processed > 0 && processed < total {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-processed) / rate * float64(time.Second))
				bar.Describe(fmt.Sprintf("[cyan]Matching reviews[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

// runBatch runs the corpus-wide pass and times it.
func runBatch(s *session, progress usecase.ProgressFunc) (*usecase.MatchSet, time.Duration) {
	start := time.Now()
	set := s.batch.AnalyzeAll(s.corpus, progress)
	return set, time.Since(start)
}
