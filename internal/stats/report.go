// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/wordsprint/internal/model"
)

// RenderResult prints the headline numbers of a completed session.
func RenderResult(w io.Writer, r model.Result) error {
	if _, err := fmt.Fprintln(w, "Result"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Net WPM: %d\n", r.NetWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %d%%\n", r.Accuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words: %d/%d correct\n", r.CorrectWords, len(r.Words)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time: %s\n", formatElapsed(r.Elapsed())); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderWordTable prints every target word next to what was typed for it.
func RenderWordTable(w io.Writer, r model.Result) error {
	if len(r.Words) == 0 {
		_, err := fmt.Fprintln(w, "No words.")
		return err
	}
	headers := []string{"#", "Word", "Typed", "Status"}
	rows := make([][]string, 0, len(r.Words))
	for i, word := range r.Words {
		typed := ""
		status := "-"
		if i < len(r.Typed) {
			typed = r.Typed[i]
			status = "miss"
			if typed == word {
				status = "ok"
			}
		}
		if typed == "" {
			typed = "<empty>"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), word, typed, status})
	}
	lines := formatTable(headers, rows, map[int]bool{0: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderSummary prints an aggregate over the sessions completed in one run.
func RenderSummary(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No sessions completed.")
		return err
	}
	s := Summarize(results)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", s.Sessions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Words: %d\n", s.TotalWords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.1f\n", s.AvgWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", s.BestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.1f%%\n", s.AvgAccuracy); err != nil {
		return err
	}
	if len(results) > 1 {
		if _, err := fmt.Fprintf(w, "Trend: %s\n", Sparkline(WPMSeries(results))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
