// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/wordsprint/internal/model"
)

const (
	charsPerWord = 5.0
	sparkChars   = " .:-=+*#%@"
)

// WordScore is the per-position comparison of typed words against targets.
type WordScore struct {
	CorrectWords int
	CorrectChars int
	TypedChars   int
}

// Score compares every typed entry with the target at the same position.
// Only exact matches count as correct; characters of partially correct words
// count toward TypedChars alone.
func Score(target, typed []string) WordScore {
	var s WordScore
	for i, word := range typed {
		n := utf8.RuneCountInString(word)
		s.TypedChars += n
		if i < len(target) && word == target[i] {
			s.CorrectWords++
			s.CorrectChars += n
		}
	}
	return s
}

// NetMetrics computes net WPM from fully correct characters and accuracy as a
// percentage of typed characters. Both are rounded to integers. A zero or
// negative elapsed time yields 0 WPM instead of a non-finite value.
func NetMetrics(correctChars, typedChars int, elapsed time.Duration) (netWPM, accuracy int) {
	ms := elapsed.Milliseconds()
	if ms > 0 {
		minutes := float64(ms) / 60000.0
		netWPM = roundFinite((float64(correctChars) / charsPerWord) / minutes)
	}
	if typedChars > 0 {
		accuracy = roundFinite(float64(correctChars) / float64(typedChars) * 100)
	}
	return netWPM, accuracy
}

func roundFinite(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// Summarize aggregates the results of one run.
func Summarize(results []model.Result) model.RunSummary {
	summary := model.RunSummary{Sessions: len(results)}
	if len(results) == 0 {
		return summary
	}
	var totalWPM, totalAcc float64
	for _, r := range results {
		totalWPM += float64(r.NetWPM)
		totalAcc += float64(r.Accuracy)
		summary.TotalWords += len(r.Words)
		if r.NetWPM > summary.BestWPM {
			summary.BestWPM = r.NetWPM
		}
	}
	count := float64(len(results))
	summary.AvgWPM = totalWPM / count
	summary.AvgAccuracy = totalAcc / count
	return summary
}

// WPMSeries returns the net WPM of each result in order.
func WPMSeries(results []model.Result) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = float64(r.NetWPM)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
