// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	// Words is the explicit word count; 0 selects the random length rule.
	Words int
	Theme string
	Seed  int64
	Plain bool
}

// Result captures a completed typing session.
type Result struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      time.Time
	Words        []string
	Typed        []string
	CorrectWords int
	CorrectChars int
	TypedChars   int
	NetWPM       int
	Accuracy     int
}

// Elapsed returns the session duration at millisecond resolution.
func (r Result) Elapsed() time.Duration {
	return r.EndedAt.Sub(r.StartedAt).Truncate(time.Millisecond)
}

// RunSummary aggregates the results completed during one program run.
type RunSummary struct {
	Sessions    int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
	TotalWords  int
}
