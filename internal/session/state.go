// Package session implements the typing session state machine.
//
// A State is an immutable value. Every transition on Engine returns a new
// State and never mutates or shares the slices of the one it was given.
package session

import "time"

// Phase is the coarse position of a session in its lifecycle.
type Phase int

const (
	// NotStarted has no start time and index 0.
	NotStarted Phase = iota
	// InProgress has a start time and 0 <= index < len(words).
	InProgress
	// Complete has index == len(words).
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// CharStatus classifies one character of a target word.
type CharStatus int

const (
	Untyped CharStatus = iota
	Correct
	Incorrect
	Cursor
)

func (c CharStatus) String() string {
	switch c {
	case Untyped:
		return "untyped"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Cursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// State is one immutable snapshot of a typing session.
type State struct {
	id        string
	requested int
	words     []string
	typed     []string
	input     string
	startedAt time.Time
	endedAt   time.Time

	correctWords int
	correctChars int
	typedChars   int
	netWPM       int
	accuracy     int
}

// ID identifies the session for logging.
func (s State) ID() string { return s.id }

// Words returns a copy of the target word list.
func (s State) Words() []string { return cloneStrings(s.words) }

// Typed returns a copy of the submitted words.
func (s State) Typed() []string { return cloneStrings(s.typed) }

// Index is the position of the word currently being typed.
func (s State) Index() int { return len(s.typed) }

// Input is the in-progress buffer for the current word.
func (s State) Input() string { return s.input }

// Started reports whether the first keystroke has happened.
func (s State) Started() bool { return !s.startedAt.IsZero() }

// StartedAt is the instant of the first keystroke, zero when not started.
func (s State) StartedAt() time.Time { return s.startedAt }

// EndedAt is the instant of the final submission, zero until complete.
func (s State) EndedAt() time.Time { return s.endedAt }

// Complete reports whether every word has been submitted.
func (s State) Complete() bool { return len(s.words) > 0 && len(s.typed) == len(s.words) }

// NetWPM is zero until the session is complete.
func (s State) NetWPM() int { return s.netWPM }

// Accuracy is a percentage, zero until the session is complete.
func (s State) Accuracy() int { return s.accuracy }

// CorrectWords counts exact matches once complete.
func (s State) CorrectWords() int { return s.correctWords }

// Phase derives the lifecycle phase.
func (s State) Phase() Phase {
	switch {
	case s.Complete():
		return Complete
	case s.Started():
		return InProgress
	default:
		return NotStarted
	}
}

// WordStatus classifies each character of the word at index. Words before
// the current index are compared with what was submitted for them, the
// current word with the in-progress input. The first untyped character of
// the current word is the Cursor. An out-of-range index returns nil.
func (s State) WordStatus(index int) []CharStatus {
	if index < 0 || index >= len(s.words) {
		return nil
	}
	var typed []rune
	current := false
	switch {
	case index < len(s.typed):
		typed = []rune(s.typed[index])
	case index == len(s.typed):
		typed = []rune(s.input)
		current = true
	}
	target := []rune(s.words[index])
	out := make([]CharStatus, len(target))
	for i, r := range target {
		switch {
		case i < len(typed) && typed[i] == r:
			out[i] = Correct
		case i < len(typed):
			out[i] = Incorrect
		case current && i == len(typed):
			out[i] = Cursor
		default:
			out[i] = Untyped
		}
	}
	return out
}

// Snapshot is the read-only view handed to presentation layers.
type Snapshot struct {
	ID       string
	Phase    Phase
	Words    []string
	Index    int
	Input    string
	Statuses [][]CharStatus
	NetWPM   int
	Accuracy int
	Complete bool
}

// Snapshot builds a presentation view of the state.
func (s State) Snapshot() Snapshot {
	statuses := make([][]CharStatus, len(s.words))
	for i := range s.words {
		statuses[i] = s.WordStatus(i)
	}
	return Snapshot{
		ID:       s.id,
		Phase:    s.Phase(),
		Words:    s.Words(),
		Index:    s.Index(),
		Input:    s.input,
		Statuses: statuses,
		NetWPM:   s.netWPM,
		Accuracy: s.accuracy,
		Complete: s.Complete(),
	}
}

// Progress returns the share of submitted words in [0, 1].
func (s State) Progress() float64 {
	if len(s.words) == 0 {
		return 0
	}
	return float64(len(s.typed)) / float64(len(s.words))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
