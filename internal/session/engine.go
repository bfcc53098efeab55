package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/wordsprint/internal/generator"
	"github.com/verte-zerg/wordsprint/internal/model"
	"github.com/verte-zerg/wordsprint/internal/stats"
	"github.com/verte-zerg/wordsprint/internal/wordlist"
)

// Separator submits the current word when it ends the input buffer.
const Separator = " "

// ErrSmallDictionary is returned when the dictionary cannot supply the
// longest random word list without repeats.
var ErrSmallDictionary = errors.New("dictionary too small")

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time { return f() }

// Engine performs session transitions. It owns the dictionary and the clock,
// random and ID collaborators. It is not safe for concurrent use.
type Engine struct {
	dict   []string
	gen    *generator.Generator
	clock  Clock
	newID  func() string
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithGenerator replaces the word sampler.
func WithGenerator(g *generator.Generator) Option {
	return func(e *Engine) { e.gen = g }
}

// WithIDFunc replaces the session ID source.
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine builds an Engine over dict. Duplicate words are dropped before
// sampling.
func NewEngine(dict []string, opts ...Option) (*Engine, error) {
	unique := wordlist.Unique(dict)
	if len(unique) < generator.MaxWords {
		return nil, fmt.Errorf("%w: %d distinct words, need %d", ErrSmallDictionary, len(unique), generator.MaxWords)
	}
	e := &Engine{
		dict:   unique,
		gen:    generator.New(),
		clock:  clockFunc(time.Now),
		newID:  uuid.NewString,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// DictionarySize is the number of distinct words available for sampling.
func (e *Engine) DictionarySize() int {
	return len(e.dict)
}

// Begin starts a fresh session. A wordCount of zero or less draws the length
// at random; a positive count is clamped to the dictionary size.
func (e *Engine) Begin(wordCount int) State {
	if wordCount < 0 {
		wordCount = 0
	}
	s := State{
		id:        e.newID(),
		requested: wordCount,
		words:     e.gen.Generate(e.dict, wordCount),
		typed:     []string{},
	}
	e.logger.Debug("session begun",
		zap.String("session_id", s.id),
		zap.Int("words", len(s.words)),
	)
	return s
}

// Reset discards s and begins again with the same requested word count.
func (e *Engine) Reset(s State) State {
	e.logger.Debug("session reset",
		zap.String("session_id", s.id),
		zap.Stringer("phase", s.Phase()),
		zap.Int("index", s.Index()),
	)
	return e.Begin(s.requested)
}

// Type handles one keystroke worth of input buffer. The first call on a
// not-started session starts the clock. A buffer ending with Separator
// submits the trimmed buffer and clears the input; any other buffer replaces
// the input verbatim. Complete sessions are returned unchanged.
func (e *Engine) Type(s State, buffer string) State {
	if s.Complete() || len(s.words) == 0 {
		return s
	}
	s = e.start(s)
	if strings.HasSuffix(buffer, Separator) {
		s = e.Submit(s, strings.TrimSpace(buffer))
		s.input = ""
		return s
	}
	s.input = buffer
	return s
}

// TypeRune feeds one character as if it were keyed at the end of the input
// box. Newlines, carriage returns and tabs act as Separator and are ignored
// while the input is empty.
func (e *Engine) TypeRune(s State, r rune) State {
	switch r {
	case '\n', '\r', '\t':
		if s.input == "" {
			return s
		}
		r = ' '
	}
	return e.Type(s, s.input+string(r))
}

// Submit appends word to the typed history and advances the index. When the
// last word is submitted the metrics are computed and frozen.
func (e *Engine) Submit(s State, word string) State {
	if s.Complete() || len(s.words) == 0 {
		return s
	}
	s = e.start(s)
	s.typed = append(cloneStrings(s.typed), word)
	s.input = ""
	if !s.Complete() {
		return s
	}

	s.endedAt = e.clock.Now()
	score := stats.Score(s.words, s.typed)
	s.correctWords = score.CorrectWords
	s.correctChars = score.CorrectChars
	s.typedChars = score.TypedChars
	s.netWPM, s.accuracy = stats.NetMetrics(score.CorrectChars, score.TypedChars, s.endedAt.Sub(s.startedAt))
	e.logger.Info("session complete",
		zap.String("session_id", s.id),
		zap.Int("words", len(s.words)),
		zap.Int("correct_words", s.correctWords),
		zap.Int("net_wpm", s.netWPM),
		zap.Int("accuracy", s.accuracy),
		zap.Duration("elapsed", s.endedAt.Sub(s.startedAt)),
	)
	return s
}

// Result converts a complete session into a model.Result. ok is false when
// the session is not complete.
func (s State) Result() (model.Result, bool) {
	if !s.Complete() {
		return model.Result{}, false
	}
	return model.Result{
		SessionID:    s.id,
		StartedAt:    s.startedAt,
		EndedAt:      s.endedAt,
		Words:        s.Words(),
		Typed:        s.Typed(),
		CorrectWords: s.correctWords,
		CorrectChars: s.correctChars,
		TypedChars:   s.typedChars,
		NetWPM:       s.netWPM,
		Accuracy:     s.accuracy,
	}, true
}

// start performs the NotStarted -> InProgress transition.
func (e *Engine) start(s State) State {
	if s.Started() {
		return s
	}
	s.startedAt = e.clock.Now()
	e.logger.Debug("session started", zap.String("session_id", s.id))
	return s
}
