// Package headless replays a text stream as keystrokes for non-interactive
// use, such as piping a transcript into the program.
package headless

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/verte-zerg/wordsprint/internal/model"
	"github.com/verte-zerg/wordsprint/internal/session"
	"github.com/verte-zerg/wordsprint/internal/stats"
)

// Runner drives one session from an input stream.
type Runner struct {
	engine *session.Engine
	logger *zap.Logger
}

// New returns a Runner over engine.
func New(engine *session.Engine, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{engine: engine, logger: logger}
}

// Run prints a fresh word list to out, then reads in rune by rune, feeding
// the growing buffer into the session like keystrokes. Newlines, tabs and
// carriage returns act as the separator. Reading stops when the session is
// complete or the stream ends; an incomplete session reports ok=false.
func (r *Runner) Run(in io.Reader, out io.Writer, wordCount int) (model.Result, bool, error) {
	s := r.engine.Begin(wordCount)
	if _, err := fmt.Fprintln(out, strings.Join(s.Words(), session.Separator)); err != nil {
		return model.Result{}, false, fmt.Errorf("failed to write word list: %w", err)
	}

	rr, ok := in.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(in)
	}
	s, err := r.replay(s, rr)
	if err != nil {
		return model.Result{}, false, err
	}
	result, ok := s.Result()
	if !ok {
		r.logger.Warn("input ended before the session was complete",
			zap.String("session_id", s.ID()),
			zap.Int("index", s.Index()),
			zap.Int("words", len(s.Words())),
		)
		if _, err := fmt.Fprintf(out, "Incomplete: %d/%d words typed.\n", s.Index(), len(s.Words())); err != nil {
			return model.Result{}, false, fmt.Errorf("failed to write output: %w", err)
		}
		return model.Result{}, false, nil
	}
	if _, err := fmt.Fprintln(out, ""); err != nil {
		return model.Result{}, false, fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderResult(out, result); err != nil {
		return model.Result{}, false, fmt.Errorf("failed to write result: %w", err)
	}
	if err := stats.RenderWordTable(out, result); err != nil {
		return model.Result{}, false, fmt.Errorf("failed to write word table: %w", err)
	}
	return result, true, nil
}

func (r *Runner) replay(s session.State, in io.RuneReader) (session.State, error) {
	for !s.Complete() {
		ch, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			// A trailing word without separator still counts once input ends.
			if s.Input() != "" {
				s = r.engine.Type(s, s.Input()+session.Separator)
			}
			return s, nil
		}
		if err != nil {
			return s, fmt.Errorf("failed to read input: %w", err)
		}
		s = r.engine.TypeRune(s, ch)
	}
	return s, nil
}
