// Package term drives a session from a line-oriented terminal: one command
// per line on the input, a redrawn frame on the output after each change.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MichaelDuPlessis/game-of-life/internal/core"
	"github.com/MichaelDuPlessis/game-of-life/internal/render"
	pcore "github.com/MichaelDuPlessis/game-of-life/pkg/core"
)

const clearScreen = "\x1b[H\x1b[2J"

// frameInterval is how often the run loop polls the tick controller.
const frameInterval = time.Second / 60

// Command is a single keyboard action.
type Command byte

// Commands are the first character of an input line.
const (
	CmdStep    Command = 'n'
	CmdReset   Command = 'r'
	CmdReseed  Command = 's'
	CmdPause   Command = 'p'
	CmdQuit    Command = 'q'
	CmdUnknown Command = 0
)

// ParseCommand maps an input line to a command. Only the first non-space
// character matters.
func ParseCommand(line string) Command {
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return CmdUnknown
	}
	switch c := Command(line[0]); c {
	case CmdStep, CmdReset, CmdReseed, CmdPause, CmdQuit:
		return c
	}
	return CmdUnknown
}

// Shell renders a session to out and applies commands read from in.
type Shell struct {
	sess     *core.Session
	in       io.Reader
	out      io.Writer
	renderer render.TextRenderer
	ticker   *core.FixedStep
	paused   bool
	newSeed  func() int64
}

// New returns a shell stepping sess at tps generations per second while
// running.
func New(sess *core.Session, in io.Reader, out io.Writer, tps int, paused bool) *Shell {
	return &Shell{
		sess:     sess,
		in:       in,
		out:      out,
		renderer: render.DefaultText(),
		ticker:   core.NewFixedStep(tps),
		paused:   paused,
		newSeed:  pcore.ClockSeed,
	}
}

// Paused reports whether timed stepping is suspended.
func (s *Shell) Paused() bool { return s.paused }

// Apply performs the action for c. Each command triggers at most one session
// operation. It reports whether the shell should exit.
func (s *Shell) Apply(c Command) (quit bool) {
	switch c {
	case CmdStep:
		s.sess.Step()
	case CmdReset:
		s.sess.Reset(s.sess.Seed())
	case CmdReseed:
		s.sess.Reset(s.newSeed())
	case CmdPause:
		s.paused = !s.paused
		if !s.paused {
			s.ticker.Reset()
		}
	case CmdQuit:
		return true
	}
	return false
}

// Draw clears the terminal and writes the grid and a status line.
func (s *Shell) Draw() error {
	if _, err := io.WriteString(s.out, clearScreen); err != nil {
		return err
	}
	if err := s.renderer.Render(s.out, s.sess.Grid()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "%s\n[n]ext [p]ause [r]eset [s]eed [q]uit\n", s.sess.Status(s.paused))
	return err
}

// Run draws the initial frame, then alternates between input commands and
// timed generations until the input ends, a quit command arrives or ctx is
// cancelled.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := s.Draw(); err != nil {
		return err
	}
	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			c := ParseCommand(line)
			if c == CmdUnknown {
				continue
			}
			if s.Apply(c) {
				return nil
			}
			if err := s.Draw(); err != nil {
				return err
			}
		case <-frames.C:
			if s.paused || !s.ticker.ShouldStep() {
				continue
			}
			s.sess.Step()
			if err := s.Draw(); err != nil {
				return err
			}
		}
	}
}

// RunHeadless advances sess by n generations and writes the final grid and
// status without any terminal control sequences.
func RunHeadless(sess *core.Session, n int, out io.Writer) error {
	for i := 0; i < n; i++ {
		sess.Step()
	}
	if err := render.DefaultText().Render(out, sess.Grid()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, sess.Status(true))
	return err
}
