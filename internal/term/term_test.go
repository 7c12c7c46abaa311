package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MichaelDuPlessis/game-of-life/internal/core"
	"github.com/MichaelDuPlessis/game-of-life/pkg/life"
)

func blinker(t *testing.T) *core.Session {
	t.Helper()
	g, err := life.WithInitial(5, 5, []life.Cell{
		life.Dead, life.Dead, life.Dead, life.Dead, life.Dead,
		life.Dead, life.Dead, life.Alive, life.Dead, life.Dead,
		life.Dead, life.Dead, life.Alive, life.Dead, life.Dead,
		life.Dead, life.Dead, life.Alive, life.Dead, life.Dead,
		life.Dead, life.Dead, life.Dead, life.Dead, life.Dead,
	})
	if err != nil {
		t.Fatalf("WithInitial: %v", err)
	}
	return core.FromGrid(g, 42)
}

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"n":      CmdStep,
		"  N  ":  CmdStep,
		"next":   CmdStep,
		"r":      CmdReset,
		"s":      CmdReseed,
		"p":      CmdPause,
		"q":      CmdQuit,
		"":       CmdUnknown,
		"x":      CmdUnknown,
		"\t\t  ": CmdUnknown,
	}
	for in, want := range cases {
		if got := ParseCommand(in); got != want {
			t.Fatalf("ParseCommand(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyCommands(t *testing.T) {
	sess := blinker(t)
	sh := New(sess, strings.NewReader(""), &bytes.Buffer{}, 10, true)
	sh.newSeed = func() int64 { return 99 }

	if sh.Apply(CmdStep) {
		t.Fatal("step requested quit")
	}
	if sess.Generation() != 1 || sess.Grid().Get(1, 2) != life.Alive {
		t.Fatalf("step did not advance the blinker: gen %d", sess.Generation())
	}

	sh.Apply(CmdPause)
	if sh.Paused() {
		t.Fatal("pause did not toggle")
	}

	sh.Apply(CmdReseed)
	if sess.Seed() != 99 || sess.Generation() != 0 {
		t.Fatalf("reseed: seed %d gen %d", sess.Seed(), sess.Generation())
	}
	before := sess.Grid().Clone()
	sh.Apply(CmdStep)
	sh.Apply(CmdReset)
	if !sess.Grid().Equal(before) {
		t.Fatal("reset with the current seed did not restore the board")
	}

	if !sh.Apply(CmdQuit) {
		t.Fatal("quit did not request exit")
	}
}

func TestResumeRestartsTickInterval(t *testing.T) {
	sh := New(blinker(t), strings.NewReader(""), &bytes.Buffer{}, 1, true)
	sh.Apply(CmdPause)
	if sh.Paused() {
		t.Fatal("pause did not toggle to running")
	}
	if sh.ticker.ShouldStep() {
		t.Fatal("resuming stepped without waiting a full tick")
	}
}

func TestRunProcessesInputUntilQuit(t *testing.T) {
	sess := blinker(t)
	var out bytes.Buffer
	sh := New(sess, strings.NewReader("n\nbogus\nn\nq\nn\n"), &out, 10, true)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Generation() != 2 {
		t.Fatalf("generation %d, want 2", sess.Generation())
	}
	if got := strings.Count(out.String(), clearScreen); got != 3 {
		t.Fatalf("drew %d frames, want 3", got)
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	sess := blinker(t)
	sh := New(sess, strings.NewReader("n\n"), &bytes.Buffer{}, 10, true)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Generation() != 1 {
		t.Fatalf("generation %d, want 1", sess.Generation())
	}
}

func TestRunHeadless(t *testing.T) {
	sess := blinker(t)
	var out bytes.Buffer
	if err := RunHeadless(sess, 3, &out); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 5 rows and a status line:\n%s", len(lines), out.String())
	}
	if lines[2] != " ███ " {
		t.Fatalf("row 2 = %q, want the horizontal blinker", lines[2])
	}
	if !strings.HasPrefix(lines[5], "gen 3 |") {
		t.Fatalf("status = %q", lines[5])
	}
	if strings.Contains(out.String(), clearScreen) {
		t.Fatal("headless output contains terminal control sequences")
	}
}
