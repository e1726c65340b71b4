package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/config"
	"github.com/tengen-go/tengen/engine"
	"github.com/tengen-go/tengen/game"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"score -format yaml",
			&shellcmd{"score", nil, CmdOptions{"format": "yaml"}},
			nil},
		{"play D4",
			&shellcmd{"play", []string{"D4"}, CmdOptions{}},
			nil},
		{"handicap 2 Points 4.5 -komi 0.5 ",
			&shellcmd{"handicap",
				[]string{"2", "Points", "4.5"},
				CmdOptions{"komi": "0.5"}},
			nil,
		},
		{"score -format",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	board.ColorSupport = false
	buf := &bytes.Buffer{}
	return newController(config.DefaultConfig(), buf), buf
}

func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.handle(line)
	if err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	return resp.message
}

func TestNoGameYet(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	_, err := sc.handle("play D4")
	is.Equal(err, errNoGame)
	_, err = sc.handle("bogus")
	is.True(err != nil)
}

func TestPlayThroughShell(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)

	out := run(t, sc, "new 5")
	assert.Contains(t, out, "Phase: playing")

	is.Equal(run(t, sc, "preview C3"), "C3 is legal")
	run(t, sc, "play C3")
	is.Equal(run(t, sc, "preview C3"), "C3 is not legal")

	_, err := sc.handle("play C3")
	is.True(errors.Is(err, game.ErrOccupied))
	_, err = sc.handle("play Z9")
	is.True(errors.Is(err, game.ErrInvalidPosition))
	_, err = sc.handle("play")
	is.True(err != nil)

	run(t, sc, "p A1")
	out = run(t, sc, "pass")
	assert.Contains(t, out, "black passed.")
	out = run(t, sc, "pass")
	assert.Contains(t, out, "black may mark dead stones")

	out = run(t, sc, "dead A1")
	is.Equal(out, "black proposes A1 dead. white, answer yes or no.")
	run(t, sc, "yes")
	run(t, sc, "pass")
	out = run(t, sc, "pass")
	assert.Contains(t, out, "Game is over.")

	out = run(t, sc, "score")
	// white gave up one prisoner; black holds the rest of the board
	is.Equal(out, "territory scoring: white 5.5, black 24.0")

	out = run(t, sc, "score -format yaml")
	assert.Contains(t, out, "rule: territory")
	assert.Contains(t, out, "territory: 24")
	assert.Contains(t, out, "prisoners: 1")
}

func TestHandicapCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(run(t, sc, "handicap"), "handicap: no handicap, komi 6.5")

	out := run(t, sc, "handicap 2 Pieces 2 0.5")
	assert.Contains(t, out, "2 Pieces to black, komi 0.5")
	out = run(t, sc, "new 7")
	assert.Contains(t, out, "handicap placement")
	run(t, sc, "play C3")
	out = run(t, sc, "play E5")
	assert.Contains(t, out, "Phase: playing")

	_, err := sc.handle("handicap 2 Stones 3")
	is.True(errors.Is(err, game.ErrConfig))
	is.Equal(sc.handicap, game.DefaultHandicap())
}

func TestRuleAndReset(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(run(t, sc, "rule chinese"), "scoring rule for the next game: area")
	_, err := sc.handle("rule ing")
	is.True(err != nil)

	run(t, sc, "new 5")
	run(t, sc, "play C3")
	run(t, sc, "resign")
	out := run(t, sc, "score")
	assert.Contains(t, out, "area scoring")
	out = run(t, sc, "reset")
	assert.Contains(t, out, "Phase: playing")
	assert.NotContains(t, out, "black C3")
}

func TestSeveralGames(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(run(t, sc, "games"), "no games")

	run(t, sc, "new 5")
	first := sc.current
	run(t, sc, "play C3")
	run(t, sc, "new 7")
	second := sc.current
	is.True(second != first)
	is.Equal(len(sc.engine.Handles()), 2)

	out := run(t, sc, "games")
	assert.Contains(t, out, "* "+string(second))
	assert.Contains(t, out, "  "+string(first))

	// the first game kept its stone
	out = run(t, sc, "switch "+string(first))
	is.Equal(sc.current, first)
	assert.Contains(t, out, "black C3")

	_, err := sc.handle("switch nope")
	is.True(errors.Is(err, engine.ErrUnknownHandle))
	is.Equal(sc.current, first)
	_, err = sc.handle("switch")
	is.True(err != nil)

	sc.Cleanup()
	is.Equal(len(sc.engine.Handles()), 0)
	is.Equal(sc.current, engine.Handle(""))
}

func TestPromptNamesPlayerOnTurn(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	is.Equal(sc.prompt(), "\033[32mtengen>\033[0m ")

	run(t, sc, "new 5")
	assert.Contains(t, sc.prompt(), "(Black Player)")
	run(t, sc, "play C3")
	assert.Contains(t, sc.prompt(), "(White Player)")
	run(t, sc, "resign")
	is.Equal(sc.prompt(), "\033[32mtengen>\033[0m ")
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	out := run(t, sc, "help")
	assert.Contains(t, out, "play <coord>")
	out = run(t, sc, "help dispute")
	is.True(strings.HasPrefix(out, "After both players pass"))
	_, err := sc.handle("help nothing")
	is.True(err != nil)
}

func TestExecute(t *testing.T) {
	sc, buf := testController(t)
	sc.Execute(nil, "new 5; play C3; show; bogus; exit; play D4")
	out := buf.String()
	assert.Contains(t, out, "black C3")
	assert.Contains(t, out, `Error: command "bogus" not found`)
	assert.NotContains(t, out, "white D4")
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("pre"), 3)
	is.Equal(n, 3)
	is.Equal(matches, [][]rune{[]rune("view")})

	matches, _ = c.Do([]rune("rule "), 5)
	is.Equal(len(matches), 2)

	matches, _ = c.Do([]rune("score -format y"), 15)
	is.Equal(matches, [][]rune{[]rune("aml")})

	run(t, sc, "new 3")
	h := string(sc.current)
	matches, _ = c.Do([]rune("switch "), 7)
	is.Equal(matches, [][]rune{[]rune(h)})

	run(t, sc, "new 2")
	run(t, sc, "play A1")
	matches, _ = c.Do([]rune("play "), 5)
	// A1 is taken
	is.Equal(len(matches), 3)
}
