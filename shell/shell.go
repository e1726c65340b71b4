// Package shell is a terminal front end for playing Go against another
// person at the same keyboard.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/tengen-go/tengen/config"
	"github.com/tengen-go/tengen/engine"
	"github.com/tengen-go/tengen/game"
	"github.com/tengen-go/tengen/scoring"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game in progress; type new to start one")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	out    io.Writer

	engine   *engine.Engine
	current  engine.Handle
	handicap game.HandicapConfig
	rule     scoring.Rule
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newController sets up everything except the terminal.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		config: cfg,
		out:    out,
		engine: engine.New(),
	}
	r, err := game.NewGameRulesFromConfig(cfg)
	switch {
	case r == nil:
		log.Error().Err(err).Msg("bad game settings; using defaults")
		sc.handicap = game.DefaultHandicap()
		sc.rule = scoring.TerritoryRule
	default:
		if err != nil {
			log.Warn().Err(err).Msg("some game settings were ignored")
		}
		sc.handicap = r.Handicap()
		sc.rule = r.ScoringRule()
	}
	return sc
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg, os.Stderr)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          sc.prompt(),
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// prompt names the player to move in the current game, if there is one.
func (sc *ShellController) prompt() string {
	if sc.current != "" {
		st, err := sc.engine.State(sc.current)
		if err == nil && st.Phase != game.PhaseEnded {
			if nick, err := sc.engine.NickOnTurn(sc.current); err == nil {
				return "\033[32mtengen (" + nick + ")>\033[0m "
			}
		}
	}
	return "\033[32mtengen>\033[0m "
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	// Options are of the form -key value
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help", "h":
		return sc.help(cmd)
	case "new", "n":
		return sc.newGame(cmd)
	case "handicap":
		return sc.setHandicap(cmd)
	case "rule":
		return sc.setRule(cmd)
	case "show", "s", "b":
		return sc.show(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "pass", "pa":
		return sc.pass(cmd)
	case "preview", "pv":
		return sc.preview(cmd)
	case "dead", "d":
		return sc.dead(cmd)
	case "yes", "y":
		return sc.answer(true)
	case "no":
		return sc.answer(false)
	case "resign":
		return sc.resign(cmd)
	case "abandon":
		return sc.abandon(cmd)
	case "score":
		return sc.score(cmd)
	case "reset":
		return sc.reset(cmd)
	case "games":
		return sc.games(cmd)
	case "switch":
		return sc.switchGame(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs one or more commands separated by semicolons, without a
// terminal.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	for _, c := range strings.Split(line, ";") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if c == "exit" {
			break
		}
		resp, err := sc.handle(c)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		sc.l.SetPrompt(sc.prompt())
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		if line == "" {
			continue
		}
		resp, err := sc.handle(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup closes every open game.
func (sc *ShellController) Cleanup() {
	for _, h := range sc.engine.Handles() {
		_ = sc.engine.Close(h)
	}
	sc.current = ""
}
