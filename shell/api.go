package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/tengen-go/tengen/board"
	"github.com/tengen-go/tengen/config"
	"github.com/tengen-go/tengen/engine"
	"github.com/tengen-go/tengen/game"
	"github.com/tengen-go/tengen/move"
	"github.com/tengen-go/tengen/scoring"
)

type Response struct {
	message string
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) requireGame() error {
	if sc.current == "" {
		return errNoGame
	}
	return nil
}

func (sc *ShellController) display() (*Response, error) {
	txt, err := sc.engine.Display(sc.current)
	if err != nil {
		return nil, err
	}
	return msg(txt), nil
}

// coords reads a single board coordinate argument such as "D4".
func coords(cmd *shellcmd, usage string) (board.Position, error) {
	if len(cmd.args) != 1 {
		return board.Position{}, errors.New("usage: " + usage)
	}
	return move.FromBoardGameCoords(cmd.args[0])
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	size := sc.config.GetInt(config.ConfigBoardSize)
	if len(cmd.args) > 0 {
		var err error
		size, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, errors.New("usage: new [size]")
		}
	}
	h, err := sc.engine.NewGame(size, sc.handicap,
		engine.WithScoringRule(sc.rule),
		engine.WithPlayerNames(sc.config.GetString(config.ConfigPlayer1Name),
			sc.config.GetString(config.ConfigPlayer2Name)))
	if err != nil {
		return nil, err
	}
	sc.current = h
	return sc.display()
}

func (sc *ShellController) switchGame(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: switch <game>")
	}
	h := engine.Handle(cmd.args[0])
	if !lo.Contains(sc.engine.Handles(), h) {
		return nil, fmt.Errorf("%w: %q", engine.ErrUnknownHandle, cmd.args[0])
	}
	sc.current = h
	return sc.display()
}

func (sc *ShellController) setHandicap(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("handicap: " + sc.handicap.String()), nil
	}
	player, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		player = -1
	}
	var kind, value, komi string
	if len(cmd.args) > 1 {
		kind = cmd.args[1]
	}
	if len(cmd.args) > 2 {
		value = cmd.args[2]
	}
	if len(cmd.args) > 3 {
		komi = cmd.args[3]
	}
	h, err := game.ParseHandicap(player, kind, value, komi)
	sc.handicap = h
	if err != nil {
		return nil, fmt.Errorf("%w; using %v", err, h)
	}
	return msg("handicap for the next game: " + h.String()), nil
}

func (sc *ShellController) setRule(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("scoring rule: " + sc.rule.String()), nil
	}
	r, err := scoring.ParseRule(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rule = r
	return msg("scoring rule for the next game: " + r.String()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return sc.display()
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	pos, err := coords(cmd, "play <coord>")
	if err != nil {
		return nil, err
	}
	res, err := sc.engine.PlaceStone(sc.current, pos.Row, pos.Col)
	if err != nil {
		return nil, err
	}
	resp, err := sc.display()
	if err != nil {
		return nil, err
	}
	if len(res.Captured) > 0 {
		resp.message += fmt.Sprintf("\nCaptured %d stone(s).", len(res.Captured))
	}
	return resp, nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	st, err := sc.engine.Pass(sc.current)
	if err != nil {
		return nil, err
	}
	resp, err := sc.display()
	if err != nil {
		return nil, err
	}
	switch st.Phase {
	case game.PhaseDispute:
		resp.message += fmt.Sprintf("\n%v may mark dead stones with dead <coord>, or pass.", st.OnTurn)
	case game.PhasePlaying:
		resp.message += fmt.Sprintf("\n%v passed.", st.OnTurn.Opponent())
	}
	return resp, nil
}

func (sc *ShellController) preview(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	pos, err := coords(cmd, "preview <coord>")
	if err != nil {
		return nil, err
	}
	if sc.engine.PreviewLegality(sc.current, pos.Row, pos.Col) {
		return msg(cmd.args[0] + " is legal"), nil
	}
	return msg(cmd.args[0] + " is not legal"), nil
}

func (sc *ShellController) dead(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	pos, err := coords(cmd, "dead <coord>")
	if err != nil {
		return nil, err
	}
	stones, err := sc.engine.MarkGroupDead(sc.current, pos.Row, pos.Col)
	if err != nil {
		return nil, err
	}
	st, err := sc.engine.State(sc.current)
	if err != nil {
		return nil, err
	}
	coordList := lo.Map(stones, func(p board.Position, _ int) string {
		return move.ToBoardGameCoords(p.Row, p.Col)
	})
	return msg(fmt.Sprintf("%v proposes %s dead. %v, answer yes or no.",
		st.OnTurn, strings.Join(coordList, " "), st.OnTurn.Opponent())), nil
}

func (sc *ShellController) answer(accept bool) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	st, err := sc.engine.ConfirmDead(sc.current, accept)
	if err != nil {
		return nil, err
	}
	resp, err := sc.display()
	if err != nil {
		return nil, err
	}
	if st.Phase == game.PhasePlaying {
		resp.message += "\nRefused. Play on to settle it."
	}
	return resp, nil
}

func (sc *ShellController) resign(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if _, err := sc.engine.Resign(sc.current); err != nil {
		return nil, err
	}
	return sc.display()
}

func (sc *ShellController) abandon(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if _, err := sc.engine.AbandonDispute(sc.current); err != nil {
		return nil, err
	}
	return sc.display()
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	bd, err := sc.engine.ScoreBreakdown(sc.current)
	if err != nil {
		return nil, err
	}
	switch cmd.options.String("format") {
	case "yaml":
		out, err := yaml.Marshal(bd)
		if err != nil {
			return nil, err
		}
		return msg(string(out)), nil
	case "", "text":
		s1, s2 := bd.Totals()
		return msg(fmt.Sprintf("%s scoring: white %.1f, black %.1f", bd.Rule, s1, s2)), nil
	default:
		return nil, errors.New("usage: score [-format text|yaml]")
	}
}

func (sc *ShellController) reset(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if _, err := sc.engine.Reset(sc.current); err != nil {
		return nil, err
	}
	return sc.display()
}

func (sc *ShellController) games(cmd *shellcmd) (*Response, error) {
	lines := lo.Map(sc.engine.Handles(), func(h engine.Handle, _ int) string {
		if h == sc.current {
			return "* " + string(h)
		}
		return "  " + string(h)
	})
	if len(lines) == 0 {
		return msg("no games"), nil
	}
	return msg(strings.Join(lines, "\n")), nil
}
