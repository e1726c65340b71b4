package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/tengen-go/tengen/engine"
	"github.com/tengen-go/tengen/move"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
	// Coords is set for commands that take a board point.
	Coords bool
}

var commandMetadata = map[string]CommandMetadata{
	"handicap": {Args: []string{"0", "1", "2"}},
	"rule":     {Args: []string{"territory", "area"}},
	"score":    {Options: []string{"-format"}},
	"help":     {Args: []string{"coords", "dispute", "handicap"}},
	"play":     {Coords: true},
	"p":        {Coords: true},
	"preview":  {Coords: true},
	"pv":       {Coords: true},
	"dead":     {Coords: true},
	"d":        {Coords: true},
}

var commandNames = []string{
	"help", "new", "handicap", "rule", "show", "play", "pass", "preview",
	"dead", "yes", "no", "abandon", "resign", "score", "reset", "games", "switch",
	"exit",
}

var handicapTypes = []string{"Points", "Pieces"}
var formatValues = []string{"text", "yaml"}

// emptyPoints lists the coordinates a stone could go on in the current game.
func (c *ShellCompleter) emptyPoints() []string {
	sc := c.sc
	if sc == nil || sc.current == "" {
		return nil
	}
	return legalCoords(sc.engine, sc.current)
}

func legalCoords(e *engine.Engine, h engine.Handle) []string {
	snap, err := e.BoardSnapshot(h)
	if err != nil {
		return nil
	}
	var pts []string
	for r, row := range snap {
		for col := range row {
			if e.PreviewLegality(h, r, col) {
				pts = append(pts, move.ToBoardGameCoords(r, col))
			}
		}
	}
	return pts
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}

	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]

		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-format":
			completions = formatValues
		case cmdName == "handicap" && lastCompleteField != "handicap":
			completions = handicapTypes
		case cmdName == "switch" && c.sc != nil:
			completions = lo.Map(c.sc.engine.Handles(), func(h engine.Handle, _ int) string {
				return string(h)
			})
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				switch {
				case metadata.Coords:
					completions = c.emptyPoints()
				case strings.HasPrefix(prefix, "-"):
					completions = metadata.Options
				case len(metadata.Args) > 0:
					completions = metadata.Args
				default:
					completions = metadata.Options
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(strings.ToUpper(completion), strings.ToUpper(prefix)) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
