package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug          = "debug"
	ConfigBoardSize      = "board-size"
	ConfigKomi           = "komi"
	ConfigScoringRule    = "scoring-rule"
	ConfigHandicapPlayer = "handicap-player"
	ConfigHandicapType   = "handicap-type"
	ConfigHandicapValue  = "handicap-value"
	ConfigPlayer1Name    = "player1-name"
	ConfigPlayer2Name    = "player2-name"
	ConfigHistoryFile    = "history-file"
	ConfigFile           = "config-file"
)

type Config struct {
	*viper.Viper
	args []string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigBoardSize, 7)
	v.SetDefault(ConfigKomi, "6.5")
	v.SetDefault(ConfigScoringRule, "territory")
	v.SetDefault(ConfigHandicapPlayer, 0)
	v.SetDefault(ConfigHandicapType, "")
	v.SetDefault(ConfigHandicapValue, "")
	v.SetDefault(ConfigPlayer1Name, "White Player")
	v.SetDefault(ConfigPlayer2Name, "Black Player")
	v.SetDefault(ConfigHistoryFile, "/tmp/tengen_readline.tmp")
	return v
}

// DefaultConfig returns a config holding only the defaults. It's mostly
// useful for tests.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load reads settings from, in decreasing priority: command-line flags,
// TENGEN_* environment variables, a tengen.yaml config file, and defaults.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("tengen", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigBoardSize, 7, "number of lines on each side of the board")
	fs.String(ConfigKomi, "6.5", "komi given to player 1 (white)")
	fs.String(ConfigScoringRule, "territory", "territory (japanese) or area (chinese)")
	fs.Int(ConfigHandicapPlayer, 0, "player receiving a handicap: 0 none, 1 white, 2 black")
	fs.String(ConfigHandicapType, "", "handicap type: Points or Pieces")
	fs.String(ConfigHandicapValue, "", "number of handicap points or pieces")
	fs.String(ConfigPlayer1Name, "White Player", "name of player 1")
	fs.String(ConfigPlayer2Name, "Black Player", "name of player 2")
	fs.String(ConfigHistoryFile, "/tmp/tengen_readline.tmp", "readline history file")
	fs.String(ConfigFile, "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Anything that isn't a flag is a shell command to execute.
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("tengen")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
	} else {
		c.SetConfigName("tengen")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// Args returns the non-flag arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
