package formatter

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output of trees.
type Config struct {
	Width   int            // maximum line width in ‘en’s, 0 for no limit
	Color   bool           // color nodes instead of marking them with [R]/[B]
	Context *uax11.Context // context for measuring display width of labels
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.Width parameter accordingly. Colors are switched on for
// terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.Width = 80
		} else if w > 10 {
			config.Width = w - 1
		} else {
			config.Width = 10
		}
		config.Context = uax11.ContextFromEnvironment()
	}
	tracer().P("format", "console").Debugf("setting line width to %d en", config.Width)
	return config
}

func (cfg *Config) context() *uax11.Context {
	if cfg == nil || cfg.Context == nil {
		return uax11.LatinContext
	}
	return cfg.Context
}
