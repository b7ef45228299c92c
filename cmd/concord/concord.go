package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rbmap"
	"github.com/npillmayer/rbmap/formatter"
	"github.com/npillmayer/rbmap/journal"
	"github.com/npillmayer/rbmap/textkeys"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concord [files...]",
		Short: "Count words and print them in collation order",
		Long: `Concord counts the words of text files (or stdin) and prints every
distinct word with its number of occurrences, ordered by the collation rules
of a language or by plain Unicode code points.

Settings may also be given as environment variables CONCORD_<FLAG>,
e.g. CONCORD_MIN=2, or in a YAML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	registerFlags(cmd)
	return cmd
}

func run(ctx context.Context, cfg *Config, files []string, stdin io.Reader, out, errout io.Writer) error {
	if cfg.Verbose {
		setupTracing(errout)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	less, err := wordOrder(cfg)
	if err != nil {
		return err
	}
	words := rbmap.NewFunc[string, int](less)
	j := journal.New[string](ctx)
	defer j.Close()
	changes, err := j.Subscribe(ctx, 4096)
	if err != nil {
		return err
	}
	tally := make(chan map[rbmap.Op]int, 1)
	go func() {
		tally <- journal.Tally(changes)
	}()
	words.SetObserver(j)
	//
	if len(files) == 0 {
		if err := countWords(words, stdin, cfg.HTML); err != nil {
			return err
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = countWords(words, f, cfg.HTML)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	erased := 0
	if cfg.Min > 0 {
		erased = eraseRare(words, cfg.Min)
	}
	printWords(words, cfg, out)
	if cfg.Dump {
		fcfg := formatter.ConfigFromTerminal()
		fcfg.Color = fcfg.Color && !cfg.NoColor
		if err := words.Dump(out, fcfg); err != nil {
			return err
		}
	}
	if cfg.Dot != "" {
		if err := writeDot(words, cfg.Dot); err != nil {
			return err
		}
	}
	j.Close()
	counts := <-tally
	if cfg.Verbose {
		fmt.Fprintf(errout, "%d distinct words, %d erased as rare\n", words.Len(), erased)
		fmt.Fprintf(errout, "journal: %d insertions, %d erasures\n", counts[rbmap.OpInsert], counts[rbmap.OpErase])
	}
	return nil
}

func setupTracing(w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	trace := tracing.Select("rbmap")
	trace.SetOutput(w)
	trace.SetTraceLevel(tracing.LevelDebug)
}

func wordOrder(cfg *Config) (func(a, b string) bool, error) {
	if cfg.Locale != "" {
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", cfg.Locale, err)
		}
		return textkeys.Collation(tag), nil
	}
	if cfg.Fold {
		return textkeys.FoldOrder(), nil
	}
	return cmp.Less[string], nil
}

func countWords(words *rbmap.Map[string, int], r io.Reader, isHTML bool) error {
	if isHTML {
		text, err := textkeys.HTMLText(r)
		if err != nil {
			return err
		}
		r = strings.NewReader(text)
	}
	ws, err := textkeys.Words(r)
	if err != nil {
		return err
	}
	for _, w := range ws {
		n, err := words.Ref(w)
		if err != nil {
			return err
		}
		*n++
	}
	return nil
}

// eraseRare erases all words occurring less than min times and returns the
// number of words erased.
func eraseRare(words *rbmap.Map[string, int], min int) int {
	erased := 0
	for it := words.Begin(); !it.IsEnd(); {
		if it.Value() < min {
			it = words.EraseAt(it)
			erased++
		} else {
			it = it.Next()
		}
	}
	return erased
}

func printWords(words *rbmap.Map[string, int], cfg *Config, out io.Writer) {
	first, last := words.Begin(), words.End()
	if cfg.From != "" && cfg.To != "" && !words.KeyLess()(cfg.From, cfg.To) {
		return
	}
	if cfg.From != "" {
		first = words.LowerBound(cfg.From)
	}
	if cfg.To != "" {
		last = words.LowerBound(cfg.To)
	}
	keyColor := color.New(color.FgCyan)
	line := func(word string, count int) {
		keyColor.Fprint(out, word)
		fmt.Fprintf(out, "\t%d\n", count)
	}
	if cfg.Reverse {
		stop := rbmap.Reverse(first)
		for r := rbmap.Reverse(last); !r.Equal(stop); r = r.Next() {
			line(r.Key(), r.Value())
		}
		return
	}
	for it := first; !it.Equal(last); it = it.Next() {
		line(it.Key(), it.Value())
	}
}

func writeDot(words *rbmap.Map[string, int], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := words.WriteDot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
