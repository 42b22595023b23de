package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	_ "wordsearch/pkg/compressfile"
	"wordsearch/pkg/config"
	"wordsearch/pkg/dictionary"
	"wordsearch/pkg/logger"
	_ "wordsearch/pkg/office"
	_ "wordsearch/pkg/plaintext"
	"wordsearch/pkg/search"
)

var (
	DictionaryFile string
	FileType       string
	Mode           string
	ConfigFile     string
	MaxResults     int
	Verbose        bool
	DetailVerbose  bool
)

func main() {
	flag.StringVar(&DictionaryFile, "d", "", "dictionary file (also accepted as the first argument)")
	flag.StringVar(&FileType, "t", "", "dictionary file type, a suffix such as txt or gz, or a number")
	flag.StringVar(&Mode, "m", "", "match mode: prefix or exact")
	flag.StringVar(&ConfigFile, "c", "", "config file")
	flag.IntVar(&MaxResults, "n", 0, "print at most n results, 0 for all")
	flag.BoolVar(&Verbose, "v", false, "verbose")
	flag.BoolVar(&DetailVerbose, "vv", false, "detail verbose")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if cfg.Dictionary.Path == "" {
		flag.Usage()
		return errors.New("no dictionary given")
	}
	parsed, err := cfg.Parse()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	ix := search.New()
	defer ix.Destroy()

	fmt.Printf("Initializing search library with %s\n", cfg.Dictionary.Path)
	stats, err := dictionary.Load(ix, cfg.Dictionary.Path, parsed.FileType, dictionary.Options{
		Split:         parsed.Split,
		MaxWordLength: cfg.Dictionary.MaxWordLength,
	})
	if err != nil {
		return err
	}
	logger.Logger.Printf("loaded %v into %d nodes", stats, ix.Nodes())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Query.Prompt,
		HistoryFile:     cfg.History.File,
		AutoComplete:    &completer{ix: ix, limit: cfg.Query.CompletionLimit},
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	s := &session{ix: ix, mode: parsed.Mode, maxResults: cfg.Query.MaxResults, stats: stats, out: rl.Stdout()}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.handle(line) {
			return nil
		}
	}
}

// applyFlags lets explicitly set flags and the positional dictionary
// override the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.Dictionary.Path = DictionaryFile
		case "t":
			cfg.Dictionary.FileType = FileType
		case "m":
			cfg.Query.Mode = Mode
		case "n":
			cfg.Query.MaxResults = MaxResults
		case "v":
			cfg.Log.Verbose = Verbose
		}
	})
	if cfg.Dictionary.Path == "" && flag.NArg() > 0 {
		cfg.Dictionary.Path = flag.Arg(0)
	}
}

func setupLogging(cfg *config.Config) {
	if DetailVerbose {
		logger.SetLogger(logger.NewZerolog(os.Stderr, zerolog.InfoLevel))
		logger.SetDebugLogger(logger.NewZerolog(os.Stderr, zerolog.DebugLevel))
	} else if cfg.Log.Verbose {
		logger.SetLogger(logger.NewZerolog(os.Stderr, logger.ParseLevel(cfg.Log.Level)))
		logger.SetDebugLogger(logger.Discard())
	}
}

// session runs the queries typed at the prompt.
type session struct {
	ix         *search.Search
	mode       search.MatchType
	maxResults int
	stats      dictionary.Stats
	out        io.Writer
}

var commands = []string{":exact", ":prefix", ":stats", ":flush", ":quit"}

// handle runs one input line and reports whether the loop should stop.
func (s *session) handle(line string) bool {
	line = strings.TrimSuffix(line, "\r")
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":exact":
		s.mode = search.MatchExact
		fmt.Fprintf(s.out, "mode: %v\n", s.mode)
		return false
	case ":prefix":
		s.mode = search.MatchPrefix
		fmt.Fprintf(s.out, "mode: %v\n", s.mode)
		return false
	case ":stats":
		fmt.Fprintf(s.out, "%d words, %d nodes (%v)\n", s.ix.Len(), s.ix.Nodes(), s.stats)
		return false
	case ":flush":
		s.ix.Flush()
		return false
	}

	if !s.ix.Query(line, s.mode) {
		fmt.Fprintf(s.out, "Search did not find a match for %s\n", line)
		return false
	}
	results := s.ix.Results()
	fmt.Fprintln(s.out, "Results:")
	for i, r := range results {
		if s.maxResults > 0 && i == s.maxResults {
			fmt.Fprintf(s.out, "... %d more\n", len(results)-i)
			break
		}
		fmt.Fprintln(s.out, r)
	}
	return false
}

// completer offers the indexed words extending the text left of the
// cursor, or the loop commands after a colon.
type completer struct {
	ix    *search.Search
	limit int
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	var candidates []string
	if strings.HasPrefix(prefix, ":") {
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, prefix) {
				candidates = append(candidates, cmd)
			}
		}
	} else {
		candidates = c.ix.Complete(prefix, c.limit)
	}
	return lo.Map(candidates, func(w string, _ int) []rune {
		return []rune(w[len(prefix):])
	}), len([]rune(prefix))
}
