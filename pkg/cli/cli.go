package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
	"github.com/rs/zerolog"
)

// Context is handed to every command's Run method.
type Context struct {
	Config     *Config
	Logger     zerolog.Logger
	Normalizer *Normalizer
	Parser     *Parser
	Stats      *Stats
	Stdout     io.Writer
}

// Globals are flags shared by all commands, they override the config file when set.
type Globals struct {
	Config   string `help:"Config file (yaml, json or toml)" type:"existingfile"`
	LogLevel string `help:"Log level: debug, info, warn or error"`
	Format   string `help:"Input format: lines, csv, tsv or json"`
	Key      string `help:"CSV column or JSON field holding the sequence"`
	Encoding string `help:"Input encoding, e.g. utf-8, latin1, windows-1252"`
	Fold     bool   `help:"Case fold sequences before using them" xor:"fold"`
	NoFold   bool   `help:"Do not case fold sequences, even if the config asks to" xor:"fold"`
	Output   string `help:"Output format: lines, csv, tsv or json"`
}

var CLI struct {
	Globals

	Count    CountCmd    `cmd:"" help:"Count the distinct sequences in the input files"`
	Contains ContainsCmd `cmd:"" help:"Check whether sequences are stored"`
	Complete CompleteCmd `cmd:"" help:"List the stored sequences starting with a prefix"`
	Remove   RemoveCmd   `cmd:"" help:"Remove sequences and list what is left"`
	Cidr     CidrCmd     `cmd:"" help:"Load CIDRs and list the ones inside a network"`
	Serve    ServeCmd    `cmd:"" help:"Serve the loaded sequences over HTTP"`
}

// NewContext loads the configuration, applies the global flags on top of it,
// and builds the logger, normalizer, and parser the commands share.
func NewContext(globals *Globals, stdout io.Writer) (*Context, error) {
	cfg, err := LoadConfig(globals.Config)
	if err != nil {
		return nil, err
	}
	globals.apply(cfg)

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	normalizer, err := NewNormalizer(cfg.Normalize)
	if err != nil {
		return nil, err
	}
	parser, err := NewParser(cfg.Input, normalizer)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config:     cfg,
		Logger:     logger,
		Normalizer: normalizer,
		Parser:     parser,
		Stats:      &Stats{},
		Stdout:     stdout,
	}, nil
}

func (g *Globals) apply(cfg *Config) {
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.Format != "" {
		cfg.Input.Format = g.Format
	}
	if g.Key != "" {
		cfg.Input.Key = g.Key
	}
	if g.Encoding != "" {
		cfg.Input.Encoding = g.Encoding
	}
	if g.Fold {
		cfg.Normalize.Fold = true
	}
	if g.NoFold {
		cfg.Normalize.Fold = false
	}
	if g.Output != "" {
		cfg.Output.Format = g.Output
	}
}

// loadFiles inserts every sequence of the files into a new trie.
func (ctx *Context) loadFiles(files []string) (*trie.Strings, error) {
	words := trie.NewStrings(trie.WithLogger[byte](ctx.Logger))
	for _, file := range files {
		before := ctx.Stats.Input
		err := ctx.Parser.ParseFile(file, func(seq string) error {
			ctx.Stats.Input++
			words.Insert(seq)
			return nil
		})
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug().Str("file", file).Int("sequences", ctx.Stats.Input-before).Msg("loaded file")
	}
	ctx.Stats.Unique = words.Count()
	ctx.Logger.Info().
		Int("files", len(files)).
		Int("read", ctx.Stats.Input).
		Int("unique", ctx.Stats.Unique).
		Msg("loaded sequences")
	return words, nil
}

func (ctx *Context) writer() (Writer, error) {
	return NewWriter(ctx.Config.Output.Format, ctx.Config.Input.Key, ctx.Stats)
}
