package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/khalid-nowaf/seqtrie/pkg/cidr"
	"github.com/khalid-nowaf/seqtrie/pkg/server"
	"github.com/khalid-nowaf/seqtrie/pkg/trie"
	"golang.org/x/exp/slices"
)

type CountCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Input files containing sequences"`
}

// Run prints the number of distinct sequences.
func (cmd *CountCmd) Run(ctx *Context) error {
	words, err := ctx.loadFiles(cmd.Files)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Stdout, words.Count())
	return err
}

type ContainsCmd struct {
	Seq   []string `required:"" help:"Sequence to look up, repeatable"`
	Files []string `arg:"" type:"existingfile" help:"Input files containing sequences"`
}

// Run prints each looked up sequence followed by true or false.
func (cmd *ContainsCmd) Run(ctx *Context) error {
	words, err := ctx.loadFiles(cmd.Files)
	if err != nil {
		return err
	}
	for _, seq := range ctx.Normalizer.NormalizeAll(cmd.Seq) {
		if _, err := fmt.Fprintf(ctx.Stdout, "%s\t%t\n", seq, words.Contains(seq)); err != nil {
			return err
		}
	}
	return nil
}

type CompleteCmd struct {
	Prefix string   `help:"Prefix the listed sequences start with, empty lists everything"`
	Files  []string `arg:"" type:"existingfile" help:"Input files containing sequences"`
}

// Run writes the stored sequences starting with the prefix, sorted.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	words, err := ctx.loadFiles(cmd.Files)
	if err != nil {
		return err
	}
	writer, err := ctx.writer()
	if err != nil {
		return err
	}
	matches := words.CollectionsWithPrefix(ctx.Normalizer.Normalize(cmd.Prefix))
	slices.Sort(matches)
	return writer.Write(ctx.Stdout, matches)
}

type RemoveCmd struct {
	Seq   []string `required:"" help:"Sequence to remove, repeatable"`
	Files []string `arg:"" type:"existingfile" help:"Input files containing sequences"`
}

// Run removes the sequences and writes the remaining ones, sorted.
func (cmd *RemoveCmd) Run(ctx *Context) error {
	words, err := ctx.loadFiles(cmd.Files)
	if err != nil {
		return err
	}
	writer, err := ctx.writer()
	if err != nil {
		return err
	}
	for _, seq := range ctx.Normalizer.NormalizeAll(cmd.Seq) {
		if _, ok := words.Remove(seq); !ok {
			ctx.Logger.Warn().Str("sequence", seq).Msg("sequence not found, nothing removed")
			continue
		}
		ctx.Stats.Removed++
	}
	remaining := words.Collections()
	slices.Sort(remaining)
	return writer.Write(ctx.Stdout, remaining)
}

type CidrCmd struct {
	Within string   `required:"" help:"Network the listed CIDRs must be inside of, e.g. 10.0.0.0/8"`
	Files  []string `arg:"" type:"existingfile" help:"Input files containing CIDRs"`
}

// Run loads the CIDRs and writes the stored networks inside Within.
func (cmd *CidrCmd) Run(ctx *Context) error {
	within, err := cidr.Parse(cmd.Within)
	if err != nil {
		return err
	}
	writer, err := ctx.writer()
	if err != nil {
		return err
	}

	networks := cidr.NewSet(trie.WithLogger[int](ctx.Logger))
	for _, file := range cmd.Files {
		err := ctx.Parser.ParseFile(file, func(seq string) error {
			ipnet, err := cidr.Parse(seq)
			if err != nil {
				return err
			}
			ctx.Stats.Input++
			networks.Insert(ipnet)
			return nil
		})
		if err != nil {
			return err
		}
	}
	ctx.Stats.Unique = networks.Count()
	ctx.Logger.Info().Int("read", ctx.Stats.Input).Int("unique", ctx.Stats.Unique).Msg("loaded networks")

	found := []string{}
	for _, ipnet := range networks.Within(within) {
		found = append(found, ipnet.String())
	}
	slices.Sort(found)
	return writer.Write(ctx.Stdout, found)
}

type ServeCmd struct {
	Addr  string   `help:"Address to listen on, overrides server.addr"`
	Files []string `arg:"" optional:"" type:"existingfile" help:"Input files to preload"`
}

// Run serves the loaded sequences until interrupted.
func (cmd *ServeCmd) Run(ctx *Context) error {
	words, err := ctx.loadFiles(cmd.Files)
	if err != nil {
		return err
	}
	addr := ctx.Config.Server.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.NewServer(addr, words, ctx.Logger).Start(sigCtx)
}
