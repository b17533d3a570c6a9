package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/seqtrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("seqtrie"),
		kong.Description("Load sequences into a prefix tree and query them."),
		kong.UsageOnError(),
	)
	appCtx, err := cli.NewContext(&cli.CLI.Globals, os.Stdout)
	if err == nil {
		err = ctx.Run(appCtx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
