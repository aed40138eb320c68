package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gopherblog/blogc/cmd"
	"github.com/gopherblog/blogc/internal/blogcerrs"
)

func main() {
	cli := &cmd.CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogc"),
		kong.Description("Blog compiler: renders markdown-like sources through a template"),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var usageErr *blogcerrs.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
