package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/gopherblog/blogc/internal/blogcerrs"
	"github.com/gopherblog/blogc/internal/config"
	"github.com/gopherblog/blogc/internal/loader"
	"github.com/gopherblog/blogc/internal/render"
	"github.com/gopherblog/blogc/internal/tmpl"
)

// BuildCmd compiles zero or more source files through a template,
// implementing the CLI surface of spec §6.
type BuildCmd struct {
	Sources []string `arg:"" optional:"" help:"Source files to compile"`

	Template string   `short:"t" help:"Template file" type:"path"`
	Output   string   `short:"o" help:"Output destination, or - for stdout" default:"-"`
	Define   []string `short:"D" help:"Define/override a global config variable (KEY=VALUE)"`
	Print    string   `short:"p" help:"Print KEY from the post-parse config and exit"`
	Listing  bool     `short:"l" help:"Listing mode: iterate every source instead of one entry"`
}

// Run executes the build command. It returns a plain error for any
// compile-time failure (parser, loader or I/O); main.go maps that to exit
// code 1. Bad flag combinations are reported as *blogcerrs.UsageError and
// mapped to exit code 2.
func (c *BuildCmd) Run() error {
	return c.run(afero.NewOsFs(), os.Stdout, os.Stderr)
}

// run does the actual work against an injected filesystem and output
// streams, so tests can swap in afero.NewMemMapFs() and in-memory buffers
// without touching the real filesystem or stdout/stderr.
func (c *BuildCmd) run(fs afero.Fs, stdout, stderr io.Writer) error {
	global, err := config.Load(c.Define)
	if err != nil {
		printBuildError(stderr, err)
		return err
	}

	if c.Template == "" && c.Print == "" {
		err := &blogcerrs.UsageError{Msg: "build: -t FILE is required"}
		printBuildError(stderr, err)
		return err
	}

	sources, err := loader.LoadSources(fs, c.Sources)
	if err != nil {
		printBuildError(stderr, err)
		return err
	}

	paged, warn := loader.Prepare(sources, global)
	if warn != nil {
		fmt.Fprintf(stderr, "warning: %v\n", warn)
	}

	if c.Print != "" {
		v, _ := global.Get(c.Print)
		fmt.Fprintln(stdout, v)
		return nil
	}

	templateBytes, err := afero.ReadFile(fs, c.Template)
	if err != nil {
		wrapped := &blogcerrs.LoaderError{Path: c.Template, Err: err}
		printBuildError(stderr, wrapped)
		return wrapped
	}

	program, err := tmpl.Parse(string(templateBytes))
	if err != nil {
		printBuildError(stderr, err)
		return err
	}

	out, renderWarnings := render.Render(program, paged, global, c.Listing)
	if renderWarnings != nil {
		fmt.Fprintf(stderr, "warning: %v\n", renderWarnings)
	}

	return c.writeOutput(fs, stdout, out)
}

func (c *BuildCmd) writeOutput(fs afero.Fs, stdout io.Writer, out string) error {
	if c.Output == "-" {
		_, err := fmt.Fprint(stdout, out)
		return err
	}
	return afero.WriteFile(fs, c.Output, []byte(out), 0o644)
}
