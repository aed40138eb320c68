package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/gopherblog/blogc/internal/blogcerrs"
)

var (
	excerptLineStyle  = lipgloss.NewStyle().Bold(true)
	excerptCaretStyle = lipgloss.NewStyle().Underline(true)
)

// excerptable is satisfied by every parser error that carries a located
// excerpt, letting the CLI layer colorize without knowing the error kind.
type excerptable interface {
	error
	excerpt() (string, string, bool)
}

type sourceExcerpt struct{ *blogcerrs.SourceParserError }
type templateExcerpt struct{ *blogcerrs.TemplateParserError }

func (e sourceExcerpt) excerpt() (string, string, bool)   { return splitExcerpt(e.Pos.Excerpt()) }
func (e templateExcerpt) excerpt() (string, string, bool) { return splitExcerpt(e.Pos.Excerpt()) }

func splitExcerpt(raw string) (line, caret string, ok bool) {
	if raw == "" {
		return "", "", false
	}
	parts := strings.SplitN(raw, "\n", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func asExcerptable(err error) (excerptable, bool) {
	switch e := err.(type) {
	case *blogcerrs.SourceParserError:
		return sourceExcerpt{e}, true
	case *blogcerrs.TemplateParserError:
		return templateExcerpt{e}, true
	default:
		return nil, false
	}
}

// printBuildError writes err to w, bolding the offending line and
// underlining the caret column when w is a terminal. Plain stderr (piped
// output, CI logs) gets the same plain-text rendering internal/blogcerrs
// already produces.
func printBuildError(w io.Writer, err error) {
	f, isFile := w.(*os.File)
	if !isFile || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(w, err)
		return
	}

	ex, ok := asExcerptable(err)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}

	line, caret, ok := ex.excerpt()
	if !ok {
		fmt.Fprintln(w, err)
		return
	}

	width := 80
	if wd, _, err := term.GetSize(int(f.Fd())); err == nil && wd > 0 {
		width = wd
	}

	fmt.Fprintln(w, err.Error()[:strings.Index(err.Error(), "\n")])
	fmt.Fprintln(w, excerptLineStyle.MaxWidth(width).Render(line))
	fmt.Fprintln(w, excerptCaretStyle.MaxWidth(width).Render(caret))
}
