package content

import (
	"strings"

	"github.com/gopherblog/blogc/internal/container"
)

// inlineHTML runs the inline grammar over already-joined block text and
// returns HTML. It is a single left-to-right scanner: once an opener is
// found, the scanner looks for the first matching closer on the same
// line-joined text and, failing to find one, degrades the opener to a
// literal escaped character rather than failing (§4.2 Failure semantics).
// The text between emphasis/strong markers is scanned again recursively,
// so a different marker nests inside (`**a *b* c**`); a same-character
// marker inside is taken as the closer.
func inlineHTML(text, ending string) string {
	buf := container.NewBuffer()
	i := 0
	n := len(text)
	for i < n {
		c := text[i]
		switch {
		case c == '\\' && i+1 < n && isEscapable(text[i+1]):
			buf.AppendString(htmlEscape(string(text[i+1])))
			i += 2

		case c == '`':
			if end, ok := findCloser(text, i+1, "`"); ok {
				buf.AppendString("<code>")
				buf.AppendString(htmlEscape(text[i+1 : end]))
				buf.AppendString("</code>")
				i = end + 1
			} else {
				buf.AppendString("`")
				i++
			}

		case c == '!' && i+1 < n && text[i+1] == '[':
			if alt, url, end, ok := scanLinkLike(text, i+1); ok {
				buf.AppendString(`<img src="`)
				buf.AppendString(htmlEscapeAttr(url))
				buf.AppendString(`" alt="`)
				buf.AppendString(htmlEscapeAttr(alt))
				buf.AppendString(`">`)
				i = end
			} else {
				buf.AppendString("!")
				i++
			}

		case c == '[':
			if label, url, end, ok := scanLinkLike(text, i); ok {
				buf.AppendString(`<a href="`)
				buf.AppendString(htmlEscapeAttr(url))
				buf.AppendString(`">`)
				buf.AppendString(htmlEscape(label))
				buf.AppendString("</a>")
				i = end
			} else {
				buf.AppendString("[")
				i++
			}

		case strings.HasPrefix(text[i:], "**") || strings.HasPrefix(text[i:], "__"):
			marker := text[i : i+2]
			if end, ok := findCloser(text, i+2, marker); ok {
				buf.AppendString("<strong>")
				buf.AppendString(inlineHTML(text[i+2:end], ending))
				buf.AppendString("</strong>")
				i = end + 2
			} else {
				buf.AppendString(htmlEscape(marker))
				i += 2
			}

		case c == '*' || c == '_':
			marker := string(c)
			if end, ok := findCloser(text, i+1, marker); ok {
				buf.AppendString("<em>")
				buf.AppendString(inlineHTML(text[i+1:end], ending))
				buf.AppendString("</em>")
				i = end + 1
			} else {
				buf.AppendString(htmlEscape(marker))
				i++
			}

		case strings.HasPrefix(text[i:], "---"):
			buf.AppendString("&mdash;")
			i += 3

		case strings.HasPrefix(text[i:], "--"):
			buf.AppendString("&ndash;")
			i += 2

		case c == ' ' && hasTrailingSpaceBreak(text, i, ending):
			run := trailingSpaceRun(text, i)
			buf.AppendString("<br />")
			buf.AppendString(ending)
			i += run + len(ending)

		default:
			buf.AppendString(htmlEscape(string(c)))
			i++
		}
	}
	return buf.String()
}

func isEscapable(c byte) bool {
	switch c {
	case '\\', '`', '*', '_', '{', '}', '[', ']', '(', ')', '#', '+', '-', '.', '!', '<', '>', '&':
		return true
	}
	return false
}

// trailingSpaceRun returns the number of consecutive space characters
// starting at i.
func trailingSpaceRun(text string, i int) int {
	n := 0
	for i+n < len(text) && text[i+n] == ' ' {
		n++
	}
	return n
}

// hasTrailingSpaceBreak reports whether the run of spaces starting at i is
// two or more characters long and is immediately followed by ending,
// matching the reference parser's CONTENT_INLINE_LINE_BREAK state, which
// collapses any run of two-plus trailing spaces before a line ending into
// one <br />.
func hasTrailingSpaceBreak(text string, i int, ending string) bool {
	run := trailingSpaceRun(text, i)
	return run >= 2 && strings.HasPrefix(text[i+run:], ending)
}

// findCloser returns the index of the next occurrence of marker at or after
// start, not itself immediately preceded by a backslash escape.
func findCloser(text string, start int, marker string) (int, bool) {
	for j := start; j+len(marker) <= len(text); j++ {
		if text[j] == '\\' {
			j++
			continue
		}
		if text[j:j+len(marker)] == marker {
			return j, true
		}
	}
	return 0, false
}

// scanLinkLike parses "[label](url)" starting at the '[' index and returns
// the label, url, and the index just past the closing ')'.
func scanLinkLike(text string, open int) (label, url string, end int, ok bool) {
	closeBracket, found := findCloser(text, open+1, "]")
	if !found {
		return "", "", 0, false
	}
	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen, found := findCloser(text, closeBracket+2, ")")
	if !found {
		return "", "", 0, false
	}
	return text[open+1 : closeBracket], text[closeBracket+2 : closeParen], closeParen + 1, true
}
