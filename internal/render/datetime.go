package render

import (
	"strings"
	"time"

	"github.com/gopherblog/blogc/internal/blogcerrs"
)

// dateInputLayouts are tried in order when parsing a DATE-like value; the
// reference parser accepts a handful of common front-matter date shapes.
var dateInputLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

// strftimeDirectives maps the common strftime conversion specifiers a
// DATE_FORMAT value uses to the reference-time tokens Go's time package
// expects.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'B': "January",
	'b': "Jan",
	'A': "Monday",
	'a': "Mon",
	'p': "PM",
	'Z': "MST",
}

func strftimeToGo(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			if tok, ok := strftimeDirectives[format[i+1]]; ok {
				b.WriteString(tok)
				i++
				continue
			}
			if format[i+1] == '%' {
				b.WriteByte('%')
				i++
				continue
			}
		}
		b.WriteByte(format[i])
	}
	return b.String()
}

// formatDate parses value against the known input layouts and reformats it
// per format (a strftime-style pattern). Per spec §4.5, failure is never
// fatal: the caller falls back to the raw value and records a warning.
func formatDate(value, format string) (string, error) {
	var t time.Time
	var err error
	for _, layout := range dateInputLayouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", &blogcerrs.DatetimeParserError{Value: value, Format: format, Err: err}
	}
	return t.Format(strftimeToGo(format)), nil
}
