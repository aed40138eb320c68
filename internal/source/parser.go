// Package source implements the source-file parser (spec §4.3): it splits
// a source file into a preamble of "KEY: value" pairs and a free-form body,
// runs the body through internal/content, and returns everything as a
// container.Map ready for the renderer.
//
// The state machine mirrors the reference source-parser's states
// (SOURCE_START, SOURCE_CONFIG_KEY, ...) one for one; unlike the content
// parser, a malformed preamble IS a fatal error (spec §7).
package source

import (
	"strings"

	"github.com/gopherblog/blogc/internal/blogcerrs"
	"github.com/gopherblog/blogc/internal/container"
	"github.com/gopherblog/blogc/internal/content"
)

type state int

const (
	stateStart state = iota
	stateConfigKey
	stateConfigValueStart
	stateConfigValue
	stateSeparator
	stateContentStart
	stateContent
)

// reservedKeys are variables the compiler sets itself; a source file may
// not define them in its preamble.
var reservedKeys = map[string]bool{
	"FILENAME":             true,
	"CONTENT":              true,
	"DATE_FORMATTED":       true,
	"DATE_FIRST_FORMATTED": true,
	"DATE_LAST_FORMATTED":  true,
	"PAGE_FIRST":           true,
	"PAGE_PREVIOUS":        true,
	"PAGE_CURRENT":         true,
	"PAGE_NEXT":            true,
	"PAGE_LAST":            true,
	"BLOGC_VERSION":        true,
}

// Parse splits src into a preamble and body and returns a populated map
// with every preamble key plus RAW_CONTENT, CONTENT, EXCERPT and, unless
// already set from the preamble, FIRST_HEADER and DESCRIPTION.
func Parse(src string) (*container.Map, error) {
	m := container.NewMap(func(string) {})

	st := stateStart
	start := 0
	var key string
	dashes := 0

	isLineEnd := func(c byte) bool { return c == '\n' || c == '\r' }

	i := 0
	for i < len(src) {
		c := src[i]

		switch st {
		case stateStart:
			switch {
			case c == ' ' || c == '\t' || isLineEnd(c):
			case c >= 'A' && c <= 'Z':
				st = stateConfigKey
				start = i
			case c == '-':
				st = stateSeparator
				dashes = 1
			default:
				return nil, &blogcerrs.SourceParserError{
					Kind: blogcerrs.SourceNoColon,
					Pos:  blogcerrs.Locate(src, i),
					Msg:  "can't find a configuration key or the content separator",
				}
			}

		case stateConfigKey:
			switch {
			case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_':
			case c == ':':
				key = src[start:i]
				if reservedKeys[key] {
					return nil, &blogcerrs.SourceParserError{
						Kind: blogcerrs.SourceReserved,
						Pos:  blogcerrs.Locate(src, i),
						Msg:  key + " is forbidden in source files; it is set by the compiler",
					}
				}
				st = stateConfigValueStart
			default:
				return nil, &blogcerrs.SourceParserError{
					Kind: blogcerrs.SourceBadKey,
					Pos:  blogcerrs.Locate(src, i),
					Msg:  "invalid configuration key",
				}
			}

		case stateConfigValueStart:
			if !isLineEnd(c) {
				st = stateConfigValue
				start = i
			} else {
				m.Set(key, "")
				key = ""
				st = stateStart
			}

		case stateConfigValue:
			if isLineEnd(c) {
				m.Set(key, strings.TrimSpace(src[start:i]))
				key = ""
				st = stateStart
			}

		case stateSeparator:
			switch {
			case c == '-':
				dashes++
			case isLineEnd(c):
				if dashes < 2 {
					return nil, &blogcerrs.SourceParserError{
						Kind: blogcerrs.SourceBadSeparator,
						Pos:  blogcerrs.Locate(src, i),
						Msg:  "invalid content separator: must be two or more '-' characters",
					}
				}
				st = stateContentStart
			default:
				return nil, &blogcerrs.SourceParserError{
					Kind: blogcerrs.SourceBadSeparator,
					Pos:  blogcerrs.Locate(src, i),
					Msg:  "invalid content separator: must be two or more '-' characters",
				}
			}

		case stateContentStart:
			if !isLineEnd(c) {
				start = i
				st = stateContent
			}

		case stateContent:
			// consumed in bulk below once we leave the loop
		}

		if st == stateContent {
			break
		}
		i++
	}

	// These truncation cases only block the whole parse if nothing usable
	// was found at all; a file that already produced at least one key
	// simply drops its dangling trailer, matching the reference parser's
	// behavior of only running this check when the output is still empty.
	if m.Len() == 0 {
		switch st {
		case stateStart:
			return nil, &blogcerrs.SourceParserError{
				Kind: blogcerrs.SourceEmpty,
				Pos:  blogcerrs.Locate(src, i),
				Msg:  "source file is empty",
			}
		case stateConfigKey:
			return nil, &blogcerrs.SourceParserError{
				Kind: blogcerrs.SourceTruncated,
				Pos:  blogcerrs.Locate(src, i),
				Msg:  "last configuration key is missing ':' and a value",
			}
		case stateConfigValueStart:
			return nil, &blogcerrs.SourceParserError{
				Kind: blogcerrs.SourceTruncated,
				Pos:  blogcerrs.Locate(src, i),
				Msg:  "configuration value not provided for '" + key + "'",
			}
		case stateConfigValue:
			return nil, &blogcerrs.SourceParserError{
				Kind: blogcerrs.SourceTruncated,
				Pos:  blogcerrs.Locate(src, i),
				Msg:  "no line ending after the configuration value for '" + key + "'",
			}
		}
	}

	raw := ""
	if st == stateContent {
		raw = src[start:]
	}

	m.Set("RAW_CONTENT", raw)
	res := content.Parse(raw)
	m.Set("CONTENT", res.HTML)

	if res.ExcerptOffset == 0 {
		m.Set("EXCERPT", res.HTML)
	} else {
		m.Set("EXCERPT", res.HTML[:res.ExcerptOffset])
	}

	if res.HasFirstHeader {
		if !m.Has("FIRST_HEADER") {
			m.Set("FIRST_HEADER", res.FirstHeader)
		}
	}
	if res.HasDescription {
		if !m.Has("DESCRIPTION") {
			m.Set("DESCRIPTION", res.Description)
		}
	}

	return m, nil
}
