// Package content implements the markdown-like content parser (spec §4.2):
// a line-oriented state machine that turns a source body into HTML while
// extracting the structural metadata the renderer and source parser need —
// the first header, a one-line description, a table-of-contents, and the
// byte offset of an optional excerpt marker.
//
// The parser never fails. Malformed input degrades to literal output
// (§4.2 Failure semantics) — there is deliberately no error return here.
package content

// HeaderRecord is one entry of the table of contents collected while
// parsing block-level headers.
type HeaderRecord struct {
	Level int    // 1..6
	Slug  string // slugified header text, used as the <hN> id attribute
	Text  string // inline-parsed header text
}

// Result is everything the content parser produces from one body.
type Result struct {
	HTML           string
	ExcerptOffset  int // byte offset into HTML of the excerpt marker, 0 if none
	FirstHeader    string
	HasFirstHeader bool
	Description    string
	HasDescription bool
	LineEnding     string // exactly one of "\n", "\r\n", "\r"
	Headers        []HeaderRecord
}

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeader
	blockRule
	blockBlockquote
	blockCode
	blockRawHTML
	blockListUnordered
	blockListOrdered
	blockExcerpt
	blockBlank
)

// rawBlock is one block-level construct as grouped by the line scanner,
// before inline parsing or HTML emission.
type rawBlock struct {
	kind  blockKind
	lines []string // raw lines, marker/prefix stripped where the grammar calls for it
}
