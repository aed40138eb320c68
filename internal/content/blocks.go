package content

import "strings"

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isExcerptMarker(line string) bool {
	t := strings.TrimSpace(line)
	return t == ".." || t == "..."
}

// headerLevel returns the header level (1..6) and the text following the
// marker, or ok=false if line isn't a header marker or has no text after
// the hashes (a header with no text degrades to a paragraph, per §4.2).
func headerLevel(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && n < 6 && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	rest := strings.TrimSpace(line[n+1:])
	if rest == "" {
		return 0, "", false
	}
	return n, rest, true
}

// isRule reports whether line, trimmed, is two or more repetitions of the
// same character from {*, +, -} and nothing else.
func isRule(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 2 {
		return false
	}
	c := t[0]
	if c != '*' && c != '+' && c != '-' {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i] != c {
			return false
		}
	}
	return true
}

const blockquotePrefix = "> "

func isBlockquoteStart(line string) bool {
	return strings.HasPrefix(line, blockquotePrefix)
}

// leadingWhitespaceWidth returns the number of leading space/tab bytes.
func leadingWhitespaceWidth(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isCodeStart(line string) bool {
	return leadingWhitespaceWidth(line) >= 2
}

func isRawHTMLStart(line string) bool {
	return len(line) > 0 && line[0] == '<'
}

// unorderedMarker returns the text following a "* "/"+ "/"- " marker.
func unorderedMarker(line string) (text string, ok bool) {
	if len(line) < 2 {
		return "", false
	}
	switch line[0] {
	case '*', '+', '-':
	default:
		return "", false
	}
	if line[1] != ' ' {
		return "", false
	}
	return line[2:], true
}

// orderedMarker returns the text following a "<digits>. " marker. Embedded
// spaces between the digits and the dot (e.g. "1 .") are rejected, and a
// bare "1." with no following space is not a marker.
func orderedMarker(line string) (text string, width int, ok bool) {
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != '.' {
		return "", 0, false
	}
	if n+1 >= len(line) || line[n+1] != ' ' {
		return "", 0, false
	}
	return line[n+2:], n + 2, true
}

func startsNewBlock(line string) bool {
	if isBlank(line) || isExcerptMarker(line) || isRule(line) ||
		isBlockquoteStart(line) || isCodeStart(line) || isRawHTMLStart(line) {
		return true
	}
	if _, _, ok := headerLevel(line); ok {
		return true
	}
	if _, ok := unorderedMarker(line); ok {
		return true
	}
	if _, _, ok := orderedMarker(line); ok {
		return true
	}
	return false
}

// scanBlocks groups raw lines into block-level constructs per spec §4.2.
func scanBlocks(lines []string) []rawBlock {
	var blocks []rawBlock
	i := 0
	for i < len(lines) {
		line := lines[i]

		switch {
		case isBlank(line):
			i++

		case isExcerptMarker(line):
			blocks = append(blocks, rawBlock{kind: blockExcerpt})
			i++

		case func() bool { _, _, ok := headerLevel(line); return ok }():
			blocks = append(blocks, rawBlock{kind: blockHeader, lines: []string{line}})
			i++

		case isRule(line):
			blocks = append(blocks, rawBlock{kind: blockRule})
			i++

		case isBlockquoteStart(line):
			var body []string
			for i < len(lines) && isBlockquoteStart(lines[i]) {
				body = append(body, strings.TrimPrefix(lines[i], blockquotePrefix))
				i++
			}
			blocks = append(blocks, rawBlock{kind: blockBlockquote, lines: body})

		case isCodeStart(line):
			width := leadingWhitespaceWidth(line)
			var body []string
			for i < len(lines) && !isBlank(lines[i]) && leadingWhitespaceWidth(lines[i]) >= width {
				body = append(body, lines[i][width:])
				i++
			}
			blocks = append(blocks, rawBlock{kind: blockCode, lines: body})

		case isRawHTMLStart(line):
			var body []string
			for i < len(lines) && !isBlank(lines[i]) {
				body = append(body, lines[i])
				i++
			}
			blocks = append(blocks, rawBlock{kind: blockRawHTML, lines: body})

		case func() bool { _, ok := unorderedMarker(line); return ok }():
			items := collectUnorderedItems(lines, &i)
			blocks = append(blocks, rawBlock{kind: blockListUnordered, lines: items})

		case func() bool { _, _, ok := orderedMarker(line); return ok }():
			items := collectOrderedItems(lines, &i)
			blocks = append(blocks, rawBlock{kind: blockListOrdered, lines: items})

		default:
			var body []string
			for i < len(lines) && !startsNewBlock(lines[i]) {
				body = append(body, lines[i])
				i++
			}
			blocks = append(blocks, rawBlock{kind: blockParagraph, lines: body})
		}
	}
	return blocks
}

func collectUnorderedItems(lines []string, i *int) []string {
	var items []string
	var cur strings.Builder
	open := false
	prefixWidth := 2
	for *i < len(lines) {
		line := lines[*i]
		if isBlank(line) {
			break
		}
		if text, ok := unorderedMarker(line); ok {
			if open {
				items = append(items, cur.String())
				cur.Reset()
			}
			open = true
			cur.WriteString(text)
			*i++
			continue
		}
		if open && leadingWhitespaceWidth(line) >= prefixWidth {
			cur.WriteByte(' ')
			cur.WriteString(strings.TrimLeft(line[prefixWidth:], " \t"))
			*i++
			continue
		}
		break
	}
	if open {
		items = append(items, cur.String())
	}
	return items
}

func collectOrderedItems(lines []string, i *int) []string {
	var items []string
	var cur strings.Builder
	open := false
	prefixWidth := 0
	for *i < len(lines) {
		line := lines[*i]
		if isBlank(line) {
			break
		}
		if text, width, ok := orderedMarker(line); ok {
			if open {
				items = append(items, cur.String())
				cur.Reset()
			}
			open = true
			prefixWidth = width
			cur.WriteString(text)
			*i++
			continue
		}
		if open && leadingWhitespaceWidth(line) >= prefixWidth {
			cur.WriteByte(' ')
			cur.WriteString(strings.TrimLeft(line[min(prefixWidth, len(line)):], " \t"))
			*i++
			continue
		}
		break
	}
	if open {
		items = append(items, cur.String())
	}
	return items
}
