package content

import (
	"strings"

	"github.com/gopherblog/blogc/internal/container"
)

// Parse runs the full content-parser pipeline over a source body: it splits
// the body into lines, groups the lines into blocks, renders each block to
// HTML with inline parsing applied, and collects the header/description/
// excerpt metadata the source and renderer layers need.
func Parse(body string) Result {
	lines, ending := splitLines(body)
	blocks := scanBlocks(lines)

	buf := container.NewBuffer()
	res := Result{LineEnding: ending}

	for _, blk := range blocks {
		switch blk.kind {
		case blockExcerpt:
			if res.ExcerptOffset == 0 {
				res.ExcerptOffset = buf.Len()
			}
			continue
		case blockHeader:
			emitHeader(buf, blk, &res, ending)
			continue
		case blockRule:
			buf.AppendString("<hr />")
			buf.AppendString(ending)
			continue
		}

		text := strings.Join(blk.lines, ending)
		switch blk.kind {
		case blockParagraph:
			if !res.HasDescription && text != "" {
				res.Description = strings.TrimSpace(strings.Join(blk.lines, " "))
				res.HasDescription = true
			}
			buf.AppendString("<p>")
			buf.AppendString(inlineHTML(text, ending))
			buf.AppendString("</p>")
			buf.AppendString(ending)

		case blockBlockquote:
			buf.AppendString("<blockquote>")
			buf.AppendString(ending)
			for _, l := range blk.lines {
				buf.AppendString("<p>")
				buf.AppendString(inlineHTML(l, ending))
				buf.AppendString("</p>")
				buf.AppendString(ending)
			}
			buf.AppendString("</blockquote>")
			buf.AppendString(ending)

		case blockCode:
			buf.AppendString("<pre><code>")
			buf.AppendString(htmlEscape(strings.Join(blk.lines, ending)))
			buf.AppendString(ending)
			buf.AppendString("</code></pre>")
			buf.AppendString(ending)

		case blockRawHTML:
			buf.AppendString(strings.Join(blk.lines, ending))
			buf.AppendString(ending)

		case blockListUnordered:
			buf.AppendString("<ul>")
			buf.AppendString(ending)
			for _, item := range blk.lines {
				buf.AppendString("<li>")
				buf.AppendString(inlineHTML(item, ending))
				buf.AppendString("</li>")
				buf.AppendString(ending)
			}
			buf.AppendString("</ul>")
			buf.AppendString(ending)

		case blockListOrdered:
			buf.AppendString("<ol>")
			buf.AppendString(ending)
			for _, item := range blk.lines {
				buf.AppendString("<li>")
				buf.AppendString(inlineHTML(item, ending))
				buf.AppendString("</li>")
				buf.AppendString(ending)
			}
			buf.AppendString("</ol>")
			buf.AppendString(ending)
		}
	}

	res.HTML = buf.String()
	return res
}

// emitHeader renders a header block, records it in the table of contents,
// and captures the first header's plain text for Result.FirstHeader.
func emitHeader(buf *container.Buffer, blk rawBlock, res *Result, ending string) {
	level, text, ok := headerLevel(blk.lines[0])
	if !ok {
		return
	}
	slug := slugify(text)
	rendered := inlineHTML(text, ending)

	if !res.HasFirstHeader {
		res.FirstHeader = text
		res.HasFirstHeader = true
	}
	res.Headers = append(res.Headers, HeaderRecord{Level: level, Slug: slug, Text: rendered})

	buf.AppendFormat(`<h%d id="%s">`, level, slug)
	buf.AppendString(rendered)
	buf.AppendFormat("</h%d>", level)
	buf.AppendString(ending)
}
