package content

import (
	"strings"
	"testing"
)

func TestParseParagraph(t *testing.T) {
	res := Parse("Hello *world*.")
	want := "<p>Hello <em>world</em>.</p>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
	if res.LineEnding != "\n" {
		t.Fatalf("LineEnding = %q, want %q", res.LineEnding, "\n")
	}
}

func TestParseHeaderCollectsTOCAndFirstHeader(t *testing.T) {
	res := Parse("# Title One\n\nbody\n\n## Title Two\n")
	if !res.HasFirstHeader || res.FirstHeader != "Title One" {
		t.Fatalf("FirstHeader = %q, %v", res.FirstHeader, res.HasFirstHeader)
	}
	if len(res.Headers) != 2 {
		t.Fatalf("Headers = %#v, want 2 entries", res.Headers)
	}
	if res.Headers[0].Slug != "title-one" || res.Headers[0].Level != 1 {
		t.Fatalf("Headers[0] = %#v", res.Headers[0])
	}
	if res.Headers[1].Slug != "title-two" || res.Headers[1].Level != 2 {
		t.Fatalf("Headers[1] = %#v", res.Headers[1])
	}
	if !strings.Contains(res.HTML, `<h1 id="title-one">Title One</h1>`) {
		t.Fatalf("HTML missing rendered h1: %q", res.HTML)
	}
}

func TestParseDescriptionIsFirstParagraph(t *testing.T) {
	res := Parse("# Header\n\nThis is the summary.\n\nMore text.\n")
	if !res.HasDescription || res.Description != "This is the summary." {
		t.Fatalf("Description = %q, %v", res.Description, res.HasDescription)
	}
}

func TestParseExcerptOffsetMarksSplitPoint(t *testing.T) {
	res := Parse("Intro paragraph.\n\n..\n\nRest of the body.\n")
	if res.ExcerptOffset == 0 {
		t.Fatalf("ExcerptOffset not recorded")
	}
	if res.HTML[:res.ExcerptOffset] != "<p>Intro paragraph.</p>\n" {
		t.Fatalf("HTML before excerpt = %q", res.HTML[:res.ExcerptOffset])
	}
}

func TestParseCodeBlockEscapesAndPreservesWhitespace(t *testing.T) {
	res := Parse("  x := a < b\n  y := x > 1\n")
	want := "<pre><code>x := a &lt; b\ny := x &gt; 1\n</code></pre>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestParseBlockquoteRendersEachLineAsParagraph(t *testing.T) {
	res := Parse("> line one\n> line two\n")
	want := "<blockquote>\n<p>line one</p>\n<p>line two</p>\n</blockquote>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestParseUnorderedListWithContinuation(t *testing.T) {
	res := Parse("* first item\n  continued\n* second item\n")
	want := "<ul>\n<li>first item continued</li>\n<li>second item</li>\n</ul>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestParseOrderedListRejectsEmbeddedSpace(t *testing.T) {
	res := Parse("1 . not a list item\n")
	if strings.Contains(res.HTML, "<ol>") {
		t.Fatalf("HTML wrongly treated as ordered list: %q", res.HTML)
	}
}

func TestParseRuleAndRawHTML(t *testing.T) {
	res := Parse("---\n\n<div>raw</div>\n")
	if !strings.Contains(res.HTML, "<hr />\n") {
		t.Fatalf("missing <hr />: %q", res.HTML)
	}
	if !strings.Contains(res.HTML, "<div>raw</div>\n") {
		t.Fatalf("raw HTML block not passed through verbatim: %q", res.HTML)
	}
}

func TestParseLinkAndImage(t *testing.T) {
	res := Parse("See [the site](https://example.com) and ![alt text](img.png).")
	if !strings.Contains(res.HTML, `<a href="https://example.com">the site</a>`) {
		t.Fatalf("link not rendered: %q", res.HTML)
	}
	if !strings.Contains(res.HTML, `<img src="img.png" alt="alt text">`) {
		t.Fatalf("image not rendered: %q", res.HTML)
	}
}

func TestParseUnbalancedEmphasisDegradesToLiteral(t *testing.T) {
	res := Parse("a * b")
	if strings.Contains(res.HTML, "<em>") {
		t.Fatalf("unbalanced emphasis should not open a tag: %q", res.HTML)
	}
}

func TestParseCRLFLineEndingDetected(t *testing.T) {
	res := Parse("line one\r\nline two\r\n")
	if res.LineEnding != "\r\n" {
		t.Fatalf("LineEnding = %q, want %q", res.LineEnding, "\r\n")
	}
	want := "<p>line one\r\nline two</p>\r\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestParseCRLFHeaderAndRuleUseDetectedEnding(t *testing.T) {
	res := Parse("# Title\r\n\r\n---\r\n")
	want := "<h1 id=\"title\">Title</h1>\r\n<hr />\r\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestEscapeApostropheAndSlash(t *testing.T) {
	res := Parse("it's a path/to/file")
	want := "<p>it&#x27;s a path&#x2F;to&#x2F;file</p>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestParseTrailingSpaceRunCollapsesToBreak(t *testing.T) {
	res := Parse("line one   \nline two\n")
	want := "<p>line one<br />\nline two</p>\n"
	if res.HTML != want {
		t.Fatalf("HTML = %q, want %q", res.HTML, want)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":  "hello-world",
		"  spaced out  ": "spaced-out",
		"Already-Slug":   "already-slug",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
