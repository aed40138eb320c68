package content

import "strings"

// htmlEscape escapes the bytes that matter inside HTML text content,
// matching the reference content-parser's htmlentities() table:
// & < > " ' / become &amp; &lt; &gt; &quot; &#x27; &#x2F;.
func htmlEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		case '/':
			b.WriteString("&#x2F;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// htmlEscapeAttr escapes the same bytes as htmlEscape except '/', which it
// leaves as-is, for use inside an href/src/alt attribute value.
func htmlEscapeAttr(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#x27;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// slugify turns header text into a <hN> id attribute: lowercase ASCII
// letters and digits pass through, runs of anything else collapse to a
// single hyphen, and leading/trailing hyphens are trimmed.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // true so a leading non-alnum run doesn't emit a hyphen
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
			lastHyphen = false
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c - 'A' + 'a')
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	out := b.String()
	return strings.TrimSuffix(out, "-")
}
