package content

// splitLines breaks body into lines, treating "\n", "\r\n" and "\r" as
// equivalent line boundaries, and reports the first line ending actually
// encountered so the caller can reuse it for every newline it emits. If no
// line ending appears at all, "\n" is reported (spec §4.2).
func splitLines(body string) (lines []string, ending string) {
	var line []byte
	i := 0
	for i < len(body) {
		c := body[i]
		switch c {
		case '\n', '\r':
			if ending == "" {
				if c == '\r' && i+1 < len(body) && body[i+1] == '\n' {
					ending = "\r\n"
				} else {
					ending = string(c)
				}
			}
			if c == '\r' && i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			lines = append(lines, string(line))
			line = line[:0]
			i++
			continue
		default:
			line = append(line, c)
			i++
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	if ending == "" {
		ending = "\n"
	}
	return lines, ending
}
