package tmpl

import "strings"

// findConstruct returns the index of the next "{%" or "{{" at or after
// pos, or len(src) if neither appears again.
func findConstruct(src string, pos int) int {
	for i := pos; i < len(src); i++ {
		if src[i] == '{' && i+1 < len(src) && (src[i+1] == '%' || src[i+1] == '{') {
			return i
		}
	}
	return len(src)
}

func skipSpaces(src string, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
		i++
	}
	return i
}

// readKeyword reads a run of lowercase ASCII letters/underscore, the
// surface form statement names and block-type names use.
func readKeyword(src string, i int) (string, int) {
	start := i
	for i < len(src) && ((src[i] >= 'a' && src[i] <= 'z') || src[i] == '_') {
		i++
	}
	return src[start:i], i
}

// readVarName reads a template variable name, [A-Z][A-Z0-9_]*.
func readVarName(src string, i int) (string, int, bool) {
	if i >= len(src) || src[i] < 'A' || src[i] > 'Z' {
		return "", i, false
	}
	start := i
	i++
	for i < len(src) && ((src[i] >= 'A' && src[i] <= 'Z') || (src[i] >= '0' && src[i] <= '9') || src[i] == '_') {
		i++
	}
	return src[start:i], i, true
}

// readOperator reads one of == != < > <= >= and returns its Op encoding.
func readOperator(src string, i int) (Op, int, bool) {
	two := ""
	if i+1 < len(src) {
		two = src[i : i+2]
	}
	switch two {
	case "==":
		return OpEQ, i + 2, true
	case "!=":
		return OpLT | OpGT, i + 2, true
	case "<=":
		return OpLT | OpEQ, i + 2, true
	case ">=":
		return OpGT | OpEQ, i + 2, true
	}
	if i < len(src) {
		switch src[i] {
		case '<':
			return OpLT, i + 1, true
		case '>':
			return OpGT, i + 1, true
		}
	}
	return 0, i, false
}

// readQuoted reads a double-quoted string starting at the opening quote and
// returns the literal INCLUDING its quotes, with \" escapes left untouched
// (the renderer unquotes). Returns ok=false if unterminated.
func readQuoted(src string, i int) (string, int, bool) {
	if i >= len(src) || src[i] != '"' {
		return "", i, false
	}
	start := i
	i++
	for i < len(src) {
		if src[i] == '\\' && i+1 < len(src) {
			i += 2
			continue
		}
		if src[i] == '"' {
			i++
			return src[start:i], i, true
		}
		i++
	}
	return "", i, false
}

// readOperand reads either a quoted literal or a variable name.
func readOperand(src string, i int) (string, int, bool) {
	if i < len(src) && src[i] == '"' {
		return readQuoted(src, i)
	}
	return readVarName(src, i)
}

// lstrip removes trailing-as-leading ASCII whitespace from the front of s.
func lstrip(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

// rstrip removes trailing ASCII whitespace from the end of s.
func rstrip(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
