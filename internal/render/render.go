// Package render implements the renderer (spec §4.5): a program-counter
// driven interpreter over a internal/tmpl Program that produces the final
// rendered byte string.
package render

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gopherblog/blogc/internal/container"
	"github.com/gopherblog/blogc/internal/tmpl"
)

// state carries everything the interpreter loop mutates. Field names match
// the registers named in spec §4.5 so the control flow below reads as a
// direct transcription.
type state struct {
	program tmpl.Program
	global  *container.Map
	sources []*container.Map
	listing bool
	pc      int
	output  *container.Buffer

	insideBlock   bool
	currentSource int // index into sources; -1 means "no local scope"
	listingStart  int // program index to resume at; -1 when not iterating a listing

	foreachTokens []string
	foreachCursor int
	foreachStart  int // program index to resume at; -1 when no foreach is active

	warnings error
}

// Render interprets program against sources and global, with listing
// selecting the block-execution semantics table in spec §4.5. It never
// fails outright: missing variables and bad date formats degrade per the
// failure semantics in §4.5, and any date-format warnings are returned
// bundled in the second result (nil if none occurred).
func Render(program tmpl.Program, sources []*container.Map, global *container.Map, listing bool) (string, error) {
	st := &state{
		program:       program,
		global:        global,
		sources:       sources,
		listing:       listing,
		output:        container.NewBuffer(),
		currentSource: -1,
		listingStart:  -1,
		foreachStart:  -1,
	}
	st.run()
	return st.output.String(), st.warnings
}

func (st *state) run() {
	for st.pc < len(st.program) {
		stmt := st.program[st.pc]
		switch stmt.Kind {
		case tmpl.Content:
			st.output.AppendString(stmt.Value)
			st.pc++

		case tmpl.Variable:
			st.emitVariable(stmt.Value)
			st.pc++

		case tmpl.Block:
			st.handleBlock(stmt.Value)

		case tmpl.EndBlock:
			st.handleEndBlock()

		case tmpl.IfDef, tmpl.IfNDef, tmpl.If:
			if st.evalCondition(stmt) {
				st.pc++
			} else {
				st.pc = skipFalseBranch(st.program, st.pc)
			}

		case tmpl.Else:
			st.pc = skipToMatchingEndIf(st.program, st.pc)

		case tmpl.EndIf:
			st.pc++

		case tmpl.Foreach:
			st.handleForeach(stmt.Value)

		case tmpl.EndForeach:
			st.handleEndForeach()
		}
	}
}

// handleBlock applies the listing/name behavior table from spec §4.5.
func (st *state) handleBlock(name string) {
	execute := false
	iterate := false
	switch {
	case !st.listing && name == "entry":
		execute = true
	case st.listing && name == "listing":
		execute, iterate = true, true
	case st.listing && name == "listing_once":
		execute = true
	}

	if !execute {
		st.pc = skipBlockBody(st.program, st.pc)
		return
	}

	if iterate {
		if len(st.sources) == 0 {
			st.pc = skipBlockBody(st.program, st.pc)
			return
		}
		st.currentSource = 0
		st.listingStart = st.pc + 1
	} else if name == "entry" && len(st.sources) > 0 {
		st.currentSource = 0
	} else {
		st.currentSource = -1
	}

	st.insideBlock = true
	st.pc++
}

func (st *state) handleEndBlock() {
	if st.listingStart != -1 {
		st.currentSource++
		if st.currentSource < len(st.sources) {
			st.pc = st.listingStart
			return
		}
		st.listingStart = -1
	}
	st.currentSource = -1
	st.insideBlock = false
	st.pc++
}

// skipBlockBody returns the program index just past the ENDBLOCK matching
// the BLOCK at from. Blocks never nest (spec §3 invariant), so the next
// ENDBLOCK in program order is always the match.
func skipBlockBody(program tmpl.Program, from int) int {
	i := from + 1
	for i < len(program) && program[i].Kind != tmpl.EndBlock {
		i++
	}
	if i < len(program) {
		i++
	}
	return i
}

func (st *state) handleForeach(varName string) {
	value, ok := st.getVariable(varName)
	tokens := []string{}
	if ok {
		tokens = strings.Fields(value)
	}
	if len(tokens) == 0 {
		st.pc = skipForeachBody(st.program, st.pc)
		return
	}
	st.foreachTokens = tokens
	st.foreachCursor = 0
	st.foreachStart = st.pc + 1
	st.pc++
}

func (st *state) handleEndForeach() {
	st.foreachCursor++
	if st.foreachCursor < len(st.foreachTokens) {
		st.pc = st.foreachStart
		return
	}
	st.foreachTokens = nil
	st.foreachStart = -1
	st.pc++
}

func skipForeachBody(program tmpl.Program, from int) int {
	i := from + 1
	for i < len(program) && program[i].Kind != tmpl.EndForeach {
		i++
	}
	if i < len(program) {
		i++
	}
	return i
}

// skipFalseBranch advances past a conditional whose test failed, stopping
// just after the matching ENDIF, or just after a depth-0 ELSE to enter it.
func skipFalseBranch(program tmpl.Program, from int) int {
	depth := 0
	i := from + 1
	for i < len(program) {
		switch program[i].Kind {
		case tmpl.If, tmpl.IfDef, tmpl.IfNDef:
			depth++
		case tmpl.EndIf:
			if depth == 0 {
				return i + 1
			}
			depth--
		case tmpl.Else:
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

// skipToMatchingEndIf advances past an ELSE branch reached by falling
// through a true condition, stopping just after its ENDIF.
func skipToMatchingEndIf(program tmpl.Program, from int) int {
	depth := 0
	i := from + 1
	for i < len(program) {
		switch program[i].Kind {
		case tmpl.If, tmpl.IfDef, tmpl.IfNDef:
			depth++
		case tmpl.EndIf:
			if depth == 0 {
				return i + 1
			}
			depth--
		}
		i++
	}
	return i
}

func (st *state) evalCondition(stmt tmpl.Statement) bool {
	switch stmt.Kind {
	case tmpl.IfDef:
		_, ok := st.getVariable(stmt.Value)
		return ok
	case tmpl.IfNDef:
		_, ok := st.getVariable(stmt.Value)
		return !ok
	case tmpl.If:
		lhs, _ := st.getVariable(stmt.Value)
		var rhs string
		if strings.HasPrefix(stmt.Value2, `"`) {
			rhs = unquote(stmt.Value2)
		} else {
			rhs, _ = st.getVariable(stmt.Value2)
		}
		var sign tmpl.Op
		switch {
		case lhs < rhs:
			sign = tmpl.OpLT
		case lhs > rhs:
			sign = tmpl.OpGT
		default:
			sign = tmpl.OpEQ
		}
		return stmt.Op&sign != 0
	}
	return false
}

// unquote strips a double-quoted literal's surrounding quotes and unescapes
// \" to " (spec §4.4 value2 contract).
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) && inner[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// getVariable implements blogc_get_variable: local scope (the current
// source entry, if any) is checked before global, except for the special
// FOREACH_ITEM name which is resolved from the innermost foreach.
func (st *state) getVariable(name string) (string, bool) {
	if name == "FOREACH_ITEM" {
		if st.foreachStart != -1 && st.foreachCursor < len(st.foreachTokens) {
			return st.foreachTokens[st.foreachCursor], true
		}
		return "", false
	}
	if local := st.localSource(); local != nil {
		if v, ok := local.Get(name); ok {
			return v, true
		}
	}
	return st.global.Get(name)
}

func (st *state) localSource() *container.Map {
	if st.currentSource >= 0 && st.currentSource < len(st.sources) {
		return st.sources[st.currentSource]
	}
	return nil
}

// emitVariable resolves name and appends it to output, applying the
// _FORMATTED suffix sugar: DATE_FORMATTED and DATE_*_FORMATTED reformat
// their base value via DATE_FORMAT, anything else _FORMATTED just resolves
// its base name unchanged.
func (st *state) emitVariable(name string) {
	const suffix = "_FORMATTED"
	if strings.HasSuffix(name, suffix) && name != suffix {
		base := strings.TrimSuffix(name, suffix)
		val, ok := st.getVariable(base)
		if !ok {
			return
		}
		if strings.HasPrefix(name, "DATE_") {
			format, _ := st.getVariable("DATE_FORMAT")
			formatted, err := formatDate(val, format)
			if err != nil {
				st.warnings = multierror.Append(st.warnings, err)
				st.output.AppendString(val)
				return
			}
			st.output.AppendString(formatted)
			return
		}
		st.output.AppendString(val)
		return
	}
	if val, ok := st.getVariable(name); ok {
		st.output.AppendString(val)
	}
}
