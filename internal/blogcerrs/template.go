package blogcerrs

import "fmt"

// TemplateErrorKind enumerates the template-parser's surface-syntax
// failures (spec §4.4).
type TemplateErrorKind int

const (
	TemplateBadStatementName TemplateErrorKind = iota
	TemplateStatementSyntax
	TemplateUnknownBlockType
	TemplateNestedBlock
	TemplateNestedForeach
	TemplateUnmatchedEnd
	TemplateDuplicateTrim
	TemplateDuplicateElse
	TemplateBadVariableName
	TemplateUnterminatedString
	TemplateUnclosedStatement
	TemplateUnclosedAtEOF
)

func (k TemplateErrorKind) String() string {
	switch k {
	case TemplateBadStatementName:
		return "TEMPLATE_BAD_STATEMENT_NAME"
	case TemplateStatementSyntax:
		return "TEMPLATE_STATEMENT_SYNTAX"
	case TemplateUnknownBlockType:
		return "TEMPLATE_UNKNOWN_BLOCK_TYPE"
	case TemplateNestedBlock:
		return "TEMPLATE_NESTED_BLOCK"
	case TemplateNestedForeach:
		return "TEMPLATE_NESTED_FOREACH"
	case TemplateUnmatchedEnd:
		return "TEMPLATE_UNMATCHED_END"
	case TemplateDuplicateTrim:
		return "TEMPLATE_DUPLICATE_TRIM"
	case TemplateDuplicateElse:
		return "TEMPLATE_DUPLICATE_ELSE"
	case TemplateBadVariableName:
		return "TEMPLATE_BAD_VARIABLE_NAME"
	case TemplateUnterminatedString:
		return "TEMPLATE_UNTERMINATED_STRING"
	case TemplateUnclosedStatement:
		return "TEMPLATE_UNCLOSED_STATEMENT"
	case TemplateUnclosedAtEOF:
		return "TEMPLATE_UNCLOSED_AT_EOF"
	default:
		return "TEMPLATE_UNKNOWN"
	}
}

// TemplateParserError is returned by internal/tmpl when a template fails to
// parse into a statement stream.
type TemplateParserError struct {
	Kind TemplateErrorKind
	Pos  Position
	Msg  string
}

func (e *TemplateParserError) Error() string {
	excerpt := e.Pos.Excerpt()
	if excerpt == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%s)\n%s", e.Kind, e.Msg, e.Pos, excerpt)
}
