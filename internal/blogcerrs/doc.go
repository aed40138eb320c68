// Package blogcerrs provides centralized structured error types for the
// blogc compilation core.
//
// All custom error types in this package:
//   - Use pointer receivers for the Error() method
//   - Carry the byte offset (and derived line/column) of the failure, in
//     the case of the two parser errors (SourceParserError,
//     TemplateParserError); the loader, usage and datetime errors carry no
//     position
//   - Implement Unwrap() when wrapping an underlying error
//   - Never format ANSI color — that is a CLI-layer concern (cmd/errors.go)
//
// Error types are organized by the parser/loader they come from:
//   - source.go: source-parser preamble/body errors (spec §4.3, §7)
//   - template.go: template-parser surface-syntax errors (spec §4.4, §7)
//   - loader.go: file read / per-source wrapping errors (spec §7)
//   - datetime.go: date reformatting, reported as a warning only
package blogcerrs
