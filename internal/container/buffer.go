// Package container provides the two low-level data structures the rest of
// the compiler is built on: a growable byte buffer and a prefix-trie
// string map. Neither is strictly required by Go (append() and map[string]
// already give amortized O(1) growth and lookup) but both are specified
// here deliberately: the buffer models the chunked-growth contract the
// original compiler relies on for output accumulation, and the trie models
// the disposer-on-replace contract the config/source maps rely on.
package container

import "fmt"

// chunkSize is the amount a Buffer grows by when it runs out of room.
// 128 matches the reference implementation's BC_STRING_CHUNK_SIZE.
const chunkSize = 128

// Buffer is a growable byte buffer with amortized O(1) append.
//
// Unlike bytes.Buffer, growth happens in fixed chunkSize increments rather
// than doubling, and Take() hands back the live backing array instead of
// copying it — callers that call Take() must not use the Buffer again.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, chunkSize)}
}

func (b *Buffer) grow(extra int) {
	need := len(b.data) + extra
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = chunkSize
	}
	for newCap < need {
		newCap += chunkSize
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// AppendString appends s verbatim.
func (b *Buffer) AppendString(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// AppendFormat appends fmt.Sprintf(format, args...).
func (b *Buffer) AppendFormat(format string, args ...any) {
	b.AppendString(fmt.Sprintf(format, args...))
}

// AppendEscaped appends s with a single escape pass applied: "\x" becomes
// the literal byte "x" for any x, and all other bytes pass through
// unchanged. This mirrors the unquoting blogc applies to quoted template
// operands and backslash-escaped inline markdown characters.
func (b *Buffer) AppendEscaped(s string) {
	b.grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			b.data = append(b.data, s[i])
			continue
		}
		b.data = append(b.data, s[i])
	}
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// String returns a copy of the buffered bytes as a string. Safe to call
// repeatedly; unlike Take it does not invalidate the buffer.
func (b *Buffer) String() string {
	return string(b.data)
}

// Take hands back the buffer's backing bytes and discards the wrapper. The
// Buffer must not be used after calling Take.
func (b *Buffer) Take() []byte {
	data := b.data
	b.data = nil
	return data
}
