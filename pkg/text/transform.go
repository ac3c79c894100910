// Package text implements the character-level transforms applied to matched
// blocks before troff emission: escaping, leading-indent trimming,
// re-indentation, and ASCII upper-casing.
//
// Each transform writes into a fixed-capacity scratch buffer owned by the
// Transformer and returns a view into it. The view is valid only until the
// next call to the same transform; callers must finish with a result before
// requesting another. Exceeding a buffer's capacity is an error, never a
// silent truncation.
package text

import (
	"errors"
	"fmt"
)

// DefaultScratchCap is the default capacity of each scratch buffer, sized
// generously for the largest block in a typical reference manual.
const DefaultScratchCap = 5000

// ErrBufferOverflow indicates a transform's output exceeded its scratch
// buffer capacity.
var ErrBufferOverflow = errors.New("scratch buffer overflow")

// excerptLen bounds how much offending input appears in diagnostics.
const excerptLen = 40

// Excerpt returns a short prefix of s suitable for an error message.
func Excerpt(s []byte) string {
	if len(s) <= excerptLen {
		return string(s)
	}
	return string(s[:excerptLen]) + "..."
}

// Transformer holds one scratch buffer per transform. A Transformer is not
// safe for concurrent use; the whole run is single-threaded.
type Transformer struct {
	capacity int
	escBuf   []byte
	trimBuf  []byte
	indent   []byte
}

// NewTransformer creates a Transformer whose scratch buffers hold up to
// capacity bytes each. A non-positive capacity selects DefaultScratchCap.
func NewTransformer(capacity int) *Transformer {
	if capacity <= 0 {
		capacity = DefaultScratchCap
	}
	return &Transformer{
		capacity: capacity,
		escBuf:   make([]byte, 0, capacity),
		trimBuf:  make([]byte, 0, capacity),
		indent:   make([]byte, 0, capacity),
	}
}

// Escape doubles every backslash and backslash-escapes an apostrophe or
// period appearing as the first character after a newline, so body text
// cannot be misread as a troff control line.
//
// The returned slice aliases the Transformer's escape buffer and is
// invalidated by the next Escape call.
func (t *Transformer) Escape(s []byte) ([]byte, error) {
	out := t.escBuf[:0]
	for i := 0; i < len(s); i++ {
		c := s[i]
		n := 1
		if c == '\\' || ((c == '\'' || c == '.') && i > 0 && s[i-1] == '\n') {
			n = 2
		}
		if len(out)+n > t.capacity {
			return nil, fmt.Errorf("%w: escaping %q", ErrBufferOverflow, Excerpt(s))
		}
		if n == 2 {
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	t.escBuf = out[:0]
	return out, nil
}

// TrimLeadingIndent removes spaces occurring at the start of the string or
// directly after a newline. Newlines and all non-leading content pass
// through verbatim.
//
// The returned slice aliases the Transformer's trim buffer and is
// invalidated by the next TrimLeadingIndent call.
func (t *Transformer) TrimLeadingIndent(s []byte) ([]byte, error) {
	out := t.trimBuf[:0]
	trimming := true
	for _, c := range s {
		trimming = c == '\n' || (trimming && c == ' ')
		if trimming && c == ' ' {
			continue
		}
		if len(out) >= t.capacity {
			return nil, fmt.Errorf("%w: trimming %q", ErrBufferOverflow, Excerpt(s))
		}
		out = append(out, c)
	}
	t.trimBuf = out[:0]
	return out, nil
}

// Reindent shifts every line of s by delta columns. A positive delta
// prepends delta spaces to each line; a negative delta strips up to -delta
// spaces from the run directly following each newline (or at the very
// start), stopping early when fewer are present. Content after the leading
// run is never touched.
//
// The returned slice aliases the Transformer's indent buffer and is
// invalidated by the next Reindent call.
func (t *Transformer) Reindent(s []byte, delta int) ([]byte, error) {
	out := t.indent[:0]
	atStart := true
	strip := 0
	for _, c := range s {
		if atStart {
			if delta > 0 {
				if len(out)+delta > t.capacity {
					return nil, fmt.Errorf("%w: indenting %q", ErrBufferOverflow, Excerpt(s))
				}
				for range delta {
					out = append(out, ' ')
				}
			}
			strip = -delta
			atStart = false
		}
		if strip > 0 && c == ' ' {
			strip--
			continue
		}
		strip = 0
		if len(out) >= t.capacity {
			return nil, fmt.Errorf("%w: indenting %q", ErrBufferOverflow, Excerpt(s))
		}
		out = append(out, c)
		if c == '\n' {
			atStart = true
		}
	}
	t.indent = out[:0]
	return out, nil
}

// ToUpperASCII returns a copy of s with ASCII letters upper-cased.
func ToUpperASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// LeadingSpaces returns the length of the run of spaces at the start of s.
func LeadingSpaces(s []byte) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// Span returns the length of the leading run of s drawn from chars.
func Span(s []byte, chars string) int {
	n := 0
	for n < len(s) {
		found := false
		for i := 0; i < len(chars); i++ {
			if s[n] == chars[i] {
				found = true
				break
			}
		}
		if !found {
			break
		}
		n++
	}
	return n
}
