package nlp

import "strings"

var openerFor = map[rune]rune{')': '(', '}': '{', ']': '['}

// BracketContents returns the non-empty text inside every well-formed
// bracket pair, in closing order. Nested pairs are reported on their own
// and also as part of the enclosing pair. Citation markers are ignored.
//
// A closer that does not match the innermost opener aborts the scan and
// yields nothing, so malformed text never reports brackets.
func BracketContents(text string) []string {
	text = RemoveReferences(text)

	var (
		stack   []rune
		buffers []*strings.Builder
		results []string
	)

	for _, c := range text {
		switch c {
		case '(', '{', '[':
			stack = append(stack, c)
			buffers = append(buffers, &strings.Builder{})
		case ')', '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != openerFor[c] {
				return nil
			}
			stack = stack[:len(stack)-1]
			inner := buffers[len(buffers)-1].String()
			buffers = buffers[:len(buffers)-1]
			results = append(results, inner)
			if len(buffers) > 0 {
				buffers[len(buffers)-1].WriteString(inner)
			}
		default:
			if len(buffers) > 0 {
				buffers[len(buffers)-1].WriteRune(c)
			}
		}
	}

	nonEmpty := results[:0]
	for _, r := range results {
		if r != "" {
			nonEmpty = append(nonEmpty, r)
		}
	}
	return nonEmpty
}
