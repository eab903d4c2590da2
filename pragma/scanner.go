package pragma

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// We don't do a lexer/parser split with a token stream; the Scanner is
// simply a cursor in the normalized logical line with associated utility
// methods, used directly from the recursive descent parser.
type Scanner struct {
	line *LogicalLine
	cur  int
}

func NewScanner(line *LogicalLine) *Scanner {
	return &Scanner{line: line}
}

// Returns a clone of the scanner; this is used to do look-ahead parsing
func (s Scanner) Clone() *Scanner {
	result := new(Scanner)
	*result = s
	return result
}

// Line returns the logical line the scanner walks.
func (s *Scanner) Line() *LogicalLine {
	return s.line
}

// Offset is the current byte offset in the normalized text.
func (s *Scanner) Offset() int {
	return s.cur
}

// OrigOffset is the current position mapped back to the original input.
func (s *Scanner) OrigOffset() int {
	return s.line.OrigOffset(s.cur)
}

// Pos is the current position as a 1-based line/column in the original
// input.
func (s *Scanner) Pos() Pos {
	return s.line.PosAt(s.cur)
}

func (s *Scanner) AtEnd() bool {
	return s.cur >= len(s.line.Text)
}

// Peek returns the rune at the cursor without advancing; utf8.RuneError
// at end of input.
func (s *Scanner) Peek() rune {
	r, _ := utf8.DecodeRuneInString(s.line.Text[s.cur:])
	return r
}

func (s *Scanner) SkipWhitespace() {
	for !s.AtEnd() {
		r, w := utf8.DecodeRuneInString(s.line.Text[s.cur:])
		if !unicode.IsSpace(r) {
			return
		}
		s.cur += w
	}
}

// Consume advances over r if it is the next rune and reports whether it did.
func (s *Scanner) Consume(r rune) bool {
	got, w := utf8.DecodeRuneInString(s.line.Text[s.cur:])
	if got != r {
		return false
	}
	s.cur += w
	return true
}

func isWordStart(r rune) bool {
	return xid.Start(r) || r == '_'
}

func isWordContinue(r rune) bool {
	return xid.Continue(r) || r == '_'
}

// ScanWord scans one identifier token (directive and clause names are
// identifier-shaped). Returns "" when the cursor is not on a word start.
func (s *Scanner) ScanWord() string {
	r, _ := utf8.DecodeRuneInString(s.line.Text[s.cur:])
	if !isWordStart(r) {
		return ""
	}
	start := s.cur
	for i, r := range s.line.Text[s.cur:] {
		if !isWordContinue(r) {
			s.cur += i
			return s.line.Text[start:s.cur]
		}
	}
	s.cur = len(s.line.Text)
	return s.line.Text[start:]
}

// RestToken returns the run of non-whitespace characters at the cursor
// without advancing; used for error reporting.
func (s *Scanner) RestToken() string {
	rest := s.line.Text[s.cur:]
	for i, r := range rest {
		if unicode.IsSpace(r) {
			return rest[:i]
		}
	}
	return rest
}

// ScanBalanced consumes a '(' at the cursor and returns the interior text
// verbatim, with the cursor left after the matching ')'. Nested (), [] and
// {} pairs are tracked, as are '...' and "..." literals with backslash
// escapes, so brackets inside strings do not count.
func (s *Scanner) ScanBalanced() (string, *Error) {
	if !s.Consume('(') {
		return "", &Error{
			Kind:   MalformedClause,
			Offset: s.OrigOffset(),
			Pos:    s.Pos(),
			Reason: "expected '('",
		}
	}
	openOffset := s.cur - 1
	start := s.cur
	depth := 1
	inStr := rune(0)
	skipNext := false
	for i, r := range s.line.Text[start:] {
		if skipNext {
			skipNext = false
			continue
		}
		if inStr != 0 {
			if r == '\\' {
				skipNext = true
			} else if r == inStr {
				inStr = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			inStr = r
		case '(', '[', '{':
			depth++
		case ']', '}':
			depth--
		case ')':
			depth--
			if depth == 0 {
				s.cur = start + i + 1
				return s.line.Text[start : start+i], nil
			}
		}
	}
	s.cur = len(s.line.Text)
	return "", &Error{
		Kind:   UnbalancedBrackets,
		Offset: s.line.OrigOffset(openOffset),
		Pos:    s.line.PosAt(openOffset),
	}
}

// SplitTopLevel splits s at occurrences of sep that are not nested inside
// (), [], {} or string literals. Items are whitespace-trimmed.
func SplitTopLevel(s string, sep rune) []string {
	var items []string
	depth := 0
	inStr := rune(0)
	skipNext := false
	last := 0
	for i, r := range s {
		if skipNext {
			skipNext = false
			continue
		}
		if inStr != 0 {
			if r == '\\' {
				skipNext = true
			} else if r == inStr {
				inStr = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			inStr = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				items = append(items, strings.TrimSpace(s[last:i]))
				last = i + utf8.RuneLen(r)
			}
		}
	}
	items = append(items, strings.TrimSpace(s[last:]))
	return items
}

// CutTopLevel cuts s around the first top-level occurrence of sep.
func CutTopLevel(s string, sep rune) (head, tail string, found bool) {
	depth := 0
	inStr := rune(0)
	skipNext := false
	for i, r := range s {
		if skipNext {
			skipNext = false
			continue
		}
		if inStr != 0 {
			if r == '\\' {
				skipNext = true
			} else if r == inStr {
				inStr = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			inStr = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				return s[:i], s[i+utf8.RuneLen(r):], true
			}
		}
	}
	return s, "", false
}
