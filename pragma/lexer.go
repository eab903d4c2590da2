package pragma

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LogicalLine is the lexer output: one directive folded into a single
// normalized line with the sentinel stripped, plus a span map back to the
// original input.
type LogicalLine struct {
	// Text is the directive text after the sentinel, continuation markers
	// removed and inter-line whitespace collapsed to a single space.
	Text    string
	Dialect Dialect
	Lang    BaseLang
	File    FileRef

	src         string
	origOffsets []int // per byte of Text: byte offset in src
}

// OrigOffset maps a byte offset in Text back to the original input.
func (l *LogicalLine) OrigOffset(norm int) int {
	if norm >= 0 && norm < len(l.origOffsets) {
		return l.origOffsets[norm]
	}
	return len(l.src)
}

// PosAt resolves a byte offset in Text to a 1-based line/column in the
// original input.
func (l *LogicalLine) PosAt(norm int) Pos {
	return l.posAtOrig(l.OrigOffset(norm))
}

func (l *LogicalLine) posAtOrig(orig int) Pos {
	if orig > len(l.src) {
		orig = len(l.src)
	}
	line, lineStart := 1, 0
	for i := 0; i < orig; i++ {
		if l.src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Pos{File: l.File, Line: line, Col: orig - lineStart + 1}
}

// physLine is one physical line of the raw input, \r\n normalized away.
type physLine struct {
	text  string
	start int // byte offset of the line in the source
}

func splitPhysLines(src string) []physLine {
	var lines []physLine
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			text := src[start:i]
			text = strings.TrimSuffix(text, "\r")
			lines = append(lines, physLine{text: text, start: start})
			start = i + 1
		}
	}
	lines = append(lines, physLine{text: strings.TrimSuffix(src[start:], "\r"), start: start})
	return lines
}

// builder accumulates the normalized text together with the per-byte
// origin offsets.
type lineBuilder struct {
	text    strings.Builder
	offsets []int
}

// append copies s into the normalized text; s starts at byte offset orig
// in the source.
func (b *lineBuilder) append(s string, orig int) {
	for i := 0; i < len(s); i++ {
		b.offsets = append(b.offsets, orig+i)
	}
	b.text.WriteString(s)
}

// space writes the single joining space between folded lines.
func (b *lineBuilder) space(orig int) {
	if b.text.Len() == 0 {
		return
	}
	b.offsets = append(b.offsets, orig)
	b.text.WriteByte(' ')
}

type sentinelMatch struct {
	dialect Dialect
	lang    BaseLang
	length  int // bytes consumed from the start of the line text
}

// matchSentinel recognizes the directive prefix at the start of trimmed
// line text. want narrows which language families are acceptable
// (LangDetect accepts all).
func matchSentinel(text string, want BaseLang) (sentinelMatch, bool) {
	lower := strings.ToLower(text)

	if want == LangDetect || want == LangC {
		rest, n := text, 0
		if strings.HasPrefix(rest, "#") {
			n++
			rest = rest[1:]
			for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
				n++
				rest = rest[1:]
			}
			if strings.HasPrefix(rest, "pragma") {
				n += len("pragma")
				rest = rest[len("pragma"):]
				for len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
					n++
					rest = rest[1:]
				}
				if d, ok := dialectWord(rest); ok {
					return sentinelMatch{dialect: d, lang: LangC, length: n + 3}, true
				}
			}
		} else if d, ok := dialectWord(rest); ok {
			// bare "omp ..." / "acc ..." input, accepted the way the C ABI
			// accepts pre-stripped pragma text
			return sentinelMatch{dialect: d, lang: LangC, length: 3}, true
		}
	}

	if want == LangDetect || want == LangFortranFree || want == LangFortranFixed {
		lead := lower[:min(1, len(lower))]
		if lead == "!" || lead == "c" || lead == "*" {
			if strings.HasPrefix(lower[1:], "$omp") || strings.HasPrefix(lower[1:], "$acc") {
				d := OpenMP
				if lower[1:5] == "$acc" {
					d = OpenACC
				}
				lang := LangFortranFree
				if lead != "!" || want == LangFortranFixed {
					lang = LangFortranFixed
				}
				if want != LangDetect && want != lang {
					return sentinelMatch{}, false
				}
				return sentinelMatch{dialect: d, lang: lang, length: 5}, true
			}
		}
	}

	return sentinelMatch{}, false
}

// dialectWord matches "omp" or "acc" followed by whitespace or end of line.
func dialectWord(s string) (Dialect, bool) {
	var d Dialect
	switch {
	case strings.HasPrefix(s, "omp"):
		d = OpenMP
	case strings.HasPrefix(s, "acc"):
		d = OpenACC
	default:
		return 0, false
	}
	rest := s[3:]
	if rest == "" {
		return d, true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return d, unicode.IsSpace(r)
}

// Normalize folds a raw multi-line directive into a LogicalLine. lang may
// be LangDetect to infer the base language from the sentinel form.
func Normalize(input string, lang BaseLang, file FileRef) (*LogicalLine, *Error) {
	if !utf8.ValidString(input) {
		return nil, &Error{Kind: InvalidUTF8, Pos: Pos{File: file}}
	}
	if strings.TrimSpace(input) == "" {
		return nil, &Error{Kind: EmptyInput, Pos: Pos{File: file}}
	}

	lines := splitPhysLines(input)

	// locate the first non-blank line; the sentinel must start there
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first].text) == "" {
		first++
	}
	head := lines[first]
	indent := len(head.text) - len(strings.TrimLeft(head.text, " \t"))
	if lang == LangFortranFixed {
		// fixed form sentinels start in column 1
		indent = 0
	}
	l := &LogicalLine{File: file, src: input}
	m, ok := matchSentinel(head.text[indent:], lang)
	if !ok {
		offset := head.start + indent
		return nil, &Error{
			Kind:   UnknownSentinel,
			Offset: offset,
			Pos:    l.posAtOrig(offset),
		}
	}
	l.Dialect = m.dialect
	l.Lang = m.lang

	var b lineBuilder
	var err *Error
	contentStart := indent + m.length
	switch m.lang {
	case LangC:
		err = foldC(lines, first, contentStart, &b)
	case LangFortranFree:
		err = foldFortranFree(lines, first, contentStart, m.dialect, &b)
	case LangFortranFixed:
		err = foldFortranFixed(lines, first, m.dialect, &b)
	}
	if err != nil {
		err.Pos = l.posAtOrig(err.Offset)
		return nil, err
	}

	l.Text = b.text.String()
	l.origOffsets = b.offsets
	return l, nil
}

// foldC joins '\'-continued lines, discarding line-local comments.
func foldC(lines []physLine, first, contentStart int, b *lineBuilder) *Error {
	i := first
	start := contentStart
	for {
		line := lines[i]
		content := stripCComments(line.text[min(start, len(line.text)):])
		trimmed := strings.TrimRight(content, " \t")
		continued := strings.HasSuffix(trimmed, "\\")
		if continued {
			trimmed = strings.TrimRight(trimmed[:len(trimmed)-1], " \t")
		}
		lead := len(trimmed) - len(strings.TrimLeft(trimmed, " \t"))
		body := trimmed[lead:]
		if body != "" {
			b.space(line.start + start)
			b.append(body, line.start+start+lead)
		}
		if !continued {
			return nil
		}
		i++
		start = 0
		if i >= len(lines) {
			return &Error{Kind: UnterminatedContinuation, Offset: line.start + len(line.text)}
		}
	}
}

// stripCComments removes a line-local // tail and /* ... */ regions,
// respecting string literals. An unclosed /* discards the rest of the line.
func stripCComments(line string) string {
	var out strings.Builder
	inStr := rune(0)
	for i := 0; i < len(line); {
		r, w := utf8.DecodeRuneInString(line[i:])
		if inStr != 0 {
			out.WriteRune(r)
			if r == '\\' && i+w < len(line) {
				_, w2 := utf8.DecodeRuneInString(line[i+w:])
				out.WriteString(line[i+w : i+w+w2])
				i += w + w2
				continue
			}
			if r == inStr {
				inStr = 0
			}
			i += w
			continue
		}
		switch {
		case r == '"' || r == '\'':
			inStr = r
			out.WriteRune(r)
			i += w
		case r == '/' && strings.HasPrefix(line[i:], "//"):
			return out.String()
		case r == '/' && strings.HasPrefix(line[i:], "/*"):
			end := strings.Index(line[i+2:], "*/")
			if end < 0 {
				return out.String()
			}
			out.WriteByte(' ')
			i += 2 + end + 2
		default:
			out.WriteRune(r)
			i += w
		}
	}
	return out.String()
}

// foldFortranFree joins '&'-continued lines. The sentinel may be repeated
// on continuation lines, with an optional '&' after it; a repeated
// sentinel from the other dialect family is an error.
func foldFortranFree(lines []physLine, first, contentStart int, dialect Dialect, b *lineBuilder) *Error {
	i := first
	start := contentStart
	for {
		line := lines[i]
		content := stripFortranComment(line.text[min(start, len(line.text)):])
		trimmed := strings.TrimRight(content, " \t")
		continued := strings.HasSuffix(trimmed, "&")
		if continued {
			trimmed = strings.TrimRight(trimmed[:len(trimmed)-1], " \t")
		}
		lead := len(trimmed) - len(strings.TrimLeft(trimmed, " \t"))
		body := trimmed[lead:]
		if body != "" {
			b.space(line.start + start)
			b.append(body, line.start+start+lead)
		}
		if !continued {
			return nil
		}
		i++
		if i >= len(lines) || strings.TrimSpace(lines[i].text) == "" {
			return &Error{Kind: UnterminatedContinuation, Offset: line.start + len(line.text)}
		}

		next := lines[i]
		indent := len(next.text) - len(strings.TrimLeft(next.text, " \t"))
		start = indent
		rest := next.text[indent:]
		if m, ok := matchSentinel(rest, LangFortranFree); ok {
			if m.dialect != dialect {
				return &Error{Kind: MixedSentinel, Offset: next.start + indent}
			}
			start += m.length
			rest = rest[m.length:]
		}
		// optional leading '&' on the continuation line
		ws := len(rest) - len(strings.TrimLeft(rest, " \t"))
		if strings.HasPrefix(rest[ws:], "&") {
			start += ws + 1
		}
	}
}

// stripFortranComment cuts a trailing ! comment outside string literals.
func stripFortranComment(line string) string {
	inStr := rune(0)
	for i, r := range line {
		if inStr != 0 {
			if r == inStr {
				inStr = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			inStr = r
		case '!':
			return line[:i]
		}
	}
	return line
}

// foldFortranFixed folds fixed-form continuations: a following line whose
// columns 1-5 carry the sentinel and whose column 6 is non-blank continues
// the directive.
func foldFortranFixed(lines []physLine, first int, dialect Dialect, b *lineBuilder) *Error {
	for i := first; i < len(lines); i++ {
		line := lines[i]
		if len(line.text) < 6 {
			if i == first {
				return nil
			}
			break
		}
		m, ok := matchSentinel(line.text, LangFortranFixed)
		if !ok {
			if i == first {
				return nil
			}
			break
		}
		if m.dialect != dialect {
			if i == first {
				break
			}
			return &Error{Kind: MixedSentinel, Offset: line.start}
		}
		col6 := line.text[5]
		isContinuation := col6 != ' ' && col6 != '0'
		if i > first && !isContinuation {
			// a fresh directive line, not a continuation of this one
			break
		}
		content := stripFortranComment(line.text[6:])
		trimmed := strings.TrimSpace(content)
		lead := strings.Index(content, trimmed)
		if trimmed != "" {
			b.space(line.start + 6)
			b.append(trimmed, line.start+6+lead)
		}
	}
	return nil
}
