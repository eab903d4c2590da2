package pragma

import "strings"

// Extracted is one directive found in a source file: the raw text
// including its continuation lines, and the 1-based line it starts on.
type Extracted struct {
	Raw  string
	Line int
}

// ExtractDirectives scans full source text and returns every directive in
// it, each with its continuation lines attached so the result can be fed
// straight to Normalize. lang may be LangDetect.
func ExtractDirectives(src string, lang BaseLang) []Extracted {
	lines := splitPhysLines(src)
	var out []Extracted
	for i := 0; i < len(lines); i++ {
		text := lines[i].text
		indent := len(text) - len(strings.TrimLeft(text, " \t"))
		if lang == LangFortranFixed {
			indent = 0
		}
		m, ok := matchSentinel(text[indent:], lang)
		if !ok {
			continue
		}
		if m.lang == LangC && !strings.HasPrefix(text[indent:], "#") {
			// the bare omp/acc prefix is only for pre-stripped pragma
			// text; inside a source file it matches ordinary code
			continue
		}
		if m.lang == LangFortranFixed {
			// a column-6 non-blank is a continuation of an earlier line,
			// never the start of a directive
			if len(text) > 5 && text[5] != ' ' && text[5] != '0' {
				continue
			}
		}
		start := i
		for i+1 < len(lines) && continuesNext(lines, i, m) {
			i++
		}
		raw := make([]string, 0, i-start+1)
		for _, l := range lines[start : i+1] {
			raw = append(raw, l.text)
		}
		out = append(out, Extracted{Raw: strings.Join(raw, "\n"), Line: start + 1})
	}
	return out
}

// continuesNext reports whether line i+1 belongs to the directive whose
// latest physical line is i.
func continuesNext(lines []physLine, i int, m sentinelMatch) bool {
	switch m.lang {
	case LangC:
		t := strings.TrimRight(stripCComments(lines[i].text), " \t")
		return strings.HasSuffix(t, "\\")
	case LangFortranFree:
		// drop the sentinel first: its '!' would otherwise read as a comment
		text := strings.TrimLeft(lines[i].text, " \t")
		if sm, ok := matchSentinel(text, LangFortranFree); ok {
			text = text[sm.length:]
		}
		t := strings.TrimRight(stripFortranComment(text), " \t")
		return strings.HasSuffix(t, "&")
	case LangFortranFixed:
		next := lines[i+1].text
		if _, ok := matchSentinel(next, LangFortranFixed); !ok {
			return false
		}
		return len(next) > 5 && next[5] != ' ' && next[5] != '0'
	}
	return false
}
