package pragma

import (
	"strings"
	"unicode"
)

// Parse decomposes a logical line into a directive plus its clauses, using
// the registries of the active dialect.
//
// CONVENTION (shared by the custom clause hooks): a parse function is
// entered with the scanner positioned on what it is documented to consume
// and returns with the scanner positioned after it, trailing whitespace
// not yet skipped.
func Parse(line *LogicalLine, dialect Dialect, dirs *DirectiveRegistry, clauses *ClauseRegistry) (*Directive, *Error) {
	s := NewScanner(line)
	s.SkipWhitespace()
	if s.AtEnd() {
		return nil, &Error{
			Kind:   EmptyInput,
			Offset: s.OrigOffset(),
			Pos:    s.Pos(),
		}
	}

	d := &Directive{
		Dialect: dialect,
		Lang:    line.Lang,
	}

	if err := parseDirectiveName(s, dirs, d); err != nil {
		return nil, err
	}

	entry := dirs.ByKind(d.Kind)
	if entry.Parameter != NoParameter {
		probe := s.Clone()
		probe.SkipWhitespace()
		if probe.Peek() == '(' {
			*s = *probe
			text, err := s.ScanBalanced()
			if err != nil {
				return nil, err
			}
			d.Parameter = strings.TrimSpace(text)
			d.HasParameter = true
		}
	}

	for {
		s.SkipWhitespace()
		// comma is accepted as a clause separator in all dialects
		if s.Consume(',') {
			s.SkipWhitespace()
		}
		if s.AtEnd() {
			return d, nil
		}
		clause, err := parseClause(s, clauses)
		if err != nil {
			return nil, err
		}
		d.Clauses = append(d.Clauses, *clause)
	}
}

// parseDirectiveName consumes the longest-matching directive spelling.
// Candidate identifier tokens are collected by look-ahead, then matched
// against the registry with longer token counts winning.
func parseDirectiveName(s *Scanner, dirs *DirectiveRegistry, d *Directive) *Error {
	probe := s.Clone()
	var tokens []string
	var starts, ends []int
	for len(tokens) < dirs.MaxTokens() {
		probe.SkipWhitespace()
		start := probe.Offset()
		word := probe.ScanWord()
		if word == "" {
			break
		}
		tokens = append(tokens, word)
		starts = append(starts, start)
		ends = append(ends, probe.Offset())
	}
	if len(tokens) == 0 {
		return &Error{
			Kind:   UnknownDirective,
			Offset: s.OrigOffset(),
			Pos:    s.Pos(),
			Token:  s.RestToken(),
		}
	}

	entry, matched := dirs.Lookup(tokens)
	if entry == nil {
		return &Error{
			Kind:   UnknownDirective,
			Offset: s.line.OrigOffset(starts[0]),
			Pos:    s.line.PosAt(starts[0]),
			Token:  tokens[0],
		}
	}

	first, last := starts[0], ends[matched-1]
	d.Kind = entry.Kind
	d.Name = entry.Name
	d.Spelling = s.line.Text[first:last]
	origStart := s.line.OrigOffset(first)
	d.NameSpan = Span{
		Offset: origStart,
		Length: s.line.OrigOffset(last-1) + 1 - origStart,
	}
	d.Head = s.line.PosAt(first)
	s.cur = last
	return nil
}

// parseClause consumes one clause: longest-match on the name, then the
// arguments according to the registered shape.
func parseClause(s *Scanner, clauses *ClauseRegistry) (*Clause, *Error) {
	start := s.Offset()
	name := s.ScanWord()
	if name == "" {
		return nil, &Error{
			Kind:   UnknownClause,
			Offset: s.OrigOffset(),
			Pos:    s.Pos(),
			Token:  s.RestToken(),
		}
	}
	entry := clauses.Lookup(name)
	if entry == nil {
		return nil, &Error{
			Kind:   UnknownClause,
			Offset: s.line.OrigOffset(start),
			Pos:    s.line.PosAt(start),
			Token:  name,
		}
	}

	c := &Clause{Kind: entry.Kind, Name: name}
	malformed := func(reason string) *Error {
		return &Error{
			Kind:   MalformedClause,
			Clause: entry.Kind,
			Offset: s.line.OrigOffset(start),
			Pos:    s.line.PosAt(start),
			Reason: reason,
		}
	}

	switch entry.Shape {
	case NoArgument:
		// a following '(' belongs to the next clause or is an error there
		c.Form = BareForm
		return c, nil

	case CustomArgument:
		if err := entry.Parse(s, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	s.SkipWhitespace()
	if s.Peek() != '(' {
		return nil, malformed("expected '('")
	}
	interior, err := s.ScanBalanced()
	if err != nil {
		err.Clause = entry.Kind
		return nil, err
	}

	switch entry.Shape {
	case RawArgument:
		c.Form = RawForm
		c.Raw = strings.TrimSpace(interior)

	case ListArgument:
		items, ok := itemList(interior)
		if !ok {
			return nil, malformed("empty item list")
		}
		c.Form = ListForm
		c.Items = items

	case ScheduleArgument:
		head, tail, hasChunk := CutTopLevel(interior, ',')
		kindName := strings.TrimSpace(head)
		kind, ok := scheduleKinds[strings.ToLower(kindName)]
		if !ok {
			return nil, malformed("unknown schedule kind")
		}
		chunk := strings.TrimSpace(tail)
		if hasChunk && chunk == "" {
			return nil, malformed("missing chunk expression")
		}
		c.Form = ScheduleForm
		c.Schedule = ScheduleArg{Kind: kind, KindName: kindName, Chunk: chunk}

	case ReductionArgument:
		head, tail, hasColon := CutTopLevel(interior, ':')
		if !hasColon {
			return nil, malformed("missing ':'")
		}
		var modifier string
		opPart := head
		if m, rest, hasComma := CutTopLevel(head, ','); hasComma {
			modifier = strings.TrimSpace(m)
			if !isReductionModifier(modifier) {
				return nil, malformed("unknown reduction modifier")
			}
			opPart = rest
		}
		opName := strings.TrimSpace(opPart)
		if opName == "" {
			return nil, malformed("missing operator")
		}
		items, ok := itemList(tail)
		if !ok {
			return nil, malformed("empty item list")
		}
		c.Form = ReductionForm
		c.Reduction = ReductionArg{
			Op:       LookupReductionOp(opName),
			OpName:   opName,
			Modifier: modifier,
			Items:    items,
		}

	case DefaultArgument:
		kindName := strings.TrimSpace(interior)
		kind, known := defaultKinds[strings.ToLower(kindName)]
		if !known || !containsFold(entry.Defaults, kindName) {
			return nil, malformed("unknown default kind")
		}
		c.Form = DefaultForm
		c.Default = DefaultArg{Kind: kind, Name: kindName}

	case ModifiedListArgument:
		head, tail, hasColon := CutTopLevel(interior, ':')
		var modifiers []string
		itemText := interior
		if hasColon {
			modifiers = strings.FieldsFunc(head, func(r rune) bool {
				return r == ',' || unicode.IsSpace(r)
			})
			for _, m := range modifiers {
				if len(entry.Modifiers) > 0 && !entry.allowsModifier(m) {
					return nil, malformed("unknown modifier " + m)
				}
			}
			itemText = tail
		}
		items, ok := itemList(itemText)
		if !ok {
			return nil, malformed("empty item list")
		}
		c.Form = ModifiedListForm
		c.Modifiers = modifiers
		c.Items = items
	}

	return c, nil
}

// itemList splits at top-level commas; reports false when the list is
// empty or contains an empty item.
func itemList(text string) ([]string, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	items := SplitTopLevel(text, ',')
	for _, item := range items {
		if item == "" {
			return nil, false
		}
	}
	return items, true
}

func isReductionModifier(name string) bool {
	switch strings.ToLower(name) {
	case "task", "default", "inscan":
		return true
	}
	return false
}

func containsFold(set []string, name string) bool {
	for _, s := range set {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
