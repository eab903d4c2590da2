package pragma

import "strings"

// UnparseMode selects between canonical spellings and the spellings found
// in the source.
type UnparseMode int

const (
	// Canonical uses each kind's canonical spelling for the directive's
	// base language.
	Canonical UnparseMode = iota + 1
	// PreserveAliases reuses the original source lexemes where recorded.
	PreserveAliases
)

// Sentinel returns the directive prefix emitted for a language/dialect
// pair. Fixed-form output reuses the free-form sentinel, which is valid in
// column 1.
func Sentinel(lang BaseLang, dialect Dialect) string {
	switch lang {
	case LangFortranFree, LangFortranFixed:
		return "!$" + dialect.String()
	default:
		return "#pragma " + dialect.String()
	}
}

// Unparse walks a directive back to a pragma string. Clause order is
// preserved; in PreserveAliases mode the source lexemes recorded at parse
// time are reused, so pcopy round-trips as pcopy.
func Unparse(d *Directive, mode UnparseMode, dirs *DirectiveRegistry, clauses *ClauseRegistry) string {
	var out strings.Builder
	out.WriteString(Sentinel(d.Lang, d.Dialect))
	out.WriteByte(' ')

	name := d.Name
	if entry := dirs.ByKind(d.Kind); entry != nil {
		name = entry.CanonicalFor(d.Lang)
	}
	if mode == PreserveAliases && d.Spelling != "" {
		name = d.Spelling
	}
	out.WriteString(name)

	if d.HasParameter {
		out.WriteByte('(')
		out.WriteString(d.Parameter)
		out.WriteByte(')')
	}

	for i := range d.Clauses {
		out.WriteByte(' ')
		writeClause(&out, &d.Clauses[i], mode, clauses)
	}
	return out.String()
}

func writeClause(out *strings.Builder, c *Clause, mode UnparseMode, clauses *ClauseRegistry) {
	name := c.Name
	if mode == Canonical {
		if entry := clauses.ByKind(c.Kind); entry != nil {
			name = entry.Name
		}
	}
	out.WriteString(name)

	switch c.Form {
	case BareForm:
		// name only

	case RawForm:
		out.WriteByte('(')
		out.WriteString(c.Raw)
		out.WriteByte(')')

	case ListForm:
		out.WriteByte('(')
		out.WriteString(strings.Join(c.Items, ", "))
		out.WriteByte(')')

	case ScheduleForm:
		out.WriteByte('(')
		out.WriteString(c.Schedule.KindName)
		if c.Schedule.Chunk != "" {
			out.WriteString(", ")
			out.WriteString(c.Schedule.Chunk)
		}
		out.WriteByte(')')

	case ReductionForm:
		out.WriteByte('(')
		if c.Reduction.Modifier != "" {
			out.WriteString(c.Reduction.Modifier)
			out.WriteString(", ")
		}
		out.WriteString(c.Reduction.OpName)
		out.WriteString(": ")
		out.WriteString(strings.Join(c.Reduction.Items, ", "))
		out.WriteByte(')')

	case DefaultForm:
		out.WriteByte('(')
		out.WriteString(c.Default.Name)
		out.WriteByte(')')

	case ModifiedListForm:
		out.WriteByte('(')
		if len(c.Modifiers) > 0 {
			out.WriteString(strings.Join(c.Modifiers, ", "))
			out.WriteString(": ")
		}
		out.WriteString(strings.Join(c.Items, ", "))
		out.WriteByte(')')
	}
}
