package pragma

import (
	"fmt"
	"strings"
)

// Dialect selects which directive/clause registries are in force.
type Dialect int

const (
	OpenMP Dialect = iota + 1
	OpenACC
)

func (d Dialect) String() string {
	switch d {
	case OpenMP:
		return "omp"
	case OpenACC:
		return "acc"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// BaseLang is the host source language; it determines the sentinel and
// continuation rules.
type BaseLang int

const (
	// LangDetect asks the lexer to infer the language from the sentinel.
	LangDetect BaseLang = iota
	LangC
	LangFortranFree
	LangFortranFixed
)

func (l BaseLang) String() string {
	switch l {
	case LangC:
		return "c"
	case LangFortranFree:
		return "fortran-free"
	case LangFortranFixed:
		return "fortran-fixed"
	default:
		return fmt.Sprintf("BaseLang(%d)", int(l))
	}
}

// FileRef is a dedicated type for file references, allowing future refactoring
// of how files are identified without changing the API.
type FileRef string

// Pos represents a position in a source file with line and column numbers.
// Line and column are 1-indexed for human-readable error messages.
type Pos struct {
	File      FileRef
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Span is a byte range in the original (pre-normalization) input.
type Span struct {
	Offset, Length int
}

// DirectiveKind identifies a directive. The integer codes are stable and
// shared with compatibility layers; aliases resolve to the same code as
// their canonical form.
//
// Common codes live in 1-999; each dialect extends from its own range.
type DirectiveKind int

// ClauseKind identifies a clause. Same code-stability contract as
// DirectiveKind.
type ClauseKind int

// Kind range constants for dialect-specific extensions.
const (
	// OpenMPKindStart is the start of OpenMP kind codes (1000-1999)
	OpenMPKindStart = 1000
	// OpenACCKindStart is the start of OpenACC kind codes (2000-2999)
	OpenACCKindStart = 2000
)

// ClauseForm discriminates how a clause's arguments were parsed.
type ClauseForm int

const (
	// BareForm is a clause with no parentheses (nowait, seq).
	BareForm ClauseForm = iota + 1
	// RawForm preserves the parenthesized argument text verbatim.
	RawForm
	// ListForm is a comma-separated item list (private(x, y)).
	ListForm
	// ScheduleForm is schedule(kind[, chunk]).
	ScheduleForm
	// ReductionForm is reduction([modifier,] op : items).
	ReductionForm
	// DefaultForm is default(kind).
	DefaultForm
	// ModifiedListForm is an item list with leading modifier tokens
	// separated by ':' (map(to: a), copyin(readonly: x)).
	ModifiedListForm
)

func (f ClauseForm) String() string {
	switch f {
	case BareForm:
		return "bare"
	case RawForm:
		return "raw"
	case ListForm:
		return "list"
	case ScheduleForm:
		return "schedule"
	case ReductionForm:
		return "reduction"
	case DefaultForm:
		return "default"
	case ModifiedListForm:
		return "modified-list"
	default:
		return fmt.Sprintf("ClauseForm(%d)", int(f))
	}
}

// ScheduleKind enumerates the schedule(...) kinds.
type ScheduleKind int

const (
	ScheduleStatic ScheduleKind = iota + 1
	ScheduleDynamic
	ScheduleGuided
	ScheduleAuto
	ScheduleRuntime
)

var scheduleKinds = map[string]ScheduleKind{
	"static":  ScheduleStatic,
	"dynamic": ScheduleDynamic,
	"guided":  ScheduleGuided,
	"auto":    ScheduleAuto,
	"runtime": ScheduleRuntime,
}

// ScheduleArg holds the structured argument of a schedule clause.
// KindName keeps the spelling as written so unparsing can reproduce
// the original case.
type ScheduleArg struct {
	Kind     ScheduleKind
	KindName string
	Chunk    string
}

// ReductionOp enumerates the fixed reduction operators; anything else is
// ReductionCustom with the identifier kept in ReductionArg.OpName.
type ReductionOp int

const (
	ReductionAdd ReductionOp = iota + 1
	ReductionSub
	ReductionMul
	ReductionBitAnd
	ReductionBitOr
	ReductionBitXor
	ReductionLogAnd
	ReductionLogOr
	ReductionMin
	ReductionMax
	ReductionCustom
)

var reductionOps = map[string]ReductionOp{
	"+":      ReductionAdd,
	"-":      ReductionSub,
	"*":      ReductionMul,
	"&":      ReductionBitAnd,
	"|":      ReductionBitOr,
	"^":      ReductionBitXor,
	"&&":     ReductionLogAnd,
	"||":     ReductionLogOr,
	"min":    ReductionMin,
	"max":    ReductionMax,
	"iand":   ReductionBitAnd,
	"ior":    ReductionBitOr,
	"ieor":   ReductionBitXor,
	".and.":  ReductionLogAnd,
	".or.":   ReductionLogOr,
	".eqv.":  ReductionCustom,
	".neqv.": ReductionCustom,
}

// LookupReductionOp maps an operator spelling to its enumerated value;
// unknown spellings are ReductionCustom.
func LookupReductionOp(name string) ReductionOp {
	if op, ok := reductionOps[strings.ToLower(name)]; ok {
		return op
	}
	return ReductionCustom
}

// ReductionArg holds the structured argument of a reduction clause.
// OpName is the operator exactly as written (also the identifier for
// user-declared reductions); Modifier is the optional leading
// task/default/inscan token.
type ReductionArg struct {
	Op       ReductionOp
	OpName   string
	Modifier string
	Items    []string
}

// DefaultKind enumerates default(...) kinds across both dialects.
type DefaultKind int

const (
	DefaultShared DefaultKind = iota + 1
	DefaultNone
	DefaultPrivate
	DefaultFirstprivate
	DefaultPresent
)

var defaultKinds = map[string]DefaultKind{
	"shared":       DefaultShared,
	"none":         DefaultNone,
	"private":      DefaultPrivate,
	"firstprivate": DefaultFirstprivate,
	"present":      DefaultPresent,
}

// DefaultArg holds the structured argument of a default clause, keeping
// the keyword spelling as written.
type DefaultArg struct {
	Kind DefaultKind
	Name string
}

// Clause is one parsed clause. The Form field discriminates which of the
// argument fields carry the payload; the others are zero. Name is the
// source lexeme, so aliases like pcopy survive for the unparser.
type Clause struct {
	Kind      ClauseKind
	Name      string
	Form      ClauseForm
	Raw       string       `yaml:",omitempty"`
	Items     []string     `yaml:",omitempty"`
	Modifiers []string     `yaml:",omitempty"`
	Schedule  ScheduleArg  `yaml:",omitempty"`
	Reduction ReductionArg `yaml:",omitempty"`
	Default   DefaultArg   `yaml:",omitempty"`
}

// ItemCount returns the number of list items for list-shaped forms.
func (c *Clause) ItemCount() int {
	switch c.Form {
	case ReductionForm:
		return len(c.Reduction.Items)
	default:
		return len(c.Items)
	}
}

// ItemAt returns the i-th list item, or "" when out of range.
func (c *Clause) ItemAt(i int) string {
	var items []string
	if c.Form == ReductionForm {
		items = c.Reduction.Items
	} else {
		items = c.Items
	}
	if i < 0 || i >= len(items) {
		return ""
	}
	return items[i]
}

// Directive is the parse result: one directive plus its clauses in source
// order. It owns all of its text; the input buffer may be freed after
// parsing.
type Directive struct {
	Kind    DirectiveKind
	Dialect Dialect
	Lang    BaseLang

	// Name is the canonical directive name; Spelling is the name exactly
	// as written in the source (which may be an alias like "parallel do").
	Name     string
	Spelling string

	// NameSpan locates the matched name in the original input; Head is
	// its 1-based line/column there.
	NameSpan Span
	Head     Pos

	// Parameter is the optional (text) immediately after the name, e.g.
	// critical(name). HasParameter distinguishes absent from empty.
	Parameter    string
	HasParameter bool

	Clauses []Clause
}

// HeadPos returns the line/column of the directive's head token in the
// original input.
func (d *Directive) HeadPos() Pos {
	return d.Head
}

// ClauseCount returns the number of clauses, in source order.
func (d *Directive) ClauseCount() int {
	return len(d.Clauses)
}

// ClauseAt returns the i-th clause, or nil when out of range.
func (d *Directive) ClauseAt(i int) *Clause {
	if i < 0 || i >= len(d.Clauses) {
		return nil
	}
	return &d.Clauses[i]
}

// ClausesOfKind returns all clauses with the given kind, preserving
// source order. Duplicates are allowed and meaningful.
func (d *Directive) ClausesOfKind(kind ClauseKind) []*Clause {
	var result []*Clause
	for i := range d.Clauses {
		if d.Clauses[i].Kind == kind {
			result = append(result, &d.Clauses[i])
		}
	}
	return result
}
