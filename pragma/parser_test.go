package pragma

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A small dialect table standing in for the real ones; the openmp and
// openacc packages test the production tables.
const (
	tdParallel DirectiveKind = iota + 1
	tdFor
	tdParallelFor
	tdCritical
	tdTarget
)

const (
	tcPrivate ClauseKind = iota + 1
	tcShared
	tcNowait
	tcIf
	tcSchedule
	tcReduction
	tcDefault
	tcMap
	tcHint
)

func testRegistries() (*DirectiveRegistry, *ClauseRegistry) {
	dirs := NewDirectiveRegistry()
	dirs.Register(DirectiveEntry{Kind: tdParallel, Name: "parallel"})
	dirs.Register(DirectiveEntry{Kind: tdFor, Name: "for", FortranName: "do"})
	dirs.Register(DirectiveEntry{Kind: tdParallelFor, Name: "parallel for", FortranName: "parallel do"})
	dirs.Register(DirectiveEntry{Kind: tdCritical, Name: "critical", Parameter: OptionalParameter})
	dirs.Register(DirectiveEntry{Kind: tdTarget, Name: "target"})

	cls := NewClauseRegistry()
	cls.Register(ClauseEntry{Kind: tcPrivate, Name: "private", Shape: ListArgument})
	cls.Register(ClauseEntry{Kind: tcShared, Name: "shared", Shape: ListArgument})
	cls.Register(ClauseEntry{Kind: tcNowait, Name: "nowait", Shape: NoArgument})
	cls.Register(ClauseEntry{Kind: tcIf, Name: "if", Shape: RawArgument})
	cls.Register(ClauseEntry{Kind: tcSchedule, Name: "schedule", Shape: ScheduleArgument})
	cls.Register(ClauseEntry{Kind: tcReduction, Name: "reduction", Shape: ReductionArgument})
	cls.Register(ClauseEntry{Kind: tcDefault, Name: "default", Shape: DefaultArgument,
		Defaults: []string{"shared", "none"}})
	cls.Register(ClauseEntry{Kind: tcMap, Name: "map", Shape: ModifiedListArgument,
		Modifiers: []string{"to", "from", "tofrom", "always"}})
	cls.Register(ClauseEntry{Kind: tcHint, Name: "hint", Shape: CustomArgument,
		Parse: func(s *Scanner, c *Clause) *Error {
			s.SkipWhitespace()
			text, err := s.ScanBalanced()
			if err != nil {
				return err
			}
			c.Form = RawForm
			c.Raw = strings.ToLower(strings.TrimSpace(text))
			return nil
		}})
	return dirs, cls
}

func parseText(t *testing.T, input string) *Directive {
	t.Helper()
	line, err := Normalize(input, LangDetect, "")
	require.Nil(t, err)
	dirs, cls := testRegistries()
	d, err := Parse(line, OpenMP, dirs, cls)
	require.Nil(t, err)
	return d
}

func parseErr(t *testing.T, input string) *Error {
	t.Helper()
	line, err := Normalize(input, LangDetect, "")
	require.Nil(t, err)
	dirs, cls := testRegistries()
	_, err = Parse(line, OpenMP, dirs, cls)
	require.NotNil(t, err)
	return err
}

func TestParseSimpleDirective(t *testing.T) {
	d := parseText(t, "#pragma omp parallel")
	assert.Equal(t, tdParallel, d.Kind)
	assert.Equal(t, "parallel", d.Spelling)
	assert.False(t, d.HasParameter)
	assert.Empty(t, d.Clauses)
	assert.Equal(t, Pos{Line: 1, Col: 13}, d.HeadPos())
	assert.Equal(t, Span{Offset: 12, Length: 8}, d.NameSpan)
}

func TestParseClauseOrder(t *testing.T) {
	d := parseText(t, "#pragma omp parallel shared(x, y) private(z) shared(w)")
	require.Equal(t, 3, d.ClauseCount())
	assert.Equal(t, tcShared, d.Clauses[0].Kind)
	assert.Equal(t, []string{"x", "y"}, d.Clauses[0].Items)
	assert.Equal(t, tcPrivate, d.Clauses[1].Kind)
	assert.Equal(t, []string{"z"}, d.Clauses[1].Items)
	// duplicates are allowed and keep their position
	assert.Equal(t, tcShared, d.Clauses[2].Kind)
	assert.Len(t, d.ClausesOfKind(tcShared), 2)
}

func TestParseFusedDirective(t *testing.T) {
	d := parseText(t, "#pragma omp parallel for private(i)")
	assert.Equal(t, tdParallelFor, d.Kind)
	assert.Equal(t, "parallel for", d.Spelling)
	require.Equal(t, 1, d.ClauseCount())
}

func TestParseFortranSpelling(t *testing.T) {
	d := parseText(t, "!$omp parallel do private(i)")
	assert.Equal(t, tdParallelFor, d.Kind)
	assert.Equal(t, "parallel do", d.Spelling)
	assert.Equal(t, LangFortranFree, d.Lang)
}

func TestParseDirectiveParameter(t *testing.T) {
	d := parseText(t, "#pragma omp critical(lock1)")
	assert.Equal(t, tdCritical, d.Kind)
	assert.True(t, d.HasParameter)
	assert.Equal(t, "lock1", d.Parameter)

	d = parseText(t, "#pragma omp critical")
	assert.False(t, d.HasParameter)
}

func TestParseCommaSeparators(t *testing.T) {
	d := parseText(t, "#pragma omp parallel shared(x), private(y), nowait")
	require.Equal(t, 3, d.ClauseCount())
	assert.Equal(t, BareForm, d.Clauses[2].Form)
}

func TestParseRawClause(t *testing.T) {
	d := parseText(t, "#pragma omp parallel if(n > 1000 && f(x))")
	require.Equal(t, 1, d.ClauseCount())
	c := d.Clauses[0]
	assert.Equal(t, RawForm, c.Form)
	assert.Equal(t, "n > 1000 && f(x)", c.Raw)
}

func TestParseSchedule(t *testing.T) {
	d := parseText(t, "#pragma omp for schedule(dynamic, 10)")
	require.Equal(t, 1, d.ClauseCount())
	c := d.Clauses[0]
	assert.Equal(t, ScheduleForm, c.Form)
	assert.Equal(t, ScheduleDynamic, c.Schedule.Kind)
	assert.Equal(t, "dynamic", c.Schedule.KindName)
	assert.Equal(t, "10", c.Schedule.Chunk)

	d = parseText(t, "#pragma omp for schedule(static)")
	assert.Equal(t, ScheduleStatic, d.Clauses[0].Schedule.Kind)
	assert.Equal(t, "", d.Clauses[0].Schedule.Chunk)
}

func TestParseReduction(t *testing.T) {
	d := parseText(t, "#pragma omp parallel reduction(+: sum, total)")
	require.Equal(t, 1, d.ClauseCount())
	c := d.Clauses[0]
	assert.Equal(t, ReductionForm, c.Form)
	assert.Equal(t, ReductionAdd, c.Reduction.Op)
	assert.Equal(t, "+", c.Reduction.OpName)
	assert.Equal(t, []string{"sum", "total"}, c.Reduction.Items)

	d = parseText(t, "#pragma omp parallel reduction(task, max: best)")
	c = d.Clauses[0]
	assert.Equal(t, ReductionMax, c.Reduction.Op)
	assert.Equal(t, "task", c.Reduction.Modifier)

	d = parseText(t, "#pragma omp parallel reduction(mymin: v)")
	c = d.Clauses[0]
	assert.Equal(t, ReductionCustom, c.Reduction.Op)
	assert.Equal(t, "mymin", c.Reduction.OpName)
}

func TestParseDefault(t *testing.T) {
	d := parseText(t, "#pragma omp parallel default(none)")
	c := d.Clauses[0]
	assert.Equal(t, DefaultForm, c.Form)
	assert.Equal(t, DefaultNone, c.Default.Kind)
}

func TestParseModifiedList(t *testing.T) {
	d := parseText(t, "#pragma omp target map(always, to: a[0:N], b)")
	c := d.Clauses[0]
	assert.Equal(t, ModifiedListForm, c.Form)
	assert.Equal(t, []string{"always", "to"}, c.Modifiers)
	assert.Equal(t, []string{"a[0:N]", "b"}, c.Items)

	// no ':' means no modifiers, everything is items
	d = parseText(t, "#pragma omp target map(a, b)")
	c = d.Clauses[0]
	assert.Empty(t, c.Modifiers)
	assert.Equal(t, []string{"a", "b"}, c.Items)
}

func TestParseCustomHook(t *testing.T) {
	d := parseText(t, "#pragma omp critical hint(ABC)")
	c := d.Clauses[0]
	assert.Equal(t, RawForm, c.Form)
	assert.Equal(t, "abc", c.Raw)
}

func TestParseErrors(t *testing.T) {
	test := func(input string, kind ErrorKind) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, kind, parseErr(t, input).Kind)
		}
	}

	t.Run("", test("#pragma omp", EmptyInput))
	t.Run("", test("#pragma omp serial", UnknownDirective))
	t.Run("", test("#pragma omp parallel foo(x)", UnknownClause))
	t.Run("", test("#pragma omp parallel private()", MalformedClause))
	t.Run("", test("#pragma omp parallel private(a,, b)", MalformedClause))
	t.Run("", test("#pragma omp parallel private", MalformedClause))
	t.Run("", test("#pragma omp for schedule(whenever)", MalformedClause))
	t.Run("", test("#pragma omp for schedule(static,)", MalformedClause))
	t.Run("", test("#pragma omp parallel reduction(+ sum)", MalformedClause))
	t.Run("", test("#pragma omp parallel default(pirate)", MalformedClause))
	t.Run("", test("#pragma omp parallel default(present)", MalformedClause))
	t.Run("", test("#pragma omp parallel map(bogus: x)", MalformedClause))
	t.Run("", test("#pragma omp parallel if(f(x)", UnbalancedBrackets))
	t.Run("", test("#pragma omp parallel nowait(x)", UnknownClause))

	err := parseErr(t, "#pragma omp parallel foo(x)")
	assert.Equal(t, "foo", err.Token)
	err = parseErr(t, "#pragma omp serial")
	assert.Equal(t, "serial", err.Token)
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	a := parseText(t, "#pragma omp parallel shared(x,y)   private( z )")
	b := parseText(t, "#pragma omp parallel shared( x , y ) private(z)")
	require.Equal(t, a.ClauseCount(), b.ClauseCount())
	for i := range a.Clauses {
		assert.Equal(t, a.Clauses[i].Kind, b.Clauses[i].Kind)
		assert.Equal(t, a.Clauses[i].Items, b.Clauses[i].Items)
	}
}

func TestContinuationEqualsSingleLine(t *testing.T) {
	multi := parseText(t, "#pragma omp target \\\n    map(to: a[0:N]) \\\n    map(from, b)")
	single := parseText(t, "#pragma omp target map(to: a[0:N]) map(from, b)")
	assert.Equal(t, single.Kind, multi.Kind)
	require.Equal(t, single.ClauseCount(), multi.ClauseCount())
	for i := range single.Clauses {
		assert.Equal(t, single.Clauses[i].Modifiers, multi.Clauses[i].Modifiers)
		assert.Equal(t, single.Clauses[i].Items, multi.Clauses[i].Items)
	}
}
