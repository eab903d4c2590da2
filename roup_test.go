package roup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouankou/roup/pragma"
	"github.com/ouankou/roup/pragma/openacc"
	"github.com/ouankou/roup/pragma/openmp"
)

func TestParseSimple(t *testing.T) {
	d, err := Parse("#pragma omp parallel", OpenMP, LangDetect)
	require.NoError(t, err)
	assert.Equal(t, openmp.DirParallel, d.Kind)
	assert.False(t, d.HasParameter)
	assert.Equal(t, 0, d.ClauseCount())
	assert.Equal(t, "#pragma omp parallel", Unparse(d, Canonical))
}

func TestParseMultipleClauses(t *testing.T) {
	d, err := Parse("#pragma omp parallel shared(x, y) private(z)", OpenMP, LangDetect)
	require.NoError(t, err)
	require.Equal(t, 2, d.ClauseCount())
	assert.Equal(t, openmp.ClauseShared, d.ClauseAt(0).Kind)
	assert.Equal(t, []string{"x", "y"}, d.ClauseAt(0).Items)
	assert.Equal(t, openmp.ClausePrivate, d.ClauseAt(1).Kind)
	assert.Equal(t, []string{"z"}, d.ClauseAt(1).Items)
}

func TestParseScheduleChunk(t *testing.T) {
	d, err := Parse("#pragma omp for schedule(dynamic, 10)", OpenMP, LangDetect)
	require.NoError(t, err)
	c := d.ClauseAt(0)
	assert.Equal(t, pragma.ScheduleDynamic, c.Schedule.Kind)
	assert.Equal(t, "10", c.Schedule.Chunk)
}

func TestParseReductionOperator(t *testing.T) {
	d, err := Parse("#pragma omp parallel for reduction(+: sum, total)", OpenMP, LangDetect)
	require.NoError(t, err)
	assert.Equal(t, openmp.DirParallelFor, d.Kind)
	c := d.ClauseAt(0)
	assert.Equal(t, pragma.ReductionAdd, c.Reduction.Op)
	assert.Equal(t, []string{"sum", "total"}, c.Reduction.Items)
}

func TestOpenACCAliasRoundTrip(t *testing.T) {
	d, err := Parse("acc data pcopy(a) present_or_copyin(b)", OpenACC, LangDetect)
	require.NoError(t, err)
	assert.Equal(t, openacc.ClauseCopy, d.ClauseAt(0).Kind)
	assert.Equal(t, openacc.ClauseCopyin, d.ClauseAt(1).Kind)
	assert.Equal(t, "#pragma acc data pcopy(a) present_or_copyin(b)",
		Unparse(d, PreserveAliases))
}

func TestMultiLineEqualsSingleLine(t *testing.T) {
	multi, err := Parse("#pragma omp target \\\n    map(to: a[0:N]) \\\n    map(from: b[0:N])", OpenMP, LangDetect)
	require.NoError(t, err)
	single, err := Parse("#pragma omp target map(to: a[0:N]) map(from: b[0:N])", OpenMP, LangDetect)
	require.NoError(t, err)

	assert.Equal(t, single.Kind, multi.Kind)
	require.Equal(t, 2, multi.ClauseCount())
	for i := 0; i < 2; i++ {
		assert.Equal(t, single.ClauseAt(i).Kind, multi.ClauseAt(i).Kind)
		assert.Equal(t, single.ClauseAt(i).Modifiers, multi.ClauseAt(i).Modifiers)
		assert.Equal(t, single.ClauseAt(i).Items, multi.ClauseAt(i).Items)
	}
}

func TestFortranContinuationFolding(t *testing.T) {
	input := "!$omp target teams distribute &\n!$omp& parallel do &\n!$omp& private(i, j)"
	d, err := Parse(input, OpenMP, LangDetect)
	require.NoError(t, err)
	assert.Equal(t, openmp.DirTargetTeamsDistributeParallelFor, d.Kind)
	require.Equal(t, 1, d.ClauseCount())
	assert.Equal(t, []string{"i", "j"}, d.ClauseAt(0).Items)
}

func TestMismatchedDialect(t *testing.T) {
	_, err := Parse("#pragma omp target teams distribute", OpenACC, LangDetect)
	require.Error(t, err)
	perr, ok := err.(*pragma.Error)
	require.True(t, ok)
	assert.Equal(t, pragma.UnknownDirective, perr.Kind)
}

func TestSentinelOnly(t *testing.T) {
	_, err := Parse("#pragma omp", OpenMP, LangDetect)
	require.Error(t, err)
	perr := err.(*pragma.Error)
	assert.Equal(t, pragma.EmptyInput, perr.Kind)
}

func TestParseDetect(t *testing.T) {
	d, err := ParseDetect("#pragma acc kernels loop")
	require.NoError(t, err)
	assert.Equal(t, openacc.DirKernelsLoop, d.Kind)
	assert.Equal(t, pragma.OpenACC, d.Dialect)

	d, err = ParseDetect("!$omp barrier")
	require.NoError(t, err)
	assert.Equal(t, openmp.DirBarrier, d.Kind)
}

func TestParseBytes(t *testing.T) {
	d, err := ParseBytes([]byte("#pragma omp single nowait"), OpenMP, LangDetect)
	require.NoError(t, err)
	assert.Equal(t, openmp.DirSingle, d.Kind)

	_, err = ParseBytes([]byte{0x23, 0xff, 0xfe}, OpenMP, LangDetect)
	require.Error(t, err)
	assert.Equal(t, pragma.InvalidUTF8, err.(*pragma.Error).Kind)
}

func TestScanSource(t *testing.T) {
	src := "int main() {\n#pragma omp parallel for \\\n    private(i)\n  loop();\n#pragma acc update host(x)\n}\n"
	directives, err := ScanSource(src, pragma.LangDetect, "main.c")
	require.NoError(t, err)
	require.Len(t, directives, 2)

	assert.Equal(t, openmp.DirParallelFor, directives[0].Kind)
	assert.Equal(t, 2, directives[0].HeadPos().Line)
	assert.Equal(t, pragma.FileRef("main.c"), directives[0].HeadPos().File)

	assert.Equal(t, openacc.DirUpdate, directives[1].Kind)
	assert.Equal(t, 5, directives[1].HeadPos().Line)
}

func TestScanSourceErrors(t *testing.T) {
	src := "#pragma omp parallel\n#pragma omp whirlwind\n"
	directives, err := ScanSource(src, pragma.LangDetect, "bad.c")
	require.Len(t, directives, 1)
	require.Error(t, err)

	scanErrs, ok := err.(ScanErrors)
	require.True(t, ok)
	require.Len(t, scanErrs.Errors, 1)
	assert.Equal(t, pragma.UnknownDirective, scanErrs.Errors[0].Kind)
	assert.Equal(t, 2, scanErrs.Errors[0].Pos.Line)
	assert.Contains(t, err.Error(), "whirlwind")
}
