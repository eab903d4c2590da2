package pragma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unparseText(t *testing.T, input string, mode UnparseMode) string {
	t.Helper()
	d := parseText(t, input)
	dirs, cls := testRegistries()
	return Unparse(d, mode, dirs, cls)
}

func TestUnparseCanonical(t *testing.T) {
	test := func(input, expected string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, unparseText(t, input, Canonical))
		}
	}

	t.Run("", test("#pragma omp parallel", "#pragma omp parallel"))
	t.Run("", test("#pragma   omp   parallel", "#pragma omp parallel"))
	t.Run("", test("#pragma omp parallel shared(x,y) private(z)",
		"#pragma omp parallel shared(x, y) private(z)"))
	t.Run("", test("#pragma omp for schedule(dynamic, 10)",
		"#pragma omp for schedule(dynamic, 10)"))
	t.Run("", test("#pragma omp parallel reduction(+: sum, total)",
		"#pragma omp parallel reduction(+: sum, total)"))
	t.Run("", test("#pragma omp critical(lock1) hint(speculative)",
		"#pragma omp critical(lock1) hint(speculative)"))
	t.Run("", test("#pragma omp target map(always, to: a[0:N])",
		"#pragma omp target map(always, to: a[0:N])"))
	t.Run("", test("#pragma omp parallel default(none) nowait",
		"#pragma omp parallel default(none) nowait"))
	// Fortran spellings normalize to the C canonical name only when
	// emitting for C; the directive keeps its own language
	t.Run("", test("!$omp parallel do private(i)", "!$omp parallel do private(i)"))
}

func TestUnparseRoundTrip(t *testing.T) {
	inputs := []string{
		"#pragma omp parallel",
		"#pragma omp parallel shared(x, y) private(z)",
		"#pragma omp for schedule(guided, n*2) nowait",
		"#pragma omp parallel reduction(task, max: best) if(n > 10)",
		"#pragma omp target map(to: a[0:N]) map(from: b[0:N])",
		"#pragma omp critical(lock1)",
	}
	dirs, cls := testRegistries()
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			d := parseText(t, input)
			emitted := Unparse(d, Canonical, dirs, cls)
			again := parseText(t, emitted)
			assert.Equal(t, d.Kind, again.Kind)
			assert.Equal(t, d.HasParameter, again.HasParameter)
			assert.Equal(t, d.Parameter, again.Parameter)
			require.Equal(t, d.ClauseCount(), again.ClauseCount())
			for i := range d.Clauses {
				assert.Equal(t, d.Clauses[i].Kind, again.Clauses[i].Kind)
				assert.Equal(t, d.Clauses[i].Form, again.Clauses[i].Form)
				assert.Equal(t, d.Clauses[i].Items, again.Clauses[i].Items)
				assert.Equal(t, d.Clauses[i].Raw, again.Clauses[i].Raw)
			}
		})
	}
}

func TestUnparseLanguageFlip(t *testing.T) {
	d := parseText(t, "#pragma omp parallel for private(i)")
	dirs, cls := testRegistries()

	d.Lang = LangFortranFree
	assert.Equal(t, "!$omp parallel do private(i)", Unparse(d, Canonical, dirs, cls))

	d.Lang = LangC
	assert.Equal(t, "#pragma omp parallel for private(i)", Unparse(d, Canonical, dirs, cls))
}

func TestUnparsePreservesScheduleCase(t *testing.T) {
	assert.Equal(t, "!$omp do schedule(DYNAMIC)",
		unparseText(t, "!$omp FOR SCHEDULE(DYNAMIC)", Canonical))
}
