// Package openmp instantiates the directive and clause registries for the
// OpenMP dialect. The tables are plain data; extending the dialect means
// adding entries, not touching the parser.
package openmp

import (
	"strings"

	"github.com/ouankou/roup/pragma"
)

// Directives and Clauses are the OpenMP registries. They are built once
// and effectively immutable afterwards, so they may be shared across
// goroutines by reference.
var (
	Directives = newDirectives()
	Clauses    = newClauses()
)

func newDirectives() *pragma.DirectiveRegistry {
	r := pragma.NewDirectiveRegistry()
	reg := func(e pragma.DirectiveEntry) { r.Register(e) }

	reg(pragma.DirectiveEntry{Kind: DirParallel, Name: "parallel"})
	reg(pragma.DirectiveEntry{Kind: DirFor, Name: "for", FortranName: "do"})
	reg(pragma.DirectiveEntry{Kind: DirSections, Name: "sections"})
	reg(pragma.DirectiveEntry{Kind: DirSection, Name: "section"})
	reg(pragma.DirectiveEntry{Kind: DirSingle, Name: "single"})
	reg(pragma.DirectiveEntry{Kind: DirMaster, Name: "master"})
	reg(pragma.DirectiveEntry{Kind: DirMasked, Name: "masked"})
	reg(pragma.DirectiveEntry{Kind: DirCritical, Name: "critical", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirBarrier, Name: "barrier"})
	reg(pragma.DirectiveEntry{Kind: DirTaskwait, Name: "taskwait"})
	reg(pragma.DirectiveEntry{Kind: DirTaskgroup, Name: "taskgroup"})
	reg(pragma.DirectiveEntry{Kind: DirTaskyield, Name: "taskyield"})
	reg(pragma.DirectiveEntry{Kind: DirAtomic, Name: "atomic"})
	reg(pragma.DirectiveEntry{Kind: DirFlush, Name: "flush", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirOrdered, Name: "ordered"})
	// the construct-type spellings alias to the plain cancel kinds; the
	// original lexeme survives in Directive.Spelling
	reg(pragma.DirectiveEntry{Kind: DirCancel, Name: "cancel",
		Aliases: []string{"cancel parallel", "cancel for", "cancel do", "cancel sections", "cancel taskgroup"}})
	reg(pragma.DirectiveEntry{Kind: DirCancellationPoint, Name: "cancellation point",
		Aliases: []string{"cancellation point parallel", "cancellation point for", "cancellation point do", "cancellation point sections", "cancellation point taskgroup"}})
	reg(pragma.DirectiveEntry{Kind: DirThreadprivate, Name: "threadprivate", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirTask, Name: "task"})
	reg(pragma.DirectiveEntry{Kind: DirTaskloop, Name: "taskloop"})
	reg(pragma.DirectiveEntry{Kind: DirTaskloopSimd, Name: "taskloop simd"})
	reg(pragma.DirectiveEntry{Kind: DirTarget, Name: "target"})
	reg(pragma.DirectiveEntry{Kind: DirTargetData, Name: "target data"})
	reg(pragma.DirectiveEntry{Kind: DirTargetEnterData, Name: "target enter data"})
	reg(pragma.DirectiveEntry{Kind: DirTargetExitData, Name: "target exit data"})
	reg(pragma.DirectiveEntry{Kind: DirTargetUpdate, Name: "target update"})
	reg(pragma.DirectiveEntry{Kind: DirTeams, Name: "teams"})
	reg(pragma.DirectiveEntry{Kind: DirDistribute, Name: "distribute"})
	reg(pragma.DirectiveEntry{Kind: DirSimd, Name: "simd"})
	reg(pragma.DirectiveEntry{Kind: DirDeclareSimd, Name: "declare simd", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirDeclareTarget, Name: "declare target", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirDeclareReduction, Name: "declare reduction", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirDeclareMapper, Name: "declare mapper", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirScan, Name: "scan"})
	reg(pragma.DirectiveEntry{Kind: DirMetadirective, Name: "metadirective"})
	reg(pragma.DirectiveEntry{Kind: DirRequires, Name: "requires"})
	reg(pragma.DirectiveEntry{Kind: DirAllocate, Name: "allocate", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirLoop, Name: "loop"})
	reg(pragma.DirectiveEntry{Kind: DirTile, Name: "tile"})
	reg(pragma.DirectiveEntry{Kind: DirUnroll, Name: "unroll"})
	reg(pragma.DirectiveEntry{Kind: DirInterop, Name: "interop"})
	reg(pragma.DirectiveEntry{Kind: DirDispatch, Name: "dispatch"})
	reg(pragma.DirectiveEntry{Kind: DirAssume, Name: "assume", Aliases: []string{"assumes"}})
	reg(pragma.DirectiveEntry{Kind: DirNothing, Name: "nothing"})
	reg(pragma.DirectiveEntry{Kind: DirError, Name: "error"})

	// combined constructs; the Fortran do spellings are aliases keyed to
	// the base language through FortranName
	reg(pragma.DirectiveEntry{Kind: DirParallelFor, Name: "parallel for", FortranName: "parallel do"})
	reg(pragma.DirectiveEntry{Kind: DirParallelSections, Name: "parallel sections"})
	reg(pragma.DirectiveEntry{Kind: DirParallelLoop, Name: "parallel loop"})
	reg(pragma.DirectiveEntry{Kind: DirParallelMaster, Name: "parallel master"})
	reg(pragma.DirectiveEntry{Kind: DirParallelMasked, Name: "parallel masked"})
	reg(pragma.DirectiveEntry{Kind: DirForSimd, Name: "for simd", FortranName: "do simd"})
	reg(pragma.DirectiveEntry{Kind: DirParallelForSimd, Name: "parallel for simd", FortranName: "parallel do simd"})
	reg(pragma.DirectiveEntry{Kind: DirMasterTaskloop, Name: "master taskloop"})
	reg(pragma.DirectiveEntry{Kind: DirMasterTaskloopSimd, Name: "master taskloop simd"})
	reg(pragma.DirectiveEntry{Kind: DirMaskedTaskloop, Name: "masked taskloop"})
	reg(pragma.DirectiveEntry{Kind: DirMaskedTaskloopSimd, Name: "masked taskloop simd"})
	reg(pragma.DirectiveEntry{Kind: DirParallelMasterTaskloop, Name: "parallel master taskloop"})
	reg(pragma.DirectiveEntry{Kind: DirParallelMasterTaskloopSimd, Name: "parallel master taskloop simd"})
	reg(pragma.DirectiveEntry{Kind: DirDistributeSimd, Name: "distribute simd"})
	reg(pragma.DirectiveEntry{Kind: DirDistributeParallelFor, Name: "distribute parallel for", FortranName: "distribute parallel do"})
	reg(pragma.DirectiveEntry{Kind: DirDistributeParallelForSimd, Name: "distribute parallel for simd", FortranName: "distribute parallel do simd"})
	reg(pragma.DirectiveEntry{Kind: DirTeamsDistribute, Name: "teams distribute"})
	reg(pragma.DirectiveEntry{Kind: DirTeamsDistributeSimd, Name: "teams distribute simd"})
	reg(pragma.DirectiveEntry{Kind: DirTeamsDistributeParallelFor, Name: "teams distribute parallel for", FortranName: "teams distribute parallel do"})
	reg(pragma.DirectiveEntry{Kind: DirTeamsDistributeParallelForSimd, Name: "teams distribute parallel for simd", FortranName: "teams distribute parallel do simd"})
	reg(pragma.DirectiveEntry{Kind: DirTeamsLoop, Name: "teams loop"})
	reg(pragma.DirectiveEntry{Kind: DirTargetParallel, Name: "target parallel"})
	reg(pragma.DirectiveEntry{Kind: DirTargetParallelFor, Name: "target parallel for", FortranName: "target parallel do"})
	reg(pragma.DirectiveEntry{Kind: DirTargetParallelForSimd, Name: "target parallel for simd", FortranName: "target parallel do simd"})
	reg(pragma.DirectiveEntry{Kind: DirTargetParallelLoop, Name: "target parallel loop"})
	reg(pragma.DirectiveEntry{Kind: DirTargetSimd, Name: "target simd"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeams, Name: "target teams"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeamsDistribute, Name: "target teams distribute"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeamsDistributeSimd, Name: "target teams distribute simd"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeamsDistributeParallelFor, Name: "target teams distribute parallel for", FortranName: "target teams distribute parallel do"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeamsDistributeParallelForSimd, Name: "target teams distribute parallel for simd", FortranName: "target teams distribute parallel do simd"})
	reg(pragma.DirectiveEntry{Kind: DirTargetTeamsLoop, Name: "target teams loop"})

	return r
}

func newClauses() *pragma.ClauseRegistry {
	r := pragma.NewClauseRegistry()
	reg := func(e pragma.ClauseEntry) { r.Register(e) }

	bare := func(kind pragma.ClauseKind, name string) {
		reg(pragma.ClauseEntry{Kind: kind, Name: name, Shape: pragma.NoArgument})
	}
	raw := func(kind pragma.ClauseKind, name string) {
		reg(pragma.ClauseEntry{Kind: kind, Name: name, Shape: pragma.RawArgument})
	}
	list := func(kind pragma.ClauseKind, name string) {
		reg(pragma.ClauseEntry{Kind: kind, Name: name, Shape: pragma.ListArgument})
	}

	raw(ClauseIf, "if")
	raw(ClauseNumThreads, "num_threads")
	reg(pragma.ClauseEntry{Kind: ClauseDefault, Name: "default", Shape: pragma.DefaultArgument,
		Defaults: []string{"shared", "none", "private", "firstprivate"}})
	list(ClausePrivate, "private")
	list(ClauseFirstprivate, "firstprivate")
	list(ClauseLastprivate, "lastprivate")
	list(ClauseShared, "shared")
	reg(pragma.ClauseEntry{Kind: ClauseReduction, Name: "reduction", Shape: pragma.ReductionArgument})
	reg(pragma.ClauseEntry{Kind: ClauseInReduction, Name: "in_reduction", Shape: pragma.ReductionArgument})
	reg(pragma.ClauseEntry{Kind: ClauseTaskReduction, Name: "task_reduction", Shape: pragma.ReductionArgument})
	list(ClauseCopyin, "copyin")
	list(ClauseCopyprivate, "copyprivate")
	reg(pragma.ClauseEntry{Kind: ClauseSchedule, Name: "schedule", Shape: pragma.ScheduleArgument})
	reg(pragma.ClauseEntry{Kind: ClauseOrdered, Name: "ordered", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseOrdered)})
	bare(ClauseNowait, "nowait")
	raw(ClauseCollapse, "collapse")
	raw(ClauseSafelen, "safelen")
	raw(ClauseSimdlen, "simdlen")
	raw(ClauseAligned, "aligned")
	raw(ClauseLinear, "linear")
	list(ClauseUniform, "uniform")
	bare(ClauseInbranch, "inbranch")
	bare(ClauseNotinbranch, "notinbranch")
	raw(ClauseProcBind, "proc_bind")
	reg(pragma.ClauseEntry{Kind: ClauseMap, Name: "map", Shape: pragma.CustomArgument, Parse: parseMap})
	raw(ClauseDevice, "device")
	raw(ClauseDeviceType, "device_type")
	raw(ClauseDefaultmap, "defaultmap")
	reg(pragma.ClauseEntry{Kind: ClauseDepend, Name: "depend", Shape: pragma.CustomArgument, Parse: parseDepend})
	raw(ClausePriority, "priority")
	raw(ClauseGrainsize, "grainsize")
	raw(ClauseNumTasks, "num_tasks")
	bare(ClauseNogroup, "nogroup")
	bare(ClauseUntied, "untied")
	bare(ClauseMergeable, "mergeable")
	raw(ClauseFinal, "final")
	list(ClauseIsDevicePtr, "is_device_ptr")
	list(ClauseHasDeviceAddr, "has_device_addr")
	list(ClauseUseDevicePtr, "use_device_ptr")
	list(ClauseUseDeviceAddr, "use_device_addr")
	reg(pragma.ClauseEntry{Kind: ClauseTo, Name: "to", Shape: pragma.ModifiedListArgument, Modifiers: []string{"present"}})
	reg(pragma.ClauseEntry{Kind: ClauseFrom, Name: "from", Shape: pragma.ModifiedListArgument, Modifiers: []string{"present"}})
	list(ClauseLink, "link")
	raw(ClauseAllocate, "allocate")
	raw(ClauseAllocator, "allocator")
	raw(ClauseDistSchedule, "dist_schedule")
	raw(ClauseBind, "bind")
	raw(ClauseNumTeams, "num_teams")
	raw(ClauseThreadLimit, "thread_limit")
	list(ClauseInclusive, "inclusive")
	list(ClauseExclusive, "exclusive")
	raw(ClauseHint, "hint")
	list(ClauseNontemporal, "nontemporal")
	raw(ClauseOrder, "order")
	raw(ClauseDetach, "detach")
	raw(ClauseAffinity, "affinity")
	raw(ClauseFilter, "filter")
	raw(ClauseAt, "at")
	raw(ClauseSeverity, "severity")
	raw(ClauseMessage, "message")
	list(ClauseSizes, "sizes")
	raw(ClausePartial, "partial")
	bare(ClauseFull, "full")
	reg(pragma.ClauseEntry{Kind: ClauseDestroy, Name: "destroy", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseDestroy)})
	raw(ClauseInit, "init")
	raw(ClauseUse, "use")
	bare(ClauseNovariants, "novariants")
	bare(ClauseNocontext, "nocontext")
	reg(pragma.ClauseEntry{Kind: ClauseWhen, Name: "when", Shape: pragma.CustomArgument, Parse: parseWhen})
	raw(ClauseOtherwise, "otherwise")
	bare(ClauseThreads, "threads")
	bare(ClauseSimd, "simd")
	bare(ClauseReadClause, "read")
	bare(ClauseWriteClause, "write")
	bare(ClauseUpdateClause, "update")
	bare(ClauseCapture, "capture")
	bare(ClauseSeqCst, "seq_cst")
	bare(ClauseAcqRel, "acq_rel")
	bare(ClauseAcquire, "acquire")
	bare(ClauseRelease, "release")
	bare(ClauseRelaxed, "relaxed")

	return r
}

var mapTypes = map[string]bool{
	"to": true, "from": true, "tofrom": true, "alloc": true,
	"release": true, "delete": true, "always": true, "close": true,
	"present": true,
}

// parseMap handles map([modifiers... :] list). Modifiers are split at
// top-level commas so mapper(id) stays intact.
func parseMap(s *pragma.Scanner, c *pragma.Clause) *pragma.Error {
	interior, err := scanClauseParens(s, c)
	if err != nil {
		return err
	}
	head, tail, hasColon := pragma.CutTopLevel(interior, ':')
	itemText := interior
	if hasColon {
		for _, m := range pragma.SplitTopLevel(head, ',') {
			lower := strings.ToLower(m)
			if !mapTypes[lower] && !strings.HasPrefix(lower, "mapper(") {
				return malformedAt(s, c, "unknown map type modifier "+m)
			}
			c.Modifiers = append(c.Modifiers, m)
		}
		itemText = tail
	}
	items, ok := clauseItems(itemText)
	if !ok {
		return malformedAt(s, c, "empty item list")
	}
	c.Form = pragma.ModifiedListForm
	c.Items = items
	return nil
}

var dependTypes = map[string]bool{
	"in": true, "out": true, "inout": true, "mutexinoutset": true,
	"inoutset": true, "depobj": true, "sink": true, "source": true,
}

// parseDepend handles depend([iterator(...),] type : list) and the bare
// depend(source) ordering form.
func parseDepend(s *pragma.Scanner, c *pragma.Clause) *pragma.Error {
	interior, err := scanClauseParens(s, c)
	if err != nil {
		return err
	}
	head, tail, hasColon := pragma.CutTopLevel(interior, ':')
	if !hasColon {
		if !dependTypes[strings.ToLower(strings.TrimSpace(interior))] {
			return malformedAt(s, c, "unknown dependence type")
		}
		c.Form = pragma.RawForm
		c.Raw = strings.TrimSpace(interior)
		return nil
	}
	mods := pragma.SplitTopLevel(head, ',')
	last := strings.ToLower(mods[len(mods)-1])
	if !dependTypes[last] {
		return malformedAt(s, c, "unknown dependence type "+mods[len(mods)-1])
	}
	for _, m := range mods[:len(mods)-1] {
		if !strings.HasPrefix(strings.ToLower(m), "iterator(") {
			return malformedAt(s, c, "unknown depend modifier "+m)
		}
	}
	items, ok := clauseItems(tail)
	if !ok {
		return malformedAt(s, c, "empty item list")
	}
	c.Form = pragma.ModifiedListForm
	c.Modifiers = mods
	c.Items = items
	return nil
}

// parseWhen captures metadirective when(context-selector : directive-variant)
// verbatim; the variant grammar is a nested directive and stays unparsed.
func parseWhen(s *pragma.Scanner, c *pragma.Clause) *pragma.Error {
	interior, err := scanClauseParens(s, c)
	if err != nil {
		return err
	}
	if _, _, hasColon := pragma.CutTopLevel(interior, ':'); !hasColon {
		return malformedAt(s, c, "missing ':'")
	}
	c.Form = pragma.RawForm
	c.Raw = strings.TrimSpace(interior)
	return nil
}

// parseOptionalRaw makes a clause that is bare unless a parenthesized
// argument follows, like ordered and ordered(n).
func parseOptionalRaw(kind pragma.ClauseKind) pragma.ClauseParser {
	return func(s *pragma.Scanner, c *pragma.Clause) *pragma.Error {
		probe := s.Clone()
		probe.SkipWhitespace()
		if probe.Peek() != '(' {
			c.Form = pragma.BareForm
			return nil
		}
		*s = *probe
		interior, err := s.ScanBalanced()
		if err != nil {
			err.Clause = kind
			return err
		}
		c.Form = pragma.RawForm
		c.Raw = strings.TrimSpace(interior)
		return nil
	}
}

func scanClauseParens(s *pragma.Scanner, c *pragma.Clause) (string, *pragma.Error) {
	s.SkipWhitespace()
	interior, err := s.ScanBalanced()
	if err != nil {
		err.Clause = c.Kind
		return "", err
	}
	return interior, nil
}

func clauseItems(text string) ([]string, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	items := pragma.SplitTopLevel(text, ',')
	for _, item := range items {
		if item == "" {
			return nil, false
		}
	}
	return items, true
}

func malformedAt(s *pragma.Scanner, c *pragma.Clause, reason string) *pragma.Error {
	return &pragma.Error{
		Kind:   pragma.MalformedClause,
		Clause: c.Kind,
		Offset: s.OrigOffset(),
		Pos:    s.Pos(),
		Reason: reason,
	}
}
