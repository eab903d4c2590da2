// Package openacc instantiates the directive and clause registries for
// the OpenACC dialect, including the present_or_/p-prefixed alias
// families carried over from OpenACC 1.0.
package openacc

import (
	"strings"

	"github.com/ouankou/roup/pragma"
)

var (
	Directives = newDirectives()
	Clauses    = newClauses()
)

func newDirectives() *pragma.DirectiveRegistry {
	r := pragma.NewDirectiveRegistry()
	reg := func(e pragma.DirectiveEntry) { r.Register(e) }

	reg(pragma.DirectiveEntry{Kind: DirParallel, Name: "parallel"})
	reg(pragma.DirectiveEntry{Kind: DirKernels, Name: "kernels"})
	reg(pragma.DirectiveEntry{Kind: DirSerial, Name: "serial"})
	reg(pragma.DirectiveEntry{Kind: DirData, Name: "data"})
	reg(pragma.DirectiveEntry{Kind: DirEnterData, Name: "enter data"})
	reg(pragma.DirectiveEntry{Kind: DirExitData, Name: "exit data"})
	reg(pragma.DirectiveEntry{Kind: DirHostData, Name: "host_data"})
	reg(pragma.DirectiveEntry{Kind: DirLoop, Name: "loop"})
	reg(pragma.DirectiveEntry{Kind: DirCache, Name: "cache", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirAtomic, Name: "atomic"})
	reg(pragma.DirectiveEntry{Kind: DirDeclare, Name: "declare"})
	reg(pragma.DirectiveEntry{Kind: DirInit, Name: "init"})
	reg(pragma.DirectiveEntry{Kind: DirShutdown, Name: "shutdown"})
	reg(pragma.DirectiveEntry{Kind: DirSet, Name: "set"})
	reg(pragma.DirectiveEntry{Kind: DirUpdate, Name: "update"})
	reg(pragma.DirectiveEntry{Kind: DirWait, Name: "wait", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirRoutine, Name: "routine", Parameter: pragma.OptionalParameter})
	reg(pragma.DirectiveEntry{Kind: DirParallelLoop, Name: "parallel loop"})
	reg(pragma.DirectiveEntry{Kind: DirKernelsLoop, Name: "kernels loop"})
	reg(pragma.DirectiveEntry{Kind: DirSerialLoop, Name: "serial loop"})

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
	list := func(kind pragma.ClauseKind, name string, aliases ...string) {
		reg(pragma.ClauseEntry{Kind: kind, Name: name, Aliases: aliases, Shape: pragma.ListArgument})
	}

	list(ClauseCopy, "copy", "pcopy", "present_or_copy")
	reg(pragma.ClauseEntry{Kind: ClauseCopyin, Name: "copyin",
		Aliases:   []string{"pcopyin", "present_or_copyin"},
		Shape:     pragma.ModifiedListArgument,
		Modifiers: []string{"readonly"}})
	list(ClauseCopyout, "copyout", "pcopyout", "present_or_copyout")
	reg(pragma.ClauseEntry{Kind: ClauseCreate, Name: "create",
		Aliases:   []string{"pcreate", "present_or_create"},
		Shape:     pragma.ModifiedListArgument,
		Modifiers: []string{"zero"}})
	list(ClauseDelete, "delete")
	list(ClausePresent, "present")
	list(ClauseDeviceptr, "deviceptr")
	list(ClauseAttach, "attach")
	list(ClauseDetach, "detach")
	list(ClauseNoCreate, "no_create")
	list(ClausePrivate, "private")
	list(ClauseFirstprivate, "firstprivate")
	reg(pragma.ClauseEntry{Kind: ClauseReduction, Name: "reduction", Shape: pragma.ReductionArgument})
	reg(pragma.ClauseEntry{Kind: ClauseDefault, Name: "default", Shape: pragma.DefaultArgument,
		Defaults: []string{"none", "present"}})
	raw(ClauseNumGangs, "num_gangs")
	raw(ClauseNumWorkers, "num_workers")
	raw(ClauseVectorLength, "vector_length")
	reg(pragma.ClauseEntry{Kind: ClauseGang, Name: "gang", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseGang)})
	reg(pragma.ClauseEntry{Kind: ClauseWorker, Name: "worker", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseWorker)})
	reg(pragma.ClauseEntry{Kind: ClauseVector, Name: "vector", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseVector)})
	bare(ClauseSeq, "seq")
	bare(ClauseIndependent, "independent")
	bare(ClauseAuto, "auto")
	raw(ClauseCollapse, "collapse")
	list(ClauseTile, "tile")
	reg(pragma.ClauseEntry{Kind: ClauseDeviceType, Name: "device_type",
		Aliases: []string{"dtype"}, Shape: pragma.ListArgument})
	reg(pragma.ClauseEntry{Kind: ClauseAsync, Name: "async", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseAsync)})
	reg(pragma.ClauseEntry{Kind: ClauseWait, Name: "wait", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseWait)})
	raw(ClauseIf, "if")
	reg(pragma.ClauseEntry{Kind: ClauseSelf, Name: "self", Shape: pragma.CustomArgument, Parse: parseOptionalRaw(ClauseSelf)})
	list(ClauseHost, "host")
	list(ClauseDevice, "device")
	list(ClauseDeviceResident, "device_resident")
	list(ClauseLink, "link")
	list(ClauseUseDevice, "use_device")
	bare(ClauseFinalize, "finalize")
	bare(ClauseIfPresent, "if_present")
	bare(ClauseRead, "read")
	bare(ClauseWrite, "write")
	bare(ClauseUpdate, "update")
	bare(ClauseCapture, "capture")
	raw(ClauseBind, "bind")
	bare(ClauseNohost, "nohost")
	raw(ClauseDeviceNum, "device_num")
	raw(ClauseDefaultAsync, "default_async")

	return r
}

// parseOptionalRaw makes a clause bare unless a parenthesized argument
// follows, which covers gang, worker(num:n), vector(length:n), async(n),
// wait(queues) and self(cond).
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
