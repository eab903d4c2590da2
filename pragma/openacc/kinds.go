package openacc

import "github.com/ouankou/roup/pragma"

// Directive kind codes in the OpenACC range (2000+ for directives,
// 2500+ for clauses). Stable, append-only, shared with compatibility
// layers; aliases resolve to the same code.
const (
	DirParallel pragma.DirectiveKind = pragma.OpenACCKindStart + iota
	DirKernels
	DirSerial
	DirData
	DirEnterData
	DirExitData
	DirHostData
	DirLoop
	DirCache
	DirAtomic
	DirDeclare
	DirInit
	DirShutdown
	DirSet
	DirUpdate
	DirWait
	DirRoutine
	DirParallelLoop
	DirKernelsLoop
	DirSerialLoop
)

// Clause kind codes.
const (
	ClauseCopy pragma.ClauseKind = pragma.OpenACCKindStart + 500 + iota
	ClauseCopyin
	ClauseCopyout
	ClauseCreate
	ClauseDelete
	ClausePresent
	ClauseDeviceptr
	ClauseAttach
	ClauseDetach
	ClauseNoCreate
	ClausePrivate
	ClauseFirstprivate
	ClauseReduction
	ClauseDefault
	ClauseNumGangs
	ClauseNumWorkers
	ClauseVectorLength
	ClauseGang
	ClauseWorker
	ClauseVector
	ClauseSeq
	ClauseIndependent
	ClauseAuto
	ClauseCollapse
	ClauseTile
	ClauseDeviceType
	ClauseAsync
	ClauseWait
	ClauseIf
	ClauseSelf
	ClauseHost
	ClauseDevice
	ClauseDeviceResident
	ClauseLink
	ClauseUseDevice
	ClauseFinalize
	ClauseIfPresent
	ClauseRead
	ClauseWrite
	ClauseUpdate
	ClauseCapture
	ClauseBind
	ClauseNohost
	ClauseDeviceNum
	ClauseDefaultAsync
)
