package openmp

import "github.com/ouankou/roup/pragma"

// Directive kind codes. These integers are part of the public contract
// shared with compatibility layers: they are stable, append-only, and
// every alias of a directive resolves to the same code.
//
// OpenMP occupies the 1000-range (directives from 1000, clauses from
// 1500); OpenACC extends from 2000.
const (
	DirParallel pragma.DirectiveKind = pragma.OpenMPKindStart + iota
	DirFor
	DirSections
	DirSection
	DirSingle
	DirMaster
	DirMasked
	DirCritical
	DirBarrier
	DirTaskwait
	DirTaskgroup
	DirTaskyield
	DirAtomic
	DirFlush
	DirOrdered
	DirCancel
	DirCancellationPoint
	DirThreadprivate
	DirTask
	DirTaskloop
	DirTaskloopSimd
	DirTarget
	DirTargetData
	DirTargetEnterData
	DirTargetExitData
	DirTargetUpdate
	DirTeams
	DirDistribute
	DirSimd
	DirDeclareSimd
	DirDeclareTarget
	DirDeclareReduction
	DirDeclareMapper
	DirScan
	DirMetadirective
	DirRequires
	DirAllocate
	DirLoop
	DirTile
	DirUnroll
	DirInterop
	DirDispatch
	DirAssume
	DirNothing
	DirError
	DirParallelFor
	DirParallelSections
	DirParallelLoop
	DirParallelMaster
	DirParallelMasked
	DirForSimd
	DirParallelForSimd
	DirMasterTaskloop
	DirMasterTaskloopSimd
	DirMaskedTaskloop
	DirMaskedTaskloopSimd
	DirParallelMasterTaskloop
	DirParallelMasterTaskloopSimd
	DirDistributeSimd
	DirDistributeParallelFor
	DirDistributeParallelForSimd
	DirTeamsDistribute
	DirTeamsDistributeSimd
	DirTeamsDistributeParallelFor
	DirTeamsDistributeParallelForSimd
	DirTeamsLoop
	DirTargetParallel
	DirTargetParallelFor
	DirTargetParallelForSimd
	DirTargetParallelLoop
	DirTargetSimd
	DirTargetTeams
	DirTargetTeamsDistribute
	DirTargetTeamsDistributeSimd
	DirTargetTeamsDistributeParallelFor
	DirTargetTeamsDistributeParallelForSimd
	DirTargetTeamsLoop
)

// Clause kind codes; same stability contract as the directive codes.
const (
	ClauseIf pragma.ClauseKind = pragma.OpenMPKindStart + 500 + iota
	ClauseNumThreads
	ClauseDefault
	ClausePrivate
	ClauseFirstprivate
	ClauseLastprivate
	ClauseShared
	ClauseReduction
	ClauseInReduction
	ClauseTaskReduction
	ClauseCopyin
	ClauseCopyprivate
	ClauseSchedule
	ClauseOrdered
	ClauseNowait
	ClauseCollapse
	ClauseSafelen
	ClauseSimdlen
	ClauseAligned
	ClauseLinear
	ClauseUniform
	ClauseInbranch
	ClauseNotinbranch
	ClauseProcBind
	ClauseMap
	ClauseDevice
	ClauseDeviceType
	ClauseDefaultmap
	ClauseDepend
	ClausePriority
	ClauseGrainsize
	ClauseNumTasks
	ClauseNogroup
	ClauseUntied
	ClauseMergeable
	ClauseFinal
	ClauseIsDevicePtr
	ClauseHasDeviceAddr
	ClauseUseDevicePtr
	ClauseUseDeviceAddr
	ClauseTo
	ClauseFrom
	ClauseLink
	ClauseAllocate
	ClauseAllocator
	ClauseDistSchedule
	ClauseBind
	ClauseNumTeams
	ClauseThreadLimit
	ClauseInclusive
	ClauseExclusive
	ClauseHint
	ClauseNontemporal
	ClauseOrder
	ClauseDetach
	ClauseAffinity
	ClauseFilter
	ClauseAt
	ClauseSeverity
	ClauseMessage
	ClauseSizes
	ClausePartial
	ClauseFull
	ClauseDestroy
	ClauseInit
	ClauseUse
	ClauseNovariants
	ClauseNocontext
	ClauseWhen
	ClauseOtherwise
	ClauseThreads
	ClauseSimd
	ClauseReadClause
	ClauseWriteClause
	ClauseUpdateClause
	ClauseCapture
	ClauseSeqCst
	ClauseAcqRel
	ClauseAcquire
	ClauseRelease
	ClauseRelaxed
)
