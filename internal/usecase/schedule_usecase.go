package usecase

import (
	"time"

	"construtora_xpto/internal/domain/entities"
)

// EVMResult is the earned-value picture of one stage.
//
//	earnedValue  = budgeted × completion% / 100
//	costVariance = earnedValue − paid
//	variancePct  = 100 × costVariance / budgeted (0 when unbudgeted)
type EVMResult struct {
	EarnedValue    float64                    `json:"earned_value"`
	CostVariance   float64                    `json:"cost_variance"`
	VariancePct    float64                    `json:"variance_pct"`
	Classification entities.EVMClassification `json:"classification"`
}

// StageStatusResult is the derived schedule-health state of one stage.
type StageStatusResult struct {
	StageID       string                  `json:"stage_id"`
	Status        entities.ScheduleStatus `json:"status"`
	CompletionPct float64                 `json:"completion_pct"`
	DaysRemaining int                     `json:"days_remaining"`
	EVM           EVMResult               `json:"evm"`
}

// IScheduleUseCase derives schedule status and earned-value variance per
// stage. It has no ordering dependency on the ledger engines.

type IScheduleUseCase interface {
	EvaluateStage(stage entities.ScheduleStage, today time.Time) StageStatusResult
	EvaluateStages(stages []entities.ScheduleStage, today time.Time) []StageStatusResult
}

type ScheduleUseCase struct{}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase() *ScheduleUseCase {
	return &ScheduleUseCase{}
}

// EvaluateStage runs the status state machine against today.
//
// COMPLETED wins once completion reaches 100. Otherwise: missing planned
// dates give NO_DATE, a future start gives SCHEDULED, a past end with work
// remaining gives DELAYED, and inside the planned window the stage is DELAYED
// only when completion runs more than DelaySlackPoints behind the linear
// expected-progress curve.
func (u *ScheduleUseCase) EvaluateStage(stage entities.ScheduleStage, today time.Time) StageStatusResult {
	pct := stage.EffectiveCompletionPct()
	res := StageStatusResult{
		StageID:       stage.ID,
		CompletionPct: pct,
		EVM:           evaluateEVM(stage, pct),
	}

	switch {
	case pct >= 100:
		res.Status = entities.ScheduleCompleted
	case stage.PlannedStart.IsZero() || stage.PlannedEnd.IsZero():
		res.Status = entities.ScheduleNoDate
	case today.Before(stage.PlannedStart):
		res.Status = entities.ScheduleScheduled
	case today.After(stage.PlannedEnd):
		res.Status = entities.ScheduleDelayed
	default:
		expected := expectedProgress(stage.PlannedStart, stage.PlannedEnd, today)
		if pct < expected-entities.DelaySlackPoints {
			res.Status = entities.ScheduleDelayed
		} else {
			res.Status = entities.ScheduleOnTrack
		}
	}

	if !stage.PlannedEnd.IsZero() {
		res.DaysRemaining = daysBetween(today, stage.PlannedEnd)
	}
	return res
}

func (u *ScheduleUseCase) EvaluateStages(stages []entities.ScheduleStage, today time.Time) []StageStatusResult {
	out := make([]StageStatusResult, 0, len(stages))
	for _, st := range stages {
		out = append(out, u.EvaluateStage(st, today))
	}
	return out
}

// expectedProgress is the linear planned-progress curve value for today.
func expectedProgress(start, end, today time.Time) float64 {
	total := end.Sub(start).Hours() / 24
	if total <= 0 {
		return 100
	}
	elapsed := today.Sub(start).Hours() / 24
	return 100 * elapsed / total
}

// daysBetween counts whole days from a to b; negative when b already passed.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// evaluateEVM computes the earned-value variance and its classification.
// Informational only: the result never feeds back into the primary status.
func evaluateEVM(stage entities.ScheduleStage, pct float64) EVMResult {
	earned := stage.BudgetedAmount * pct / 100
	cv := earned - stage.AmountPaid

	var variancePct float64
	if stage.BudgetedAmount > 0 {
		variancePct = 100 * cv / stage.BudgetedAmount
	}

	return EVMResult{
		EarnedValue:    earned,
		CostVariance:   cv,
		VariancePct:    variancePct,
		Classification: classifyVariance(variancePct),
	}
}

// classifyVariance buckets variancePct: above the tolerance the stage spent
// less than it earned (AHEAD), inside [0, tolerance] it is ON_TRACK, small
// negative variances are a MODERATE_OVERRUN and anything beyond the negative
// tolerance is CRITICAL_OVERRUN.
func classifyVariance(variancePct float64) entities.EVMClassification {
	switch {
	case variancePct > entities.EVMTolerancePct:
		return entities.EVMAhead
	case variancePct >= 0:
		return entities.EVMOnTrack
	case variancePct >= -entities.EVMTolerancePct:
		return entities.EVMModerateOverrun
	default:
		return entities.EVMCriticalOverrun
	}
}
