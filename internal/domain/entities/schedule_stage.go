package entities

import (
	"math"
	"time"
)

// MeasurementMode determines how a stage's completion percentage is obtained.
//
//   - percentual_manual: direct user input, clamped to [0,100]
//   - area_quantidade: derived from executed/total quantity, not settable

type MeasurementMode string

const (
	MeasurementManual       MeasurementMode = "percentual_manual"
	MeasurementAreaQuantity MeasurementMode = "area_quantidade"
)

// ValidMeasurementMode reports whether m is a known measurement mode.
func ValidMeasurementMode(m MeasurementMode) bool {
	return m == MeasurementManual || m == MeasurementAreaQuantity
}

// ScheduleStatus is the derived schedule-health state of a stage.

type ScheduleStatus string

const (
	ScheduleNoDate    ScheduleStatus = "NO_DATE"
	ScheduleScheduled ScheduleStatus = "SCHEDULED"
	ScheduleOnTrack   ScheduleStatus = "ON_TRACK"
	ScheduleDelayed   ScheduleStatus = "DELAYED"
	ScheduleCompleted ScheduleStatus = "COMPLETED"
)

// EVMClassification buckets the earned-value cost variance. Informational
// only; it never feeds back into the stage's primary status.

type EVMClassification string

const (
	EVMAhead           EVMClassification = "AHEAD"
	EVMOnTrack         EVMClassification = "ON_TRACK"
	EVMModerateOverrun EVMClassification = "MODERATE_OVERRUN"
	EVMCriticalOverrun EVMClassification = "CRITICAL_OVERRUN"
)

// ScheduleStage is one stage (etapa) of the project schedule.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Zero time values mean "not set" for the planned/actual date fields.
type ScheduleStage struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	Name           string          `json:"name"`
	OrderIndex     int             `json:"order_index"`
	Mode           MeasurementMode `json:"mode"`
	PlannedStart   time.Time       `json:"planned_start"`
	PlannedEnd     time.Time       `json:"planned_end"`
	ActualStart    time.Time       `json:"actual_start,omitempty"`
	ActualEnd      time.Time       `json:"actual_end,omitempty"`
	CompletionPct  float64         `json:"completion_pct"`
	ExecutedQty    float64         `json:"executed_qty"`
	TotalQty       float64         `json:"total_qty"`
	BudgetedAmount float64         `json:"budgeted_amount"`
	AmountPaid     float64         `json:"amount_paid"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EffectiveCompletionPct resolves the stage completion percentage according
// to its measurement mode, clamped to [0,100].
func (s ScheduleStage) EffectiveCompletionPct() float64 {
	if s.Mode == MeasurementAreaQuantity {
		if s.TotalQty <= 0 {
			return 0
		}
		return ClampPct(math.Round(100 * s.ExecutedQty / s.TotalQty))
	}
	return ClampPct(s.CompletionPct)
}

// ClampPct clamps a percentage to the [0,100] range.
func ClampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
