package usecase

import (
	"testing"
	"time"

	"construtora_xpto/internal/domain/entities"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleUseCase_EvaluateStage_Status(t *testing.T) {
	uc := NewScheduleUseCase()
	start := date(2026, 1, 1)
	end := date(2026, 1, 31)
	today := date(2026, 1, 16)

	t.Run("inside slack is on track", func(t *testing.T) {
		// 15 of 30 planned days elapsed, expected 50, completion 40:
		// 40 >= 50-10 keeps the stage on track.
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: start, PlannedEnd: end, CompletionPct: 40}
		res := uc.EvaluateStage(st, today)
		if res.Status != entities.ScheduleOnTrack {
			t.Fatalf("expected ON_TRACK, got %s", res.Status)
		}
		if res.DaysRemaining != 15 {
			t.Fatalf("expected 15 days remaining, got %d", res.DaysRemaining)
		}
	})

	t.Run("behind slack is delayed", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: start, PlannedEnd: end, CompletionPct: 25}
		if res := uc.EvaluateStage(st, today); res.Status != entities.ScheduleDelayed {
			t.Fatalf("expected DELAYED, got %s", res.Status)
		}
	})

	t.Run("missing dates give no_date", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: start, CompletionPct: 50}
		if res := uc.EvaluateStage(st, today); res.Status != entities.ScheduleNoDate {
			t.Fatalf("expected NO_DATE, got %s", res.Status)
		}
	})

	t.Run("future start is scheduled", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: date(2026, 2, 1), PlannedEnd: date(2026, 2, 28)}
		if res := uc.EvaluateStage(st, today); res.Status != entities.ScheduleScheduled {
			t.Fatalf("expected SCHEDULED, got %s", res.Status)
		}
	})

	t.Run("past end with work remaining is delayed", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: start, PlannedEnd: date(2026, 1, 10), CompletionPct: 95}
		res := uc.EvaluateStage(st, today)
		if res.Status != entities.ScheduleDelayed {
			t.Fatalf("expected DELAYED, got %s", res.Status)
		}
		if res.DaysRemaining != -6 {
			t.Fatalf("expected overdue days, got %d", res.DaysRemaining)
		}
	})

	t.Run("completed wins over everything", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, PlannedStart: start, PlannedEnd: date(2026, 1, 10), CompletionPct: 100}
		if res := uc.EvaluateStage(st, today); res.Status != entities.ScheduleCompleted {
			t.Fatalf("expected COMPLETED, got %s", res.Status)
		}

		st = entities.ScheduleStage{ID: "st-2", Mode: entities.MeasurementManual, CompletionPct: 120}
		res := uc.EvaluateStage(st, today)
		if res.Status != entities.ScheduleCompleted || res.CompletionPct != 100 {
			t.Fatalf("expected clamped COMPLETED with no dates, got %+v", res)
		}
	})

	t.Run("area quantity mode derives completion", func(t *testing.T) {
		st := entities.ScheduleStage{
			ID: "st-1", Mode: entities.MeasurementAreaQuantity,
			PlannedStart: start, PlannedEnd: end,
			ExecutedQty: 30, TotalQty: 60,
			CompletionPct: 99, // ignored in this mode
		}
		res := uc.EvaluateStage(st, today)
		if res.CompletionPct != 50 {
			t.Fatalf("expected derived 50, got %v", res.CompletionPct)
		}
		if res.Status != entities.ScheduleOnTrack {
			t.Fatalf("expected ON_TRACK, got %s", res.Status)
		}
	})

	t.Run("area quantity clamps overexecution", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementAreaQuantity, ExecutedQty: 80, TotalQty: 60}
		res := uc.EvaluateStage(st, today)
		if res.CompletionPct != 100 || res.Status != entities.ScheduleCompleted {
			t.Fatalf("expected clamped COMPLETED, got %+v", res)
		}
	})
}

func TestScheduleUseCase_EvaluateStage_EVM(t *testing.T) {
	uc := NewScheduleUseCase()
	today := date(2026, 1, 16)

	t.Run("critical overrun", func(t *testing.T) {
		// Budget 1000 at 50% earns 500 against 800 paid: variance -30%.
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, CompletionPct: 50, BudgetedAmount: 1000, AmountPaid: 800}
		res := uc.EvaluateStage(st, today)
		if res.EVM.EarnedValue != 500 || res.EVM.CostVariance != -300 || res.EVM.VariancePct != -30 {
			t.Fatalf("unexpected evm: %+v", res.EVM)
		}
		if res.EVM.Classification != entities.EVMCriticalOverrun {
			t.Fatalf("expected CRITICAL_OVERRUN, got %s", res.EVM.Classification)
		}
	})

	t.Run("classification bands", func(t *testing.T) {
		cases := []struct {
			name string
			paid float64
			want entities.EVMClassification
		}{
			{name: "ahead", paid: 300, want: entities.EVMAhead},                       // +20%
			{name: "on track upper", paid: 400, want: entities.EVMOnTrack},            // +10%
			{name: "on track zero", paid: 500, want: entities.EVMOnTrack},             // 0%
			{name: "moderate", paid: 580, want: entities.EVMModerateOverrun},          // -8%
			{name: "moderate boundary", paid: 600, want: entities.EVMModerateOverrun}, // -10%
			{name: "critical", paid: 601, want: entities.EVMCriticalOverrun},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, CompletionPct: 50, BudgetedAmount: 1000, AmountPaid: tc.paid}
				if got := uc.EvaluateStage(st, today).EVM.Classification; got != tc.want {
					t.Fatalf("paid %v: expected %s, got %s", tc.paid, tc.want, got)
				}
			})
		}
	})

	t.Run("unbudgeted stage reports zero variance", func(t *testing.T) {
		st := entities.ScheduleStage{ID: "st-1", Mode: entities.MeasurementManual, CompletionPct: 50, AmountPaid: 200}
		res := uc.EvaluateStage(st, today)
		if res.EVM.VariancePct != 0 || res.EVM.Classification != entities.EVMOnTrack {
			t.Fatalf("unexpected evm for unbudgeted stage: %+v", res.EVM)
		}
	})
}

func TestScheduleUseCase_EvaluateStages(t *testing.T) {
	uc := NewScheduleUseCase()
	stages := []entities.ScheduleStage{
		{ID: "st-1", Mode: entities.MeasurementManual, CompletionPct: 100},
		{ID: "st-2", Mode: entities.MeasurementManual},
	}

	results := uc.EvaluateStages(stages, date(2026, 1, 16))
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].StageID != "st-1" || results[0].Status != entities.ScheduleCompleted {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Status != entities.ScheduleNoDate {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
}
