package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IScheduleStageRepository abstracts DynamoDB persistence for ScheduleStage.

type IScheduleStageRepository interface {
	Create(ctx context.Context, s entities.ScheduleStage) (entities.ScheduleStage, error)
	GetByID(ctx context.Context, id string) (entities.ScheduleStage, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ScheduleStage, error)
	UpdateProgress(ctx context.Context, id string, completionPct, executedQty float64) (entities.ScheduleStage, error)
}
