package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Service, error)
}
