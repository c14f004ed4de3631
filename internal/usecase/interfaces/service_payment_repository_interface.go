package interfaces

import (
	"context"

	"construtora_xpto/internal/domain/entities"
)

// IServicePaymentRepository abstracts DynamoDB persistence for ServicePayment.

type IServicePaymentRepository interface {
	Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error)
	GetByID(ctx context.Context, id string) (entities.ServicePayment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ServicePayment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error)
	UpdatePaid(ctx context.Context, id string, amountPaid float64, status entities.PayableStatus) (entities.ServicePayment, error)
}
