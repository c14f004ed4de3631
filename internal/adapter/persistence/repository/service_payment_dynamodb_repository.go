package repository

import (
	"context"
	"errors"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicePaymentsTableName = "service_payments"
	servicePaymentsProjectIDIndex   = "project_id-index"
	servicePaymentsServiceIDIndex   = "service_id-index"
)

type servicePaymentItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	ServiceID   string `dynamodbav:"service_id"`
	Date        string `dynamodbav:"date"`
	Description string `dynamodbav:"description"`
	Supplier    string `dynamodbav:"supplier,omitempty"`
	TotalAmount string `dynamodbav:"total_amount"`
	AmountPaid  string `dynamodbav:"amount_paid"`
	Segment     string `dynamodbav:"segment"`
	Priority    int    `dynamodbav:"priority"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServicePaymentDynamoRepository persists ServicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: service_id-index (PK: service_id)

type ServicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServicePaymentRepository = (*ServicePaymentDynamoRepository)(nil)

func NewServicePaymentDynamoRepository(ddb *dynamodb.Client) *ServicePaymentDynamoRepository {
	return &ServicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_PAYMENTS_TABLE", defaultServicePaymentsTableName),
	}
}

func (r *ServicePaymentDynamoRepository) Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error) {
	it := toServicePaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServicePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServicePayment{}, err
	}
	return p, nil
}

func (r *ServicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServicePayment{}, nil
	}

	var it servicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServicePayment{}, err
	}
	return fromServicePaymentItem(it), nil
}

func (r *ServicePaymentDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ServicePayment, error) {
	return r.queryIndex(ctx, servicePaymentsProjectIDIndex, "project_id", projectID)
}

func (r *ServicePaymentDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error) {
	return r.queryIndex(ctx, servicePaymentsServiceIDIndex, "service_id", serviceID)
}

func (r *ServicePaymentDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.ServicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it servicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServicePaymentItem(it))
	}
	return items, nil
}

func (r *ServicePaymentDynamoRepository) UpdatePaid(ctx context.Context, id string, amountPaid float64, status entities.PayableStatus) (entities.ServicePayment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #amount_paid = :amount_paid, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount_paid": &types.AttributeValueMemberS{Value: floatToString(amountPaid)},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#amount_paid": "amount_paid",
			"#status":      "status",
			"#updated_at":  "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServicePayment{}, nil
		}
		return entities.ServicePayment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServicePayment{}, nil
	}
	var it servicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServicePayment{}, err
	}
	return fromServicePaymentItem(it), nil
}

func toServicePaymentItem(p entities.ServicePayment) servicePaymentItem {
	return servicePaymentItem{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		ServiceID:   p.ServiceID,
		Date:        timeToString(p.Date),
		Description: p.Description,
		Supplier:    p.Supplier,
		TotalAmount: floatToString(p.TotalAmount),
		AmountPaid:  floatToString(p.AmountPaid),
		Segment:     string(p.Segment),
		Priority:    p.Priority,
		Status:      string(p.Status),
		CreatedAt:   timeToString(p.CreatedAt),
		UpdatedAt:   timeToString(p.UpdatedAt),
	}
}

func fromServicePaymentItem(it servicePaymentItem) entities.ServicePayment {
	return entities.ServicePayment{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		ServiceID:   it.ServiceID,
		Date:        stringToTime(it.Date),
		Description: it.Description,
		Supplier:    it.Supplier,
		TotalAmount: stringToFloat(it.TotalAmount),
		AmountPaid:  stringToFloat(it.AmountPaid),
		Segment:     entities.Segment(it.Segment),
		Priority:    it.Priority,
		Status:      entities.PayableStatus(it.Status),
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
