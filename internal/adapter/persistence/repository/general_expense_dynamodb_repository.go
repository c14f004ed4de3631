package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"construtora_xpto/internal/domain/entities"
	"construtora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExpensesTableName = "general_expenses"
	expensesProjectIDIndex   = "project_id-index"
)

type generalExpenseItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Date        string `dynamodbav:"date"`
	Description string `dynamodbav:"description"`
	Supplier    string `dynamodbav:"supplier,omitempty"`
	TotalAmount string `dynamodbav:"total_amount"`
	AmountPaid  string `dynamodbav:"amount_paid"`
	Priority    int    `dynamodbav:"priority"`
	Segment     string `dynamodbav:"segment"`
	Status      string `dynamodbav:"status"`
	ServiceID   string `dynamodbav:"service_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// GeneralExpenseDynamoRepository persists GeneralExpense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// UpdatePaid writes the paid amount and the payable status atomically so a
// partial payment can never land without its status transition.

type GeneralExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGeneralExpenseRepository = (*GeneralExpenseDynamoRepository)(nil)

func NewGeneralExpenseDynamoRepository(ddb *dynamodb.Client) *GeneralExpenseDynamoRepository {
	return &GeneralExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GENERAL_EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *GeneralExpenseDynamoRepository) Create(ctx context.Context, e entities.GeneralExpense) (entities.GeneralExpense, error) {
	it := toGeneralExpenseItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GeneralExpense{}, err
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
		return entities.GeneralExpense{}, err
	}
	return e, nil
}

func (r *GeneralExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.GeneralExpense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GeneralExpense{}, err
	}
	if len(out.Item) == 0 {
		return entities.GeneralExpense{}, nil
	}

	var it generalExpenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GeneralExpense{}, err
	}
	return fromGeneralExpenseItem(it), nil
}

func (r *GeneralExpenseDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.GeneralExpense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(expensesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.GeneralExpense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it generalExpenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromGeneralExpenseItem(it))
	}
	return items, nil
}

func (r *GeneralExpenseDynamoRepository) UpdatePaid(ctx context.Context, id string, amountPaid float64, status entities.PayableStatus) (entities.GeneralExpense, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #amount_paid = :amount_paid, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount_paid": &types.AttributeValueMemberS{Value: floatToString(amountPaid)},
			":status":      &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#amount_paid": "amount_paid",
			"#status":      "status",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *GeneralExpenseDynamoRepository) UpdatePriority(ctx context.Context, id string, priority int) (entities.GeneralExpense, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #priority = :priority, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":priority":   &types.AttributeValueMemberN{Value: strconv.Itoa(priority)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#priority":   "priority",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *GeneralExpenseDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.GeneralExpense, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.GeneralExpense{}, nil
		}
		return entities.GeneralExpense{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.GeneralExpense{}, nil
	}
	var it generalExpenseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.GeneralExpense{}, err
	}
	return fromGeneralExpenseItem(it), nil
}

func toGeneralExpenseItem(e entities.GeneralExpense) generalExpenseItem {
	return generalExpenseItem{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Date:        timeToString(e.Date),
		Description: e.Description,
		Supplier:    e.Supplier,
		TotalAmount: floatToString(e.TotalAmount),
		AmountPaid:  floatToString(e.AmountPaid),
		Priority:    e.Priority,
		Segment:     string(e.Segment),
		Status:      string(e.Status),
		ServiceID:   e.ServiceID,
		CreatedAt:   timeToString(e.CreatedAt),
		UpdatedAt:   timeToString(e.UpdatedAt),
	}
}

func fromGeneralExpenseItem(it generalExpenseItem) entities.GeneralExpense {
	return entities.GeneralExpense{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Date:        stringToTime(it.Date),
		Description: it.Description,
		Supplier:    it.Supplier,
		TotalAmount: stringToFloat(it.TotalAmount),
		AmountPaid:  stringToFloat(it.AmountPaid),
		Priority:    it.Priority,
		Segment:     entities.Segment(it.Segment),
		Status:      entities.PayableStatus(it.Status),
		ServiceID:   it.ServiceID,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
