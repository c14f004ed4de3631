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
	defaultPendingBudgetsTableName = "pending_budgets"
	pendingBudgetsProjectIDIndex   = "project_id-index"
)

type pendingBudgetItem struct {
	ID           string   `dynamodbav:"id"`
	ProjectID    string   `dynamodbav:"project_id"`
	Description  string   `dynamodbav:"description"`
	Supplier     string   `dynamodbav:"supplier,omitempty"`
	Amount       string   `dynamodbav:"amount"`
	Segment      string   `dynamodbav:"segment"`
	ServiceID    string   `dynamodbav:"service_id,omitempty"`
	Priority     int      `dynamodbav:"priority"`
	Observations string   `dynamodbav:"observations,omitempty"`
	Attachments  []string `dynamodbav:"attachments,omitempty"`
	Status       string   `dynamodbav:"status"`
	ExpenseID    string   `dynamodbav:"expense_id,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// PendingBudgetDynamoRepository persists PendingBudget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// UpdateDecision only succeeds while the proposal is still awaiting approval,
// so a concurrent double-decision loses at the storage layer.

type PendingBudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingBudgetRepository = (*PendingBudgetDynamoRepository)(nil)

func NewPendingBudgetDynamoRepository(ddb *dynamodb.Client) *PendingBudgetDynamoRepository {
	return &PendingBudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_BUDGETS_TABLE", defaultPendingBudgetsTableName),
	}
}

func (r *PendingBudgetDynamoRepository) Create(ctx context.Context, b entities.PendingBudget) (entities.PendingBudget, error) {
	it := toPendingBudgetItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PendingBudget{}, err
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
		return entities.PendingBudget{}, err
	}
	return b, nil
}

func (r *PendingBudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingBudget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingBudget{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingBudget{}, nil
	}

	var it pendingBudgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingBudget{}, err
	}
	return fromPendingBudgetItem(it), nil
}

func (r *PendingBudgetDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.PendingBudget, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pendingBudgetsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PendingBudget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pendingBudgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPendingBudgetItem(it))
	}
	return items, nil
}

func (r *PendingBudgetDynamoRepository) UpdateDecision(ctx context.Context, id string, status entities.BudgetStatus, expenseID string) (entities.PendingBudget, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":awaiting":   &types.AttributeValueMemberS{Value: string(entities.BudgetStatusAguardando)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if expenseID != "" {
		expr += ", #expense_id = :expense_id"
		vals[":expense_id"] = &types.AttributeValueMemberS{Value: expenseID}
		names["#expense_id"] = "expense_id"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :awaiting"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PendingBudget{}, nil
		}
		return entities.PendingBudget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PendingBudget{}, nil
	}
	var it pendingBudgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PendingBudget{}, err
	}
	return fromPendingBudgetItem(it), nil
}

func toPendingBudgetItem(b entities.PendingBudget) pendingBudgetItem {
	return pendingBudgetItem{
		ID:           b.ID,
		ProjectID:    b.ProjectID,
		Description:  b.Description,
		Supplier:     b.Supplier,
		Amount:       floatToString(b.Amount),
		Segment:      string(b.Segment),
		ServiceID:    b.ServiceID,
		Priority:     b.Priority,
		Observations: b.Observations,
		Attachments:  b.Attachments,
		Status:       string(b.Status),
		ExpenseID:    b.ExpenseID,
		CreatedAt:    timeToString(b.CreatedAt),
		UpdatedAt:    timeToString(b.UpdatedAt),
	}
}

func fromPendingBudgetItem(it pendingBudgetItem) entities.PendingBudget {
	return entities.PendingBudget{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		Description:  it.Description,
		Supplier:     it.Supplier,
		Amount:       stringToFloat(it.Amount),
		Segment:      entities.Segment(it.Segment),
		ServiceID:    it.ServiceID,
		Priority:     it.Priority,
		Observations: it.Observations,
		Attachments:  it.Attachments,
		Status:       entities.BudgetStatus(it.Status),
		ExpenseID:    it.ExpenseID,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
