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
	defaultStagesTableName = "schedule_stages"
	stagesProjectIDIndex   = "project_id-index"
)

type scheduleStageItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	Name           string `dynamodbav:"name"`
	OrderIndex     int    `dynamodbav:"order_index"`
	Mode           string `dynamodbav:"mode"`
	PlannedStart   string `dynamodbav:"planned_start,omitempty"`
	PlannedEnd     string `dynamodbav:"planned_end,omitempty"`
	ActualStart    string `dynamodbav:"actual_start,omitempty"`
	ActualEnd      string `dynamodbav:"actual_end,omitempty"`
	CompletionPct  string `dynamodbav:"completion_pct"`
	ExecutedQty    string `dynamodbav:"executed_qty"`
	TotalQty       string `dynamodbav:"total_qty"`
	BudgetedAmount string `dynamodbav:"budgeted_amount"`
	AmountPaid     string `dynamodbav:"amount_paid"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ScheduleStageDynamoRepository persists ScheduleStage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ScheduleStageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IScheduleStageRepository = (*ScheduleStageDynamoRepository)(nil)

func NewScheduleStageDynamoRepository(ddb *dynamodb.Client) *ScheduleStageDynamoRepository {
	return &ScheduleStageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SCHEDULE_STAGES_TABLE", defaultStagesTableName),
	}
}

func (r *ScheduleStageDynamoRepository) Create(ctx context.Context, s entities.ScheduleStage) (entities.ScheduleStage, error) {
	it := toScheduleStageItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ScheduleStage{}, err
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
		return entities.ScheduleStage{}, err
	}
	return s, nil
}

func (r *ScheduleStageDynamoRepository) GetByID(ctx context.Context, id string) (entities.ScheduleStage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScheduleStage{}, err
	}
	if len(out.Item) == 0 {
		return entities.ScheduleStage{}, nil
	}

	var it scheduleStageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ScheduleStage{}, err
	}
	return fromScheduleStageItem(it), nil
}

func (r *ScheduleStageDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ScheduleStage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stagesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ScheduleStage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it scheduleStageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromScheduleStageItem(it))
	}
	return items, nil
}

func (r *ScheduleStageDynamoRepository) UpdateProgress(ctx context.Context, id string, completionPct, executedQty float64) (entities.ScheduleStage, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #completion_pct = :completion_pct, #executed_qty = :executed_qty, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completion_pct": &types.AttributeValueMemberS{Value: floatToString(completionPct)},
			":executed_qty":   &types.AttributeValueMemberS{Value: floatToString(executedQty)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#completion_pct": "completion_pct",
			"#executed_qty":   "executed_qty",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ScheduleStage{}, nil
		}
		return entities.ScheduleStage{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ScheduleStage{}, nil
	}
	var it scheduleStageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ScheduleStage{}, err
	}
	return fromScheduleStageItem(it), nil
}

func toScheduleStageItem(s entities.ScheduleStage) scheduleStageItem {
	return scheduleStageItem{
		ID:             s.ID,
		ProjectID:      s.ProjectID,
		Name:           s.Name,
		OrderIndex:     s.OrderIndex,
		Mode:           string(s.Mode),
		PlannedStart:   timeToString(s.PlannedStart),
		PlannedEnd:     timeToString(s.PlannedEnd),
		ActualStart:    timeToString(s.ActualStart),
		ActualEnd:      timeToString(s.ActualEnd),
		CompletionPct:  floatToString(s.CompletionPct),
		ExecutedQty:    floatToString(s.ExecutedQty),
		TotalQty:       floatToString(s.TotalQty),
		BudgetedAmount: floatToString(s.BudgetedAmount),
		AmountPaid:     floatToString(s.AmountPaid),
		CreatedAt:      timeToString(s.CreatedAt),
		UpdatedAt:      timeToString(s.UpdatedAt),
	}
}

func fromScheduleStageItem(it scheduleStageItem) entities.ScheduleStage {
	return entities.ScheduleStage{
		ID:             it.ID,
		ProjectID:      it.ProjectID,
		Name:           it.Name,
		OrderIndex:     it.OrderIndex,
		Mode:           entities.MeasurementMode(it.Mode),
		PlannedStart:   stringToTime(it.PlannedStart),
		PlannedEnd:     stringToTime(it.PlannedEnd),
		ActualStart:    stringToTime(it.ActualStart),
		ActualEnd:      stringToTime(it.ActualEnd),
		CompletionPct:  stringToFloat(it.CompletionPct),
		ExecutedQty:    stringToFloat(it.ExecutedQty),
		TotalQty:       stringToFloat(it.TotalQty),
		BudgetedAmount: stringToFloat(it.BudgetedAmount),
		AmountPaid:     stringToFloat(it.AmountPaid),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
