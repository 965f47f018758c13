package repository

import (
	"context"
	"time"

	"presupuesto_svc/internal/domain/entities"
	"presupuesto_svc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAllocationsTableName = "allocations"

type allocationItem struct {
	PK               string `dynamodbav:"pk"`
	SK               string `dynamodbav:"sk"`
	ProjectID        string `dynamodbav:"project_id"`
	BaselineID       string `dynamodbav:"baseline_id"`
	MonthIndex       int    `dynamodbav:"month_index"`
	CalendarMonth    string `dynamodbav:"calendar_month"`
	CanonicalRubroID string `dynamodbav:"canonical_rubro_id"`
	Planned          string `dynamodbav:"planned"`
	Forecast         string `dynamodbav:"forecast"`
	Actual           string `dynamodbav:"actual"`
	Currency         string `dynamodbav:"currency"`
	Source           string `dynamodbav:"source"`
	LineItemID       string `dynamodbav:"line_item_id"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// AllocationDynamoRepository persists monthly allocations in DynamoDB.
//
// Table requirements:
//   - PK: pk = "PROJECT#<project_id>"
//   - SK: sk = "BASELINE#<baseline_id>#MONTH#<yyyy-mm>#RUBRO#<canonical_rubro_id>"
//
// SK puts the month before the rubro so reporting can range-scan one calendar
// month with begins_with. Rows written by pre-migration writers with the
// rubro-first ordering are invisible to the probe and are migrated offline.

type AllocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAllocationRepository = (*AllocationDynamoRepository)(nil)

func NewAllocationDynamoRepository(ddb *dynamodb.Client) *AllocationDynamoRepository {
	return &AllocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ALLOCATIONS_TABLE", defaultAllocationsTableName),
	}
}

func allocationPK(projectID string) string { return "PROJECT#" + projectID }

func allocationSK(k entities.AllocationKey) string {
	return "BASELINE#" + k.BaselineID + "#MONTH#" + k.CalendarMonth + "#RUBRO#" + k.CanonicalRubroID
}

func (r *AllocationDynamoRepository) QueryByProject(ctx context.Context, projectID, baselineID string) ([]entities.Allocation, error) {
	prefix := "BASELINE#"
	if baselineID != "" {
		prefix = "BASELINE#" + baselineID + "#MONTH#"
	}

	var out []entities.Allocation
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": "pk",
				"#sk": "sk",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: allocationPK(projectID)},
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it allocationItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAllocationItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *AllocationDynamoRepository) BatchGetByKeys(ctx context.Context, keys []entities.AllocationKey) (map[entities.AllocationKey]entities.Allocation, error) {
	ddbKeys := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		ddbKeys = append(ddbKeys, map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: allocationPK(k.ProjectID)},
			"sk": &types.AttributeValueMemberS{Value: allocationSK(k)},
		})
	}

	items, err := batchGetAll(ctx, r.ddb, r.tableName, ddbKeys)
	if err != nil {
		return nil, err
	}

	out := make(map[entities.AllocationKey]entities.Allocation, len(items))
	for _, item := range items {
		var it allocationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		e := fromAllocationItem(it)
		out[e.Key()] = e
	}
	return out, nil
}

func (r *AllocationDynamoRepository) BatchPut(ctx context.Context, items []entities.Allocation) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, e := range items {
		av, err := attributevalue.MarshalMap(toAllocationItem(e))
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWriteAll(ctx, r.ddb, r.tableName, requests)
}

func toAllocationItem(e entities.Allocation) allocationItem {
	return allocationItem{
		PK:               allocationPK(e.ProjectID),
		SK:               allocationSK(e.Key()),
		ProjectID:        e.ProjectID,
		BaselineID:       e.BaselineID,
		MonthIndex:       e.MonthIndex,
		CalendarMonth:    e.CalendarMonth,
		CanonicalRubroID: e.CanonicalRubroID,
		Planned:          floatToString(e.Planned),
		Forecast:         floatToString(e.Forecast),
		Actual:           floatToString(e.Actual),
		Currency:         e.Currency,
		Source:           e.Source,
		LineItemID:       e.LineItemID,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAllocationItem(it allocationItem) entities.Allocation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Allocation{
		ProjectID:        it.ProjectID,
		BaselineID:       it.BaselineID,
		MonthIndex:       it.MonthIndex,
		CalendarMonth:    it.CalendarMonth,
		CanonicalRubroID: it.CanonicalRubroID,
		Planned:          stringToFloat(it.Planned),
		Forecast:         stringToFloat(it.Forecast),
		Actual:           stringToFloat(it.Actual),
		Currency:         it.Currency,
		Source:           it.Source,
		LineItemID:       it.LineItemID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
