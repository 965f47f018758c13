package repository

import (
	"context"
	"strings"
	"time"

	"presupuesto_svc/internal/domain/entities"
	"presupuesto_svc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRubrosTableName = "rubros"

type rubroItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	ProjectID       string `dynamodbav:"project_id"`
	BaselineID      string `dynamodbav:"baseline_id"`
	InstanceID      string `dynamodbav:"instance_id"`
	LineaCodigo     string `dynamodbav:"linea_codigo"`
	Nombre          string `dynamodbav:"nombre"`
	Categoria       string `dynamodbav:"categoria"`
	MonthlyUnitCost string `dynamodbav:"monthly_unit_cost"`
	Recurring       bool   `dynamodbav:"recurring"`
	StartMonth      int    `dynamodbav:"start_month"`
	EndMonth        int    `dynamodbav:"end_month"`
	TotalCost       string `dynamodbav:"total_cost"`
	Currency        string `dynamodbav:"currency"`
	Source          string `dynamodbav:"source"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// RubroDynamoRepository persists materialized rubros in DynamoDB.
//
// Table requirements:
//   - PK: pk = "PROJECT#<project_id>"
//   - SK: sk = "BASELINE#<baseline_id>#RUBRO#<instance_id>"

type RubroDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRubroRepository = (*RubroDynamoRepository)(nil)

func NewRubroDynamoRepository(ddb *dynamodb.Client) *RubroDynamoRepository {
	return &RubroDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUBROS_TABLE", defaultRubrosTableName),
	}
}

func rubroPK(projectID string) string { return "PROJECT#" + projectID }

func rubroSK(k entities.RubroKey) string {
	return "BASELINE#" + k.BaselineID + "#RUBRO#" + k.InstanceID
}

func (r *RubroDynamoRepository) QueryByProject(ctx context.Context, projectID string) ([]entities.Rubro, error) {
	var out []entities.Rubro
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
				":pk":     &types.AttributeValueMemberS{Value: rubroPK(projectID)},
				":prefix": &types.AttributeValueMemberS{Value: "BASELINE#"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it rubroItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromRubroItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *RubroDynamoRepository) BatchGetByKeys(ctx context.Context, keys []entities.RubroKey) (map[entities.RubroKey]entities.Rubro, error) {
	ddbKeys := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		ddbKeys = append(ddbKeys, map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: rubroPK(k.ProjectID)},
			"sk": &types.AttributeValueMemberS{Value: rubroSK(k)},
		})
	}

	items, err := batchGetAll(ctx, r.ddb, r.tableName, ddbKeys)
	if err != nil {
		return nil, err
	}

	out := make(map[entities.RubroKey]entities.Rubro, len(items))
	for _, item := range items {
		var it rubroItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		e := fromRubroItem(it)
		out[e.Key()] = e
	}
	return out, nil
}

func (r *RubroDynamoRepository) BatchPut(ctx context.Context, items []entities.Rubro) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, e := range items {
		av, err := attributevalue.MarshalMap(toRubroItem(e))
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWriteAll(ctx, r.ddb, r.tableName, requests)
}

func toRubroItem(e entities.Rubro) rubroItem {
	return rubroItem{
		PK:              rubroPK(e.ProjectID),
		SK:              rubroSK(e.Key()),
		ProjectID:       e.ProjectID,
		BaselineID:      e.BaselineID,
		InstanceID:      e.InstanceID,
		LineaCodigo:     e.LineaCodigo,
		Nombre:          e.Nombre,
		Categoria:       e.Categoria,
		MonthlyUnitCost: floatToString(e.MonthlyUnitCost),
		Recurring:       e.Recurring,
		StartMonth:      e.StartMonth,
		EndMonth:        e.EndMonth,
		TotalCost:       floatToString(e.TotalCost),
		Currency:        e.Currency,
		Source:          e.Source,
		CreatedAt:       e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRubroItem(it rubroItem) entities.Rubro {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.Rubro{
		ProjectID:       it.ProjectID,
		BaselineID:      it.BaselineID,
		InstanceID:      it.InstanceID,
		LineaCodigo:     it.LineaCodigo,
		Nombre:          it.Nombre,
		Categoria:       it.Categoria,
		MonthlyUnitCost: stringToFloat(it.MonthlyUnitCost),
		Recurring:       it.Recurring,
		StartMonth:      it.StartMonth,
		EndMonth:        it.EndMonth,
		TotalCost:       stringToFloat(it.TotalCost),
		Currency:        it.Currency,
		Source:          it.Source,
		CreatedAt:       createdAt,
	}
	// Old rows written before the flat attributes existed carry identity only
	// in their keys.
	if e.ProjectID == "" {
		e.ProjectID = strings.TrimPrefix(it.PK, "PROJECT#")
	}
	if e.BaselineID == "" || e.InstanceID == "" {
		if parts := strings.Split(it.SK, "#"); len(parts) == 4 {
			e.BaselineID = parts[1]
			e.InstanceID = parts[3]
		}
	}
	return e
}
