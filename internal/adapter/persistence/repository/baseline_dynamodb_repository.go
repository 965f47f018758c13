package repository

import (
	"context"

	"presupuesto_svc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBaselinesTableName = "baselines"

// BaselineDynamoRepository reads approved baselines from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items are returned as generic maps on purpose: historical writers stored
// baselines flat, payload-wrapped or double-wrapped, and the normalizer owns
// untangling that shape, not this repository.

type BaselineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBaselineRepository = (*BaselineDynamoRepository)(nil)

func NewBaselineDynamoRepository(ddb *dynamodb.Client) *BaselineDynamoRepository {
	return &BaselineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BASELINES_TABLE", defaultBaselinesTableName),
	}
}

func (r *BaselineDynamoRepository) GetRawByID(ctx context.Context, baselineID string) (map[string]interface{}, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: baselineID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var raw map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
