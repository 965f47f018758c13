package repository

import (
	"context"

	"presupuesto_svc/internal/domain/entities"
	"presupuesto_svc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTaxonomyTableName = "taxonomy"

type taxonomyItem struct {
	Codigo      string `dynamodbav:"codigo"`
	Categoria   string `dynamodbav:"categoria"`
	Descripcion string `dynamodbav:"descripcion"`
	Activo      bool   `dynamodbav:"activo"`
}

// TaxonomyDynamoRepository reads the canonical taxonomy table.
//
// Table requirements:
//   - PK: codigo (string)
//
// The table is small (tens of rows) and read through a 5-minute cache, so a
// full scan per refresh is fine.

type TaxonomyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaxonomyRepository = (*TaxonomyDynamoRepository)(nil)

func NewTaxonomyDynamoRepository(ddb *dynamodb.Client) *TaxonomyDynamoRepository {
	return &TaxonomyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TAXONOMY_TABLE", defaultTaxonomyTableName),
	}
}

func (r *TaxonomyDynamoRepository) ScanActive(ctx context.Context) ([]entities.TaxonomyEntry, error) {
	var out []entities.TaxonomyEntry
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#activo = :true"),
			ExpressionAttributeNames: map[string]string{
				"#activo": "activo",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			var it taxonomyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.TaxonomyEntry{
				Codigo:      it.Codigo,
				Categoria:   it.Categoria,
				Descripcion: it.Descripcion,
				Activo:      it.Activo,
			})
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}
