package repository

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB hard ceilings plus the retry budget for partial batch failures.
const (
	batchGetMaxKeys    = 100
	batchWriteMaxItems = 25
	batchMaxAttempts   = 4
	batchBackoffBase   = 200 * time.Millisecond
)

// ErrUnprocessedItems is raised when the store still reports unprocessed
// items after the final retry attempt. The caller retries the whole
// invocation; idempotent keys make that safe.
var ErrUnprocessedItems = errors.New("unprocessed items remain after final retry attempt")

// dynamoBatchAPI is the slice of the DynamoDB client the batch helpers need.
// Satisfied by *dynamodb.Client; narrowed so the partial-failure retry loops
// can be exercised against a fake.
type dynamoBatchAPI interface {
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func chunkBy[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}

func batchBackoff(attempt int) time.Duration {
	return batchBackoffBase * time.Duration(1<<attempt)
}

// batchGetAll fetches items for the given keys, chunking at the store's
// 100-key ceiling and retrying unprocessed keys with exponential backoff.
func batchGetAll(ctx context.Context, ddb dynamoBatchAPI, tableName string, keys []map[string]types.AttributeValue) ([]map[string]types.AttributeValue, error) {
	var found []map[string]types.AttributeValue

	for _, batch := range chunkBy(keys, batchGetMaxKeys) {
		pending := batch
		for attempt := 0; len(pending) > 0; attempt++ {
			out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					tableName: {Keys: pending, ConsistentRead: aws.Bool(true)},
				},
			})
			if err != nil {
				return nil, err
			}
			found = append(found, out.Responses[tableName]...)

			pending = nil
			if kaa, ok := out.UnprocessedKeys[tableName]; ok {
				pending = kaa.Keys
			}
			if len(pending) == 0 {
				break
			}
			if attempt >= batchMaxAttempts-1 {
				log.Printf("[repository][batch] get table=%s unprocessed=%d after %d attempts", tableName, len(pending), batchMaxAttempts)
				return nil, ErrUnprocessedItems
			}
			sleepCtx(ctx, batchBackoff(attempt))
		}
	}
	return found, nil
}

// batchWriteAll persists put requests in 25-item batches, retrying
// unprocessed items with exponential backoff and raising once the retry
// budget is exhausted.
func batchWriteAll(ctx context.Context, ddb dynamoBatchAPI, tableName string, requests []types.WriteRequest) error {
	for _, batch := range chunkBy(requests, batchWriteMaxItems) {
		pending := batch
		for attempt := 0; len(pending) > 0; attempt++ {
			out, err := ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{tableName: pending},
			})
			if err != nil {
				return err
			}

			pending = out.UnprocessedItems[tableName]
			if len(pending) == 0 {
				break
			}
			if attempt >= batchMaxAttempts-1 {
				log.Printf("[repository][batch] write table=%s unprocessed=%d after %d attempts", tableName, len(pending), batchMaxAttempts)
				return ErrUnprocessedItems
			}
			log.Printf("[repository][batch] write table=%s unprocessed=%d attempt=%d backoff=%s", tableName, len(pending), attempt+1, batchBackoff(attempt))
			sleepCtx(ctx, batchBackoff(attempt))
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
