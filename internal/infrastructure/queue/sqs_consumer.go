package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"presupuesto_svc/internal/infrastructure/database"
	"presupuesto_svc/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

var ErrMissingQueueURL = errors.New("missing materializer queue url")

// triggerMessage is the queue contract: ids only. The consumer fetches the
// baseline from the store itself; a message body with baseline content could
// be stale by the time it is consumed.
type triggerMessage struct {
	BaselineID string `json:"baseline_id"`
	ProjectID  string `json:"project_id"`
}

// SQSConsumer long-polls the materializer trigger queue.
//
// Failed messages are not deleted; SQS redelivers them after the visibility
// timeout, which is safe because materialization is idempotent.

type SQSConsumer struct {
	client   *sqs.Client
	queueURL string
	usecase  usecase.IMaterializerUseCase
}

func NewSQSConsumer(ctx context.Context, queueURL string, uc usecase.IMaterializerUseCase) (*SQSConsumer, error) {
	if queueURL == "" {
		return nil, ErrMissingQueueURL
	}
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("[materializer][queue] consumer initialized queue=%s", queueURL)
	return &SQSConsumer{client: sqs.NewFromConfig(cfg), queueURL: queueURL, usecase: uc}, nil
}

// Start blocks until ctx is cancelled.
func (c *SQSConsumer) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Printf("[materializer][queue] consumer stopped: %v", ctx.Err())
			return
		default:
		}

		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: 5,
			WaitTimeSeconds:     20,
		})
		if err != nil {
			log.Printf("[materializer][queue] receive failed err=%v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, msg := range out.Messages {
			c.handle(ctx, msg)
		}
	}
}

func (c *SQSConsumer) handle(ctx context.Context, msg types.Message) {
	var trigger triggerMessage
	if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &trigger); err != nil {
		log.Printf("[materializer][queue] unparseable message dropped err=%v", err)
		c.delete(ctx, msg)
		return
	}

	result, err := c.usecase.MaterializeByID(ctx, trigger.BaselineID, trigger.ProjectID, usecase.MaterializeOptions{})
	if err != nil {
		// Shape errors will not heal on redelivery; store errors might.
		if errors.Is(err, usecase.ErrInvalidBaselineID) ||
			errors.Is(err, usecase.ErrBaselineNotFound) ||
			errors.Is(err, usecase.ErrMissingProjectID) ||
			errors.Is(err, usecase.ErrBaselineIDAsProjectID) ||
			errors.Is(err, usecase.ErrBaselineWithoutEstimates) {
			log.Printf("[materializer][queue] rejected baseline_id=%s err=%v", trigger.BaselineID, err)
			c.delete(ctx, msg)
			return
		}
		log.Printf("[materializer][queue] failed baseline_id=%s err=%v (will be redelivered)", trigger.BaselineID, err)
		return
	}

	log.Printf("[materializer][queue] done baseline_id=%s rubros_written=%d allocations_written=%d",
		result.BaselineID, result.Rubros.RubrosWritten, result.Allocations.AllocationsWritten)
	c.delete(ctx, msg)
}

func (c *SQSConsumer) delete(ctx context.Context, msg types.Message) {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Printf("[materializer][queue] delete failed err=%v", err)
	}
}
