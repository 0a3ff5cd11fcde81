package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"spotify-etl/internal/shared"

	"github.com/hibiken/asynq"
)

// Client enqueues pipeline tasks.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddress string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddress}),
	}
}

// EnqueueTransform schedules the transform of one raw snapshot document.
// The task id is derived from the document key so concurrent triggers
// for the same document collapse into a single pending task; a conflict
// therefore is not an error.
func (c *Client) EnqueueTransform(ctx context.Context, documentKey string) error {
	payload, err := json.Marshal(shared.TransformSnapshotPayload{DocumentKey: documentKey})
	if err != nil {
		return fmt.Errorf("marshal transform payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeTransformSnapshot, payload)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueTransform),
		asynq.TaskID("transform:"+documentKey),
		asynq.MaxRetry(5),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			// Already queued or in flight for this document.
			return nil
		}
		return fmt.Errorf("enqueue transform for %s: %w", documentKey, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
