package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ghwebhooks "github.com/go-playground/webhooks/v6/github"
)

// ActionCompleted is the only action that drives reconciliation.
const ActionCompleted = "completed"

var (
	// ErrNotProcessable marks deliveries that are discarded without reconciliation.
	ErrNotProcessable = errors.New("webhook: event is not processable")
	// ErrInvalidPayload marks processable deliveries whose body does not have the required shape.
	ErrInvalidPayload = errors.New("webhook: invalid payload")
)

// Delivery is the stored-event context handed to reconciliation.
type Delivery struct {
	EventID        int64
	InstallationID *int64
	ReceivedAt     time.Time
}

// Handler reconciles each processable event variant. Adding a variant means adding a method here.
type Handler interface {
	HandleRun(ctx context.Context, d Delivery, ev RunCompleted) error
	HandleJob(ctx context.Context, d Delivery, ev JobCompleted) error
}

// Event is a processable delivery: either RunCompleted or JobCompleted.
type Event interface {
	Kind() ghwebhooks.Event
	Accept(ctx context.Context, d Delivery, h Handler) error
	sealed()
}

// RunCompleted is a workflow_run delivery with action "completed".
type RunCompleted struct {
	Payload *RunPayload
}

func (RunCompleted) Kind() ghwebhooks.Event { return ghwebhooks.WorkflowRunEvent }

func (e RunCompleted) Accept(ctx context.Context, d Delivery, h Handler) error {
	return h.HandleRun(ctx, d, e)
}

func (RunCompleted) sealed() {}

// JobCompleted is a workflow_job delivery with action "completed".
type JobCompleted struct {
	Payload *JobPayload
}

func (JobCompleted) Kind() ghwebhooks.Event { return ghwebhooks.WorkflowJobEvent }

func (e JobCompleted) Accept(ctx context.Context, d Delivery, h Handler) error {
	return h.HandleJob(ctx, d, e)
}

func (JobCompleted) sealed() {}

// IsProcessable reports whether kind and action select a reconciled event.
func IsProcessable(kind ghwebhooks.Event, action string) bool {
	if action != ActionCompleted {
		return false
	}
	return kind == ghwebhooks.WorkflowRunEvent || kind == ghwebhooks.WorkflowJobEvent
}

// Classify decodes a stored delivery into its event variant. It returns ErrNotProcessable for
// deliveries that should be discarded and ErrInvalidPayload when a processable body is malformed.
func Classify(kind ghwebhooks.Event, payload []byte) (Event, error) {
	var head struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return nil, fmt.Errorf("%w: decode action: %v", ErrInvalidPayload, err)
	}
	if !IsProcessable(kind, head.Action) {
		return nil, ErrNotProcessable
	}
	if err := Validate(kind, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch kind {
	case ghwebhooks.WorkflowRunEvent:
		var p RunPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("%w: decode workflow_run: %v", ErrInvalidPayload, err)
		}
		return RunCompleted{Payload: &p}, nil
	default:
		var p JobPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("%w: decode workflow_job: %v", ErrInvalidPayload, err)
		}
		return JobCompleted{Payload: &p}, nil
	}
}
