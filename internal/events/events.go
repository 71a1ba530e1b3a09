package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/faciam-dev/gcms/internal/logger"
)

// Event names emitted by the content API.
const (
	PageSaved        = "page.saved"
	PageDeleted      = "page.deleted"
	SectionValidated = "section.validated"
)

// Default is the global dispatcher used by Emit.
var Default *Dispatcher

// Event represents a notification payload.
type Event struct {
	Name string    `json:"name"`
	Time time.Time `json:"time"`
	Data any       `json:"data"`
	ID   string    `json:"id"`
}

// PageEvent is the payload of page.saved and page.deleted events.
type PageEvent struct {
	Table string `json:"table"`
	Page  string `json:"page"`
	Actor string `json:"actor,omitempty"`
}

// ValidationEvent is the payload of section.validated events.
type ValidationEvent struct {
	Table  string   `json:"table"`
	Type   string   `json:"type"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// New builds an event with a fresh ID and timestamp.
func New(name string, data any) Event {
	return Event{Name: name, Time: time.Now().UTC(), Data: data, ID: uuid.NewString()}
}

// Sink publishes events.
type Sink interface {
	Emit(ctx context.Context, e Event) error
}

// DLQ stores events that exhausted their delivery attempts.
type DLQ interface {
	Store(ctx context.Context, e Event, attempts int, lastErr string) error
}

// Dispatcher broadcasts events to multiple sinks with retries.
type Dispatcher struct {
	sinks        []Sink
	maxAttempts  int
	initialDelay time.Duration
	dlq          DLQ
}

// RetryConfig provides dispatcher retry settings.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

// NewDispatcher creates a dispatcher from sinks and retry config.
func NewDispatcher(cfg Config, dlq DLQ, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{maxAttempts: 3, initialDelay: time.Second}
	if cfg.Retry.MaxAttempts > 0 {
		d.maxAttempts = cfg.Retry.MaxAttempts
	}
	if cfg.Retry.InitialDelay > 0 {
		d.initialDelay = cfg.Retry.InitialDelay
	}
	d.sinks = append(d.sinks, sinks...)
	d.dlq = dlq
	return d
}

// Emit sends an event using the global dispatcher if set.
func Emit(ctx context.Context, e Event) {
	if Default != nil {
		Default.Dispatch(ctx, e)
	}
}

// Dispatch sends the event to all sinks asynchronously.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) {
	for _, s := range d.sinks {
		sink := s
		go d.retrySend(ctx, sink, e)
	}
}

func (d *Dispatcher) retrySend(ctx context.Context, s Sink, e Event) {
	delay := d.initialDelay
	var err error
	for i := 1; i <= d.maxAttempts; i++ {
		if err = s.Emit(ctx, e); err == nil {
			return
		}
		if i < d.maxAttempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	logger.L.Error("event delivery failed", "event", e.Name, "id", e.ID, "attempts", d.maxAttempts, "err", err)
	if d.dlq != nil {
		if derr := d.dlq.Store(ctx, e, d.maxAttempts, err.Error()); derr != nil {
			logger.L.Error("dlq store failed", "event", e.Name, "id", e.ID, "err", derr)
		}
	}
}
