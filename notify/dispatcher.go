package notify

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

// Dispatcher fans events out to every sink from a single goroutine, in enqueue order.
type Dispatcher struct {
	queue *UnboundedQueue[Event]
	sinks []Notifier

	startOnce sync.Once
	started   atomic.Bool
	done      chan struct{}
}

func NewDispatcher(sinks ...Notifier) *Dispatcher {
	return &Dispatcher{
		queue: NewUnboundedQueue[Event](),
		sinks: sinks,
		done:  make(chan struct{}),
	}
}

// Start launches the delivery loop. Cancelling ctx does not abort deliveries: events still
// queued when the node shuts down are flushed by Close, bounded by each sink's own timeout.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		d.started.Store(true)
		go d.run(context.WithoutCancel(ctx))
	})
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for event := range d.queue.Out {
		for _, sink := range d.sinks {
			if err := sink.Notify(ctx, event); err != nil {
				logging.Warn("notification failed", logging.Notifications,
					"sink", sink.Name(),
					"kind", event.Kind,
					"period_id", event.PeriodId,
					"delivery_id", event.DeliveryId,
					"error", err,
				)
			}
		}
	}
}

// Enqueue hands events to the dispatcher without blocking on the sinks.
func (d *Dispatcher) Enqueue(events ...Event) {
	for _, event := range events {
		if event.DeliveryId == "" {
			event.DeliveryId = uuid.NewString()
		}
		if !d.queue.Push(event) {
			logging.Warn("dispatcher closed, dropping event", logging.Notifications,
				"kind", event.Kind, "period_id", event.PeriodId)
		}
	}
}

// Pending is the approximate number of events not yet handed to the sinks.
func (d *Dispatcher) Pending() int {
	return d.queue.Size()
}

// Close stops accepting events and, if the dispatcher was started, waits for the queued ones
// to be delivered.
func (d *Dispatcher) Close() {
	d.queue.Close()
	if d.started.Load() {
		<-d.done
	}
}
