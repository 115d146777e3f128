package notify

import (
	"context"
	"sync"

	"animals-safety/internal/platform/logger"
)

const DefaultBuffer = 16

// Sink recibe los mensajes ya despachados por la Queue.
type Sink interface {
	Deliver(msg string)
}

// SinkFunc adapta una func a Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Deliver(msg string) { f(msg) }

// Queue implementa animals.Notifier con despacho fire-and-forget:
// Notify nunca bloquea y un único worker entrega a los sinks en orden.
type Queue struct {
	ch    chan string
	sinks []Sink
	log   logger.Logger

	mu     sync.RWMutex
	closed bool

	closeOnce sync.Once
	done      chan struct{}
}

func NewQueue(buffer int, log logger.Logger, sinks ...Sink) *Queue {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if log == nil {
		log = logger.Nop()
	}
	q := &Queue{
		ch:    make(chan string, buffer),
		sinks: sinks,
		log:   log.With(map[string]any{"module": "notify"}),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

// Notify encola el mensaje. Si el buffer está lleno se descarta (best-effort).
// Después de Close es un no-op.
func (q *Queue) Notify(_ context.Context, msg string) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return
	}
	select {
	case q.ch <- msg:
	default:
		q.log.Warn("notification dropped", map[string]any{"buffer": cap(q.ch)})
	}
}

// Close deja de aceptar mensajes y espera a que se entreguen los pendientes.
func (q *Queue) Close(ctx context.Context) error {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		close(q.ch)
		q.mu.Unlock()
	})

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) run() {
	defer close(q.done)
	for msg := range q.ch {
		for _, s := range q.sinks {
			s.Deliver(msg)
		}
	}
}
