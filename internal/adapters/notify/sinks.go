package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"animals-safety/internal/platform/logger"
)

// LogSink manda cada mensaje al log estructurado.
func LogSink(log logger.Logger) Sink {
	return SinkFunc(func(msg string) {
		log.Info("notification", map[string]any{"message": msg})
	})
}

// WriterSink escribe una línea por mensaje (la CLI lo usa con stderr).
func WriterSink(w io.Writer) Sink {
	var mu sync.Mutex
	return SinkFunc(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprintln(w, msg)
	})
}

const DefaultHistory = 50

type Notification struct {
	Message string
	At      time.Time
}

// Recorder guarda los últimos N mensajes para que la UI los pueda consultar.
// Sirve como Sink de la Queue o directo como animals.Notifier (síncrono).
type Recorder struct {
	mu    sync.RWMutex
	max   int
	items []Notification
	now   func() time.Time
}

func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = DefaultHistory
	}
	return &Recorder{
		max:   max,
		items: make([]Notification, 0, max),
		now:   time.Now,
	}
}

func (r *Recorder) Deliver(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == r.max {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, Notification{Message: msg, At: r.now()})
}

func (r *Recorder) Notify(_ context.Context, msg string) {
	r.Deliver(msg)
}

// Recent devuelve una copia, el más reciente al final.
func (r *Recorder) Recent() []Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Messages es Recent sin timestamps (cómodo en tests y en la CLI).
func (r *Recorder) Messages() []string {
	items := r.Recent()
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Message)
	}
	return out
}
