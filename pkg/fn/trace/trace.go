package trace

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-ui/fnkit/pkg/fn"
)

// Span identifies one timed unit of work.
type Span struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
}

func (s Span) Id() uuid.UUID {
	return s.id
}

func (s Span) Name() string {
	return s.name
}

// CreatedAt is the span's creation time (UTC).
func (s Span) CreatedAt() time.Time {
	return s.createdAt
}

type metric struct {
	total   int64
	elapsed time.Duration
}

// Recorder accumulates per-step metrics. It is safe to share between
// independent call sites.
type Recorder struct {
	mu      sync.Mutex
	metrics map[string]*metric
}

func NewRecorder() *Recorder {
	return &Recorder{metrics: make(map[string]*metric)}
}

// Begin opens a span under the given name.
func (r *Recorder) Begin(name string) Span {
	return Span{
		id:        uuid.New(),
		name:      name,
		createdAt: time.Now().UTC(),
	}
}

// End records the span's elapsed time under its name.
func (r *Recorder) End(span Span) {
	r.add(span.name, time.Since(span.createdAt))
}

// Count reports how many spans were recorded under name.
func (r *Recorder) Count(name string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.metrics[name]
	if m == nil {
		return 0
	}
	return m.total
}

// AVGDuration reports the mean elapsed time recorded under name, or zero
// when nothing was recorded.
func (r *Recorder) AVGDuration(name string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.metrics[name]
	if m == nil || m.total == 0 {
		return 0
	}
	return time.Duration(float64(m.elapsed) / float64(m.total))
}

// Names returns the recorded step names in sorted order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Recorder) add(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.metrics[name]
	if m == nil {
		m = &metric{}
		r.metrics[name] = m
	}
	m.total++
	m.elapsed += elapsed
}

// Step wraps step so every invocation is timed under name. A nil recorder
// returns the step unwrapped.
func Step[T, E any](r *Recorder, name string, step fn.Step[T, E]) fn.Step[T, E] {
	if r == nil {
		return step
	}
	return func(value T, env E) T {
		span := r.Begin(name)
		defer r.End(span)
		return step(value, env)
	}
}
