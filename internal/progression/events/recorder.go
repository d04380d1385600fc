package events

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=events_test

type eventsWriter interface {
	Add(ctx context.Context, event Event) error
}

const defaultWriteTimeout = 5 * time.Second

// Recorder persists events asynchronously. Record never blocks the caller:
// when the buffer is full the event is dropped and counted.
type Recorder struct {
	writer         eventsWriter
	metricsManager *metrics.Manager
	writeTimeout   time.Duration

	mu      sync.RWMutex
	stopped bool
	events  chan Event
	done    chan struct{}
}

func NewRecorder(writer eventsWriter, bufferSize int, metricsManager *metrics.Manager) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Recorder{
		writer:         writer,
		metricsManager: metricsManager,
		writeTimeout:   defaultWriteTimeout,
		events:         make(chan Event, bufferSize),
		done:           make(chan struct{}),
	}
}

// Start launches the single writer goroutine. Stop must be called to release it.
func (r *Recorder) Start() {
	go r.run()
}

func (r *Recorder) run() {
	defer close(r.done)
	for event := range r.events {
		ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
		if err := r.writer.Add(ctx, event); err != nil {
			log.Errorf("record progression event [%s] for client %s: %s", event.Type, event.ClientID, err)
		}
		cancel()
	}
}

func (r *Recorder) Record(event Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		log.Warnf("progression event [%s] recorded after stop, dropping", event.Type)
		r.dropped()
		return
	}

	select {
	case r.events <- event:
	default:
		log.Warnf("progression events buffer full, dropping [%s] for client %s", event.Type, event.ClientID)
		r.dropped()
	}
}

func (r *Recorder) dropped() {
	if r.metricsManager != nil {
		r.metricsManager.CounterEventsDropped.Inc()
	}
}

// Stop flushes the buffered events and waits for the writer goroutine.
// Safe to call more than once; must not be called before Start.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.events)
	}
	r.mu.Unlock()
	<-r.done
}
