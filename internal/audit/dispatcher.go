package audit

import (
	"context"

	"github.com/docterbee/membership-system/internal/logger"
)

// Dispatcher decouples audit writes from the request path. Logging failures
// never abort the triggering operation: when the queue is full the event is
// dropped and only the server log hears about it.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			log := logger.Get()
			log.Error().Err(err).
				Str("activity_type", string(ev.Type)).
				Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log := logger.Get()
		log.Warn().
			Str("activity_type", string(ev.Type)).
			Msg("audit queue full, dropping event")
	}
}
