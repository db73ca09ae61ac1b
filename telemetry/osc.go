package telemetry

import (
	"fmt"

	"github.com/hypebeast/go-osc/osc"

	"github.com/tonelab/harmonia/logging"
)

// defaultQueueDepth bounds the outbound buffer; records beyond it are
// dropped.
const defaultQueueDepth = 64

// OSCSink publishes records as OSC messages over UDP. Send enqueues without
// blocking; a background worker drains the queue. Messages are dropped when
// the queue is full or the wire write fails.
type OSCSink struct {
	client *osc.Client
	queue  chan *osc.Message
	done   chan struct{}
	log    logging.Logger
}

// NewOSCSink creates a sink targeting host:port and starts its worker.
func NewOSCSink(host string, port int) *OSCSink {
	s := &OSCSink{
		client: osc.NewClient(host, port),
		queue:  make(chan *osc.Message, defaultQueueDepth),
		done:   make(chan struct{}),
		log:    logging.WithFields(logging.Fields{"component": "telemetry"}),
	}
	go s.run()
	return s
}

// Send implements Sink. Unsupported argument types are stringified so a
// record is never rejected outright.
func (s *OSCSink) Send(address string, args ...any) {
	select {
	case s.queue <- NewMessage(address, args...):
	default:
		// Queue full: drop. The bus is best-effort.
	}
}

// Close stops the worker. Pending queued messages are discarded.
func (s *OSCSink) Close() {
	close(s.done)
}

func (s *OSCSink) run() {
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.queue:
			if err := s.client.Send(msg); err != nil {
				s.log.Debug("osc send failed", logging.Fields{
					"address": msg.Address,
					"error":   err.Error(),
				})
			}
		}
	}
}

// NewMessage builds an OSC message from loosely typed arguments. Integers
// become int32, floats become float32, strings and byte blobs pass through,
// anything else is formatted as a string.
func NewMessage(address string, args ...any) *osc.Message {
	msg := osc.NewMessage(address)
	for _, arg := range args {
		switch v := arg.(type) {
		case int32:
			msg.Append(v)
		case int:
			msg.Append(int32(v))
		case uint8:
			msg.Append(int32(v))
		case float32:
			msg.Append(v)
		case float64:
			msg.Append(float32(v))
		case string:
			msg.Append(v)
		case []byte:
			msg.Append(v)
		case bool:
			msg.Append(v)
		default:
			msg.Append(fmt.Sprintf("%v", v))
		}
	}
	return msg
}
