package diagnostics

import (
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives human-readable diagnostics meant for the user. Delivery is
// fire-and-forget: sinks must not block callers or report failures back.
type Sink interface {
	Notify(message string)
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc func(message string)

// Notify calls fn.
func (fn SinkFunc) Notify(message string) {
	if fn != nil {
		fn(message)
	}
}

// Nop discards every diagnostic.
var Nop Sink = SinkFunc(func(string) {})

// LogSink writes diagnostics to a zerolog logger at warn level.
type LogSink struct {
	Logger zerolog.Logger
}

// NewLogSink wraps logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

// Notify logs message.
func (s *LogSink) Notify(message string) {
	s.Logger.Warn().Str("component", "formnote").Msg(message)
}

// Collector records diagnostics in memory. It is safe for concurrent use.
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// Notify appends message.
func (c *Collector) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
}

// Messages returns a copy of the recorded diagnostics.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// Reset clears the recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// Fanout delivers each diagnostic to every sink in order.
func Fanout(sinks ...Sink) Sink {
	return SinkFunc(func(message string) {
		for _, sink := range sinks {
			if sink != nil {
				sink.Notify(message)
			}
		}
	})
}
