package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/rig/internal/core/ports"
)

var _ progrock.Writer = (*Sink)(nil)

// Sink consumes status updates and forwards vertex output to the logger.
// It is the default tape consumer: without it, assembler stdout/stderr
// recorded on a vertex would never reach the user.
type Sink struct {
	logger ports.Logger

	mu    sync.Mutex
	names map[string]string
}

// NewSink creates a new Sink writing to the given logger.
func NewSink(logger ports.Logger) *Sink {
	return &Sink{
		logger: logger,
		names:  make(map[string]string),
	}
}

// WriteStatus forwards the log payloads of one status update. Vertex
// definitions are remembered so log lines can be prefixed with the target
// name instead of the digest.
func (s *Sink) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		s.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		name := s.names[l.Vertex]
		for _, line := range strings.Split(strings.TrimSuffix(string(l.Data), "\n"), "\n") {
			if line == "" {
				continue
			}
			if l.Stream == progrock.LogStream_STDERR {
				s.logger.Warn(name + ": " + line)
			} else {
				s.logger.Info(name + ": " + line)
			}
		}
	}

	return nil
}

// Close implements progrock.Writer. The logger outlives the tape, so there
// is nothing to release.
func (s *Sink) Close() error { return nil }
