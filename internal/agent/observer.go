package agent

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/clerk/internal/intent"
)

// TurnEvent records metadata about a single handled query.
type TurnEvent struct {
	Intent    intent.Intent
	LatencyMs int64
	Recovered bool
}

// TurnObserver receives events about completed turns for logging and metrics.
type TurnObserver interface {
	OnTurnComplete(event TurnEvent)
}

// LogObserver writes turn events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnTurnComplete(event TurnEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if event.Recovered {
		status = "recovered"
	}
	fmt.Fprintf(o.w, "[%s] turn intent=%s latency_ms=%d status=%s\n",
		ts, event.Intent, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnTurnComplete(TurnEvent) {}
