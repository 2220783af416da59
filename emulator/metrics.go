package emulator

import (
	"time"

	"github.com/armon/go-metrics"
)

func emitRunMetrics(res *Result, start time.Time) {
	metrics.MeasureSince([]string{"bpfvm", "run", "duration"}, start)
	metrics.IncrCounter([]string{"bpfvm", "run", "steps"}, float32(res.Steps))
	metrics.IncrCounter([]string{"bpfvm", "run", res.State.String()}, 1)
	if res.Trap != nil {
		metrics.IncrCounter([]string{"bpfvm", "trap", res.Trap.Kind.String()}, 1)
	}
}
