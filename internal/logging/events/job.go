package events

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging"
)

type JobTracer struct{}

var Job = JobTracer{}

func (JobTracer) Start(id string, total uint64) {
	logging.Trace("job.start", map[string]interface{}{"id": id, "total": humanize.IBytes(total)})
}

func (JobTracer) Finish(id string, done uint64, elapsed time.Duration, err error) {
	payload := map[string]interface{}{
		"id":      id,
		"done":    humanize.IBytes(done),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("job.finish", payload)
}

func (JobTracer) Space(id string, available, required uint64) {
	logging.Trace("job.space", map[string]interface{}{
		"id":        id,
		"available": humanize.IBytes(available),
		"required":  humanize.IBytes(required),
	})
}
