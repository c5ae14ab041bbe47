// This package drives the per-cell commit emission. Cells are written
// sequentially in the calendar package's order; a failing commit is
// tallied and skipped, never fatal, so one bad call can't leave the
// graph half drawn with no report of what happened.
package commit

import (
	"log/slog"
	"time"
)

// progressInterval is how many commits pass between progress reports.
const progressInterval = 10

type Result struct {
	Attempted int
	Succeeded int
	Failed    int
}

type Emitter struct {
	Writer Writer

	// TimeOfDay is the fixed HH:MM:SS applied to every commit date.
	// Midday keeps the date stable across timezone interpretation.
	TimeOfDay string

	// Record, when set, is told the outcome of every attempt. Used to
	// journal runs; failures there are the callback's problem.
	Record func(timestamp string, ok bool)

	// Progress, when set, is called after every progressInterval
	// successful commits, and when the success count reaches the full
	// attempt count. Failed attempts don't advance the count it
	// reports.
	Progress func(done int, total int)
}

// Timestamp renders one cell date as the string handed to the writer.
func (e *Emitter) Timestamp(date time.Time) string {
	return date.Format("2006-01-02") + "T" + e.TimeOfDay
}

// Emit writes one commit per date, in order, and reports the tally.
// Individual failures are logged and counted but don't stop the run.
func (e *Emitter) Emit(dates []time.Time) Result {
	res := Result{Attempted: len(dates)}

	for _, date := range dates {
		timestamp := e.Timestamp(date)
		err := e.Writer.WriteCommit(timestamp)
		if err != nil {
			slog.Error("Commit failed",
				"timestamp", timestamp,
				"err", err,
			)
			res.Failed++
		} else {
			res.Succeeded++
			if e.Progress != nil && (res.Succeeded%progressInterval == 0 || res.Succeeded == res.Attempted) {
				e.Progress(res.Succeeded, res.Attempted)
			}
		}

		if e.Record != nil {
			e.Record(timestamp, err == nil)
		}
	}

	return res
}
