package bench

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Report is the outcome of one round against one target.
type Report struct {
	Target   string
	Ops      int
	Duration time.Duration

	Inserts   int
	Retrieves int
	Removes   int

	// Size and Count of the target after the round.
	Size  int
	Count int

	// First insert error; the insert phase stops there.
	InsertErr error
}

func (r Report) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("target", r.Target)
	enc.AddInt("ops", r.Ops)
	enc.AddDuration("duration", r.Duration)
	enc.AddInt("inserts", r.Inserts)
	enc.AddInt("retrieves", r.Retrieves)
	enc.AddInt("removes", r.Removes)
	enc.AddInt("size", r.Size)
	enc.AddInt("count", r.Count)
	if r.InsertErr != nil {
		enc.AddString("insertError", r.InsertErr.Error())
	}

	return nil
}
