package item

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/statcore/internal/game/stat"
)

// Applier applies items to holders and logs each application at debug level.
type Applier struct {
	logger *zap.Logger
}

// NewApplier creates an Applier that logs to logger.
//
// Precondition: logger must be non-nil.
func NewApplier(logger *zap.Logger) *Applier {
	return &Applier{logger: logger}
}

// Apply applies it to target and returns the holder's new vector.
//
// Precondition: target must be non-nil.
// Postcondition: result logged; target.Stats() reflects the applied delta.
func (a *Applier) Apply(it Item, target stat.Holder) stat.Vector {
	var before stat.Vector
	after := stat.Modify(target, func(cur stat.Vector) stat.Vector {
		before = cur
		return stat.Add(it.delta, cur)
	})
	a.logger.Debug("item applied",
		zap.String("kind", string(it.kind)),
		zap.Object("before", vectorMarshaler(before)),
		zap.Object("after", vectorMarshaler(after)),
	)
	return after
}

// ApplyAll applies items to target in order and returns the final vector.
func (a *Applier) ApplyAll(target stat.Holder, items ...Item) stat.Vector {
	cur := target.Stats()
	for _, it := range items {
		cur = a.Apply(it, target)
	}
	return cur
}

// vectorMarshaler encodes a stat.Vector as a structured log object.
type vectorMarshaler stat.Vector

func (v vectorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt32("health", v.Health)
	enc.AddInt32("attack", v.Attack)
	enc.AddInt32("defense", v.Defense)
	enc.AddInt32("magic", v.Magic)
	return nil
}
