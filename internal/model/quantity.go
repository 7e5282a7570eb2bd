package model

// Stage is the coarse lifecycle state a unit of a bottle occupies.
// Each stage has a matching counter on the bottle.
type Stage string

const (
	StageInStock  Stage = "in_stock"
	StageOpened   Stage = "opened"
	StageConsumed Stage = "consumed"
	StageGifted   Stage = "gifted"
)

func (s Stage) Valid() bool {
	switch s {
	case StageInStock, StageOpened, StageConsumed, StageGifted:
		return true
	}
	return false
}

// Status is the single canonical stage derived from the four counters.
// It is denormalized for query and display convenience; lifecycle.Derive
// is the only authority allowed to compute it.
type Status = Stage

// Quantities holds the per-stage counters of a bottle. All counters are
// non-negative; a transition moves units between exactly two of them.
type Quantities struct {
	InStock  int64
	Opened   int64
	Consumed int64
	Gifted   int64
}

// At returns the counter value for the given stage.
func (q Quantities) At(s Stage) int64 {
	switch s {
	case StageInStock:
		return q.InStock
	case StageOpened:
		return q.Opened
	case StageConsumed:
		return q.Consumed
	case StageGifted:
		return q.Gifted
	}
	return 0
}

// Total is the lifetime unit count across all stages.
func (q Quantities) Total() int64 {
	return q.InStock + q.Opened + q.Consumed + q.Gifted
}
