// Package lifecycle holds the pure reconciliation core of the cellar:
// counter arithmetic for lifecycle transitions, status derivation and the
// append-only history log. Nothing in this package performs I/O; the
// service layer feeds it current state and persists what it returns.
package lifecycle

import (
	"github.com/alcotheque/cellar/internal/model"
)

// Transition is one requested move of Quantity units into To. From is nil
// only for a restock, which has no source counter.
type Transition struct {
	From     *model.Stage
	To       model.Stage
	Quantity int64
}

// Restock builds the stockless add-to-stock transition.
func Restock(quantity int64) Transition {
	return Transition{To: model.StageInStock, Quantity: quantity}
}

// Move builds a transition sourcing from an explicit stage.
func Move(from, to model.Stage, quantity int64) Transition {
	return Transition{From: &from, To: to, Quantity: quantity}
}

// defined lists every legal (from, to) pair besides restock.
var defined = map[model.Stage][]model.Stage{
	model.StageOpened:   {model.StageInStock},
	model.StageConsumed: {model.StageInStock, model.StageOpened},
	model.StageGifted:   {model.StageInStock},
}

// Apply validates t against q and returns the new counters. The input is
// never mutated. A unit is moved, never duplicated or destroyed: the
// source counter decreases by exactly the amount the target increases.
func Apply(q model.Quantities, t Transition) (model.Quantities, error) {
	if t.Quantity <= 0 {
		return q, &model.InvalidTransitionError{
			From: t.From, To: t.To, Reason: "quantity must be positive",
		}
	}

	// Restock only increases inStock.
	if t.From == nil {
		if t.To != model.StageInStock {
			return q, &model.InvalidTransitionError{
				From: t.From, To: t.To, Reason: "only in_stock can be restocked",
			}
		}
		q.InStock += t.Quantity
		return q, nil
	}

	from := *t.From
	if !allowed(from, t.To) {
		return q, &model.InvalidTransitionError{
			From: t.From, To: t.To, Reason: "undefined stage pair",
		}
	}

	available := q.At(from)
	if t.Quantity > available {
		return q, &model.InsufficientQuantityError{
			Stage:     from,
			Requested: t.Quantity,
			Available: available,
		}
	}

	q = add(q, from, -t.Quantity)
	q = add(q, t.To, t.Quantity)
	return q, nil
}

func allowed(from, to model.Stage) bool {
	for _, src := range defined[to] {
		if src == from {
			return true
		}
	}
	return false
}

func add(q model.Quantities, s model.Stage, delta int64) model.Quantities {
	clamp := func(v int64) int64 {
		// Validation runs before Apply mutates anything, so a negative
		// result means a caller bug; clamp rather than persist garbage.
		if v < 0 {
			return 0
		}
		return v
	}
	switch s {
	case model.StageInStock:
		q.InStock = clamp(q.InStock + delta)
	case model.StageOpened:
		q.Opened = clamp(q.Opened + delta)
	case model.StageConsumed:
		q.Consumed = clamp(q.Consumed + delta)
	case model.StageGifted:
		q.Gifted = clamp(q.Gifted + delta)
	}
	return q
}
