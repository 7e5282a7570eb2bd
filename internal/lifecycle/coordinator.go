package lifecycle

import (
	"strings"
	"time"

	"github.com/alcotheque/cellar/internal/model"
)

// Request describes one desired lifecycle transition for a bottle.
// EntryID and OccurredAt are supplied by the caller so the computation
// stays deterministic.
type Request struct {
	To model.Stage
	// From selects the source counter when ambiguous (consume can come
	// from stock or from opened). Nil picks the default.
	From     *model.Stage
	Quantity int64

	// Required for gift transitions.
	GiftRecipient string

	// Optional snapshot recorded on the history entry.
	Rating  *int32
	Comment string

	EntryID    string
	OccurredAt time.Time
}

// Update is the single merged write payload for one transition: the new
// counters (with the stages that actually changed), the re-derived status
// and the grown history. The persistence layer commits it as one logical
// write; no partial mutation ever leaves this package.
type Update struct {
	Quantities model.Quantities
	// Changed names the counters the transition touched, so the
	// persistence layer can set only those fields.
	Changed []model.Stage
	Status  model.Status
	History []model.StatusHistoryEntry
	Entry   model.StatusHistoryEntry
}

// Execute runs a request end-to-end against a bottle snapshot:
// resolve the source stage, validate and compute counters, derive status,
// build the history entry. The bottle is not mutated; on any error the
// original error is returned with no partial result.
func Execute(b *model.Bottle, req Request) (*Update, error) {
	if !req.To.Valid() {
		return nil, &model.InvalidTransitionError{
			From: req.From, To: req.To, Reason: "unknown target stage",
		}
	}

	if req.To == model.StageGifted && strings.TrimSpace(req.GiftRecipient) == "" {
		return nil, &model.InvalidTransitionError{
			From: req.From, To: req.To, Reason: "gift requires a recipient",
		}
	}

	t, err := resolve(req)
	if err != nil {
		return nil, err
	}

	quantities, err := Apply(b.Quantities, t)
	if err != nil {
		return nil, err
	}

	status := Derive(quantities)

	// previousStatus is the bottle's status before this transition, not
	// the source stage; a restock while already in_stock records
	// in_stock -> in_stock.
	prev := b.Status
	entry := model.StatusHistoryEntry{
		ID:             req.EntryID,
		Timestamp:      req.OccurredAt,
		NewStatus:      status,
		PreviousStatus: &prev,
		Quantity:       req.Quantity,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if req.To == model.StageGifted {
		at := req.OccurredAt
		entry.GiftInfo = &model.GiftInfo{
			To:   strings.TrimSpace(req.GiftRecipient),
			Date: &at,
		}
	}

	return &Update{
		Quantities: quantities,
		Changed:    changed(t),
		Status:     status,
		History:    AppendEntry(b.History, entry),
		Entry:      entry,
	}, nil
}

// Seed builds the lifecycle state of a freshly created bottle:
// inStock = quantity, everything else zero, one seed entry with no
// previous status. A zero quantity is allowed and still lands on
// in_stock via the derivation default.
func Seed(quantity int64, entryID string, at time.Time) (model.Quantities, model.Status, []model.StatusHistoryEntry) {
	q := model.Quantities{InStock: quantity}
	status := Derive(q)
	seed := model.StatusHistoryEntry{
		ID:             entryID,
		Timestamp:      at,
		NewStatus:      status,
		PreviousStatus: nil,
		Quantity:       quantity,
	}
	return q, status, []model.StatusHistoryEntry{seed}
}

// resolve applies the source-stage defaults: open and gift always draw
// from stock, consume draws from stock unless the caller chose opened.
func resolve(req Request) (Transition, error) {
	switch req.To {
	case model.StageInStock:
		// A restock has no source counter; an explicit one is a caller
		// mistake, not something to drop silently.
		if req.From != nil {
			return Transition{}, &model.InvalidTransitionError{
				From: req.From, To: req.To, Reason: "restock takes no source stage",
			}
		}
		return Restock(req.Quantity), nil
	case model.StageOpened, model.StageGifted:
		if req.From != nil && *req.From != model.StageInStock {
			return Transition{}, &model.InvalidTransitionError{
				From: req.From, To: req.To, Reason: "undefined stage pair",
			}
		}
		return Move(model.StageInStock, req.To, req.Quantity), nil
	case model.StageConsumed:
		from := model.StageInStock
		if req.From != nil {
			from = *req.From
		}
		return Move(from, req.To, req.Quantity), nil
	}
	return Transition{}, &model.InvalidTransitionError{
		From: req.From, To: req.To, Reason: "unknown target stage",
	}
}

func changed(t Transition) []model.Stage {
	if t.From == nil {
		return []model.Stage{t.To}
	}
	return []model.Stage{*t.From, t.To}
}
