package lifecycle

import "github.com/alcotheque/cellar/internal/model"

// Derive maps counters to the single canonical status. It is total,
// deterministic and idempotent, and is the only place status is computed.
//
// Rule 1: any stock at all means in_stock, whatever the other counters say.
// Rule 2: otherwise the stage with the largest counter wins, ties broken
// by the fixed preference opened > consumed > gifted.
// Rule 3: all zero defaults to in_stock.
func Derive(q model.Quantities) model.Status {
	if q.InStock > 0 {
		return model.StageInStock
	}

	best := model.StageInStock
	var bestQty int64
	for _, c := range []struct {
		stage model.Stage
		qty   int64
	}{
		{model.StageOpened, q.Opened},
		{model.StageConsumed, q.Consumed},
		{model.StageGifted, q.Gifted},
	} {
		if c.qty > bestQty {
			best = c.stage
			bestQty = c.qty
		}
	}

	return best
}
