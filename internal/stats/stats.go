// Package stats computes aggregate views over a snapshot of the cellar.
// Everything here is pure; callers pass the bottle list they already hold.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/alcotheque/cellar/internal/model"
)

// Summary is the dashboard aggregate for one owner's cellar.
type Summary struct {
	// Bottles is the number of inventory line items.
	Bottles int
	// Units per lifecycle stage, weighted by the counters so a line
	// item with 4 in stock and 2 consumed counts in both buckets.
	UnitsByStage map[model.Stage]int64
	// TotalUnits is the lifetime unit count across all bottles.
	TotalUnits int64
	ByType     map[model.SpiritType]int
	ByLocation map[string]int
	Favorites  int
	// PurchaseTotal sums purchase prices of bottles that have one.
	PurchaseTotal decimal.Decimal
	// EstimatedTotal sums estimated values of bottles that have one.
	EstimatedTotal decimal.Decimal
	// Gain is EstimatedTotal - PurchaseTotal over bottles carrying both.
	Gain decimal.Decimal
}

func Compute(bottles []*model.Bottle) Summary {
	s := Summary{
		Bottles:      len(bottles),
		UnitsByStage: make(map[model.Stage]int64, 4),
		ByType:       make(map[model.SpiritType]int),
		ByLocation:   make(map[string]int),
	}

	for _, b := range bottles {
		if b == nil {
			continue
		}

		q := b.Quantities
		s.UnitsByStage[model.StageInStock] += q.InStock
		s.UnitsByStage[model.StageOpened] += q.Opened
		s.UnitsByStage[model.StageConsumed] += q.Consumed
		s.UnitsByStage[model.StageGifted] += q.Gifted
		s.TotalUnits += q.Total()

		s.ByType[b.Type]++
		if b.LocationID != "" {
			s.ByLocation[b.LocationID]++
		}
		if b.Favorite {
			s.Favorites++
		}

		if b.PurchasePrice != nil {
			s.PurchaseTotal = s.PurchaseTotal.Add(*b.PurchasePrice)
		}
		if b.EstimatedValue != nil {
			s.EstimatedTotal = s.EstimatedTotal.Add(*b.EstimatedValue)
		}
		if b.PurchasePrice != nil && b.EstimatedValue != nil {
			s.Gain = s.Gain.Add(b.EstimatedValue.Sub(*b.PurchasePrice))
		}
	}

	return s
}
