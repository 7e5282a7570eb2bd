package stats

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alcotheque/cellar/internal/model"
)

func dec(s string) *decimal.Decimal {
	return lo.ToPtr(decimal.RequireFromString(s))
}

func TestCompute(t *testing.T) {
	t.Parallel()

	bottles := []*model.Bottle{
		{
			Type:           model.SpiritWhisky,
			LocationID:     "shelf-a",
			Favorite:       true,
			Quantities:     model.Quantities{InStock: 4, Consumed: 2},
			PurchasePrice:  dec("60"),
			EstimatedValue: dec("85"),
		},
		{
			Type:          model.SpiritWhisky,
			LocationID:    "shelf-a",
			Quantities:    model.Quantities{Opened: 1},
			PurchasePrice: dec("30"),
		},
		{
			Type:       model.SpiritRum,
			Quantities: model.Quantities{Gifted: 1},
		},
		nil,
	}

	s := Compute(bottles)

	assert.Equal(t, 4, s.Bottles)
	assert.EqualValues(t, 4, s.UnitsByStage[model.StageInStock])
	assert.EqualValues(t, 1, s.UnitsByStage[model.StageOpened])
	assert.EqualValues(t, 2, s.UnitsByStage[model.StageConsumed])
	assert.EqualValues(t, 1, s.UnitsByStage[model.StageGifted])
	assert.EqualValues(t, 8, s.TotalUnits)

	assert.Equal(t, 2, s.ByType[model.SpiritWhisky])
	assert.Equal(t, 1, s.ByType[model.SpiritRum])
	assert.Equal(t, 2, s.ByLocation["shelf-a"])
	assert.Equal(t, 1, s.Favorites)

	assert.True(t, s.PurchaseTotal.Equal(decimal.RequireFromString("90")))
	assert.True(t, s.EstimatedTotal.Equal(decimal.RequireFromString("85")))
	// Only the bottle carrying both prices contributes to the gain.
	assert.True(t, s.Gain.Equal(decimal.RequireFromString("25")))
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	s := Compute(nil)
	assert.Zero(t, s.Bottles)
	assert.Zero(t, s.TotalUnits)
	assert.True(t, s.PurchaseTotal.IsZero())
}
