package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alcotheque/cellar/internal/lifecycle"
	"github.com/alcotheque/cellar/internal/model"
)

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("45.90")

	b := &model.Bottle{
		ID:              uuid.NewString(),
		OwnerID:         uuid.NewString(),
		Name:            "Caroni 1996",
		Type:            model.SpiritRum,
		Year:            lo.ToPtr(int32(1996)),
		LocationID:      "cellar-left",
		Origin:          model.OriginPurchase,
		AcquisitionDate: now,
		PurchasePrice:   &price,
		Quantities:      model.Quantities{InStock: 2, Opened: 1},
		Status:          model.StageInStock,
		History: []model.StatusHistoryEntry{
			{
				ID:        uuid.NewString(),
				Timestamp: now,
				NewStatus: model.StageInStock,
				Quantity:  3,
			},
		},
		CreatedAt: lo.ToPtr(now),
	}

	got := EntityToModel(EntityFromModel(b))
	require.NotNil(t, got)
	assert.Equal(t, b.Quantities, got.Quantities)
	assert.Equal(t, b.Status, got.Status)
	require.NotNil(t, got.PurchasePrice)
	assert.True(t, price.Equal(*got.PurchasePrice))
	require.Len(t, got.History, 1)
	assert.Nil(t, got.History[0].PreviousStatus)
}

func TestDecimalLegacyTolerance(t *testing.T) {
	t.Parallel()

	ent := &BottleEntity{
		ID:             "b1",
		PurchasePrice:  "not-a-number",
		EstimatedValue: "12.50",
	}

	got := EntityToModel(ent)
	assert.Nil(t, got.PurchasePrice)
	require.NotNil(t, got.EstimatedValue)
	assert.Equal(t, "12.5", got.EstimatedValue.String())
}

func TestBuildLifecycleSet(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	upd := &lifecycle.Update{
		Quantities: model.Quantities{InStock: 4, Opened: 2},
		Changed:    []model.Stage{model.StageInStock, model.StageOpened},
		Status:     model.StageInStock,
		History: []model.StatusHistoryEntry{
			{ID: "h1", Timestamp: now, NewStatus: model.StageInStock, Quantity: 6},
			{ID: "h2", Timestamp: now.Add(time.Hour), NewStatus: model.StageInStock, Quantity: 2},
		},
	}

	set := BuildLifecycleSet(upd, now)

	assert.Equal(t, model.StageInStock, set["status"])
	assert.EqualValues(t, 4, set["quantity"])
	assert.EqualValues(t, 2, set["quantity_opened"])

	// Untouched counters never appear in the partial update.
	assert.NotContains(t, set, "quantity_consumed")
	assert.NotContains(t, set, "quantity_gifted")

	history, ok := set["status_history"].([]HistoryEntity)
	require.True(t, ok)
	assert.Len(t, history, 2)

	// The payload must survive bson encoding as-is.
	_, err := bson.Marshal(set)
	require.NoError(t, err)
}

func TestBuildFieldSet(t *testing.T) {
	t.Parallel()

	now := time.Now()
	price := decimal.RequireFromString("120")
	set := BuildFieldSet(model.FieldPatch{
		Name:          lo.ToPtr("Lagavulin 16"),
		Rating:        lo.ToPtr(int32(5)),
		PurchasePrice: &price,
	}, now)

	assert.Equal(t, "Lagavulin 16", set["name"])
	assert.EqualValues(t, 5, set["rating"])
	assert.Equal(t, "120", set["purchase_price"])

	// Field edits can never leak into lifecycle state.
	assert.NotContains(t, set, "quantity")
	assert.NotContains(t, set, "status")
	assert.NotContains(t, set, "status_history")
}
