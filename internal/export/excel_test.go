package export

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcotheque/cellar/internal/model"
)

func TestWorkbook(t *testing.T) {
	t.Parallel()

	acquired := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	bottles := []*model.Bottle{
		{
			Name:            "Lagavulin 16",
			Type:            model.SpiritWhisky,
			Year:            lo.ToPtr(int32(2007)),
			LocationID:      "loc-1",
			Status:          model.StageInStock,
			Origin:          model.OriginPurchase,
			AcquisitionDate: acquired,
			PurchasePrice:   lo.ToPtr(decimal.RequireFromString("89.90")),
			EstimatedValue:  lo.ToPtr(decimal.RequireFromString("110")),
			Rating:          lo.ToPtr(int32(5)),
			Comments:        "peaty",
			Favorite:        true,
		},
		nil,
		{
			Name:     "Diplomatico",
			Type:     model.SpiritRum,
			Status:   model.StageGifted,
			Origin:   model.OriginGift,
			GiftInfo: &model.GiftInfo{From: "Marie"},
		},
	}

	f, err := Workbook(bottles, map[string]string{"loc-1": "Living room"})
	require.NoError(t, err)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "Lagavulin 16", rows[1][0])
	assert.Equal(t, "Whisky", rows[1][1])
	assert.Equal(t, "2007", rows[1][2])
	assert.Equal(t, "In stock", rows[1][3])
	assert.Equal(t, "Living room", rows[1][4])
	assert.Equal(t, "89.9", rows[1][5])
	assert.Equal(t, "2023-06-15", rows[1][7])
	assert.Equal(t, "Purchase", rows[1][8])
	assert.Equal(t, "Yes", rows[1][12])

	// Nil entries leave an empty row, indexes stay stable.
	assert.Empty(t, rows[2])

	assert.Equal(t, "Diplomatico", rows[3][0])
	assert.Equal(t, "Gifted", rows[3][3])
	assert.Equal(t, "Received as gift", rows[3][8])
	assert.Equal(t, "Marie", rows[3][9])
	assert.Equal(t, "No", rows[3][12])
}

func TestTypeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Whisky", TypeLabel(model.SpiritWhisky))
	assert.Equal(t, "Sparkling wine", TypeLabel(model.SpiritSparklingWine))
	assert.Equal(t, "", TypeLabel(model.SpiritType("")))
}

func TestFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "cellar_export_2024-03-09.xlsx", FileName(at))
}
