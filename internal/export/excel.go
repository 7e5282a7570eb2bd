// Package export renders a cellar snapshot as an Excel workbook.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alcotheque/cellar/internal/model"
)

const sheetName = "Inventory"

var headers = []string{
	"Name",
	"Type",
	"Year",
	"Status",
	"Location",
	"Purchase price",
	"Estimated value",
	"Acquisition date",
	"Origin",
	"Gift from",
	"Rating",
	"Comments",
	"Favorite",
}

var columnWidths = []float64{30, 15, 8, 12, 15, 15, 15, 15, 14, 20, 8, 40, 8}

var statusLabels = map[model.Stage]string{
	model.StageInStock:  "In stock",
	model.StageOpened:   "Opened",
	model.StageConsumed: "Finished",
	model.StageGifted:   "Gifted",
}

// Workbook builds the spreadsheet for one owner's bottles. locations
// maps location IDs to their display names; unknown IDs fall back to
// the raw ID so rows never lose information.
func Workbook(bottles []*model.Bottle, locations map[string]string) (*excelize.File, error) {
	const op = "export.Workbook"

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	for i, b := range bottles {
		if b == nil {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		row := flatten(b, locations)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return f, nil
}

func flatten(b *model.Bottle, locations map[string]string) []any {
	var year any
	if b.Year != nil {
		year = *b.Year
	}

	var purchase, estimated any
	if b.PurchasePrice != nil {
		purchase = b.PurchasePrice.String()
	}
	if b.EstimatedValue != nil {
		estimated = b.EstimatedValue.String()
	}

	var acquired string
	if !b.AcquisitionDate.IsZero() {
		acquired = b.AcquisitionDate.Format("2006-01-02")
	}

	origin := "Purchase"
	var giftFrom string
	if b.Origin == model.OriginGift {
		origin = "Received as gift"
		if b.GiftInfo != nil {
			giftFrom = b.GiftInfo.From
		}
	}

	var rating any
	if b.Rating != nil {
		rating = *b.Rating
	}

	favorite := "No"
	if b.Favorite {
		favorite = "Yes"
	}

	return []any{
		b.Name,
		TypeLabel(b.Type),
		year,
		StatusLabel(b.Status),
		locationName(b.LocationID, locations),
		purchase,
		estimated,
		acquired,
		origin,
		giftFrom,
		rating,
		b.Comments,
		favorite,
	}
}

// FileName returns the download name for an export generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("cellar_export_%s.xlsx", t.Format("2006-01-02"))
}

// StatusLabel turns a lifecycle stage into its display form.
func StatusLabel(s model.Stage) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// TypeLabel humanizes a spirit slug, "single_malt" becomes "Single malt".
func TypeLabel(t model.SpiritType) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func locationName(id string, locations map[string]string) string {
	if id == "" {
		return ""
	}
	if name, ok := locations[id]; ok {
		return name
	}
	return id
}
