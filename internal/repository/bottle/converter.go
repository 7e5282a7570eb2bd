package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alcotheque/cellar/internal/lifecycle"
	"github.com/alcotheque/cellar/internal/model"
)

func EntityToModel(e *BottleEntity) *model.Bottle {
	if e == nil {
		return nil
	}

	out := &model.Bottle{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Name:            e.Name,
		Type:            e.Type,
		Year:            e.Year,
		LocationID:      e.LocationID,
		Photo:           e.Photo,
		Notes:           e.Notes,
		Comments:        e.Comments,
		Rating:          e.Rating,
		Favorite:        e.Favorite,
		Origin:          e.Origin,
		GiftInfo:        giftToModel(e.GiftInfo),
		AcquisitionDate: e.AcquisitionDate,
		PurchasePrice:   decimalToModel(e.PurchasePrice),
		EstimatedValue:  decimalToModel(e.EstimatedValue),
		Quantities: model.Quantities{
			InStock:  e.Quantity,
			Opened:   e.QuantityOpened,
			Consumed: e.QuantityConsumed,
			Gifted:   e.QuantityGifted,
		},
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	for _, h := range e.History {
		out.History = append(out.History, historyToModel(h))
	}

	return out
}

func EntityFromModel(b *model.Bottle) *BottleEntity {
	if b == nil {
		return nil
	}

	out := &BottleEntity{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Name:             b.Name,
		Type:             b.Type,
		Year:             b.Year,
		LocationID:       b.LocationID,
		Photo:            b.Photo,
		Notes:            b.Notes,
		Comments:         b.Comments,
		Rating:           b.Rating,
		Favorite:         b.Favorite,
		Origin:           b.Origin,
		GiftInfo:         giftFromModel(b.GiftInfo),
		AcquisitionDate:  b.AcquisitionDate,
		PurchasePrice:    decimalFromModel(b.PurchasePrice),
		EstimatedValue:   decimalFromModel(b.EstimatedValue),
		Quantity:         b.Quantities.InStock,
		QuantityOpened:   b.Quantities.Opened,
		QuantityConsumed: b.Quantities.Consumed,
		QuantityGifted:   b.Quantities.Gifted,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	for _, h := range b.History {
		out.History = append(out.History, historyFromModel(h))
	}

	return out
}

// counterField maps a stage to its bson counter field.
func counterField(s model.Stage) string {
	switch s {
	case model.StageInStock:
		return "quantity"
	case model.StageOpened:
		return "quantity_opened"
	case model.StageConsumed:
		return "quantity_consumed"
	case model.StageGifted:
		return "quantity_gifted"
	}
	return ""
}

// BuildLifecycleSet turns a coordinator update into the partial $set
// document for one transition: only the counters that changed, the new
// status and the grown history. One logical write per transition.
func BuildLifecycleSet(upd *lifecycle.Update, now time.Time) bson.M {
	set := bson.M{
		"status":     upd.Status,
		"updated_at": now,
	}

	for _, stage := range upd.Changed {
		if f := counterField(stage); f != "" {
			set[f] = upd.Quantities.At(stage)
		}
	}

	history := make([]HistoryEntity, 0, len(upd.History))
	for _, h := range upd.History {
		history = append(history, historyFromModel(h))
	}
	set["status_history"] = history

	return set
}

// BuildFieldSet turns a field patch into a $set document. Counters,
// status and history are never present here.
func BuildFieldSet(p model.FieldPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.Year != nil {
		set["year"] = *p.Year
	}
	if p.LocationID != nil {
		set["location_id"] = *p.LocationID
	}
	if p.Photo != nil {
		set["photo"] = *p.Photo
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.Comments != nil {
		set["comments"] = *p.Comments
	}
	if p.Rating != nil {
		set["rating"] = *p.Rating
	}
	if p.PurchasePrice != nil {
		set["purchase_price"] = p.PurchasePrice.String()
	}
	if p.EstimatedValue != nil {
		set["estimated_value"] = p.EstimatedValue.String()
	}

	return set
}

func historyToModel(h HistoryEntity) model.StatusHistoryEntry {
	return model.StatusHistoryEntry{
		ID:             h.ID,
		Timestamp:      h.Timestamp,
		NewStatus:      h.NewStatus,
		PreviousStatus: h.PreviousStatus,
		Quantity:       h.Quantity,
		GiftInfo:       giftToModel(h.GiftInfo),
		Rating:         h.Rating,
		Comment:        h.Comment,
	}
}

func historyFromModel(h model.StatusHistoryEntry) HistoryEntity {
	return HistoryEntity{
		ID:             h.ID,
		Timestamp:      h.Timestamp,
		NewStatus:      h.NewStatus,
		PreviousStatus: h.PreviousStatus,
		Quantity:       h.Quantity,
		GiftInfo:       giftFromModel(h.GiftInfo),
		Rating:         h.Rating,
		Comment:        h.Comment,
	}
}

func giftToModel(g *GiftInfoEntity) *model.GiftInfo {
	if g == nil {
		return nil
	}
	return &model.GiftInfo{From: g.From, To: g.To, Date: g.Date}
}

func giftFromModel(g *model.GiftInfo) *GiftInfoEntity {
	if g == nil {
		return nil
	}
	return &GiftInfoEntity{From: g.From, To: g.To, Date: g.Date}
}

func decimalToModel(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// Legacy documents may hold garbage; treat it as unset rather
		// than failing the whole read.
		return nil
	}
	return &d
}

func decimalFromModel(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
