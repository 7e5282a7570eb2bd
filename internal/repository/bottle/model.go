package repository

import (
	"time"

	"github.com/alcotheque/cellar/internal/model"
)

type BottleEntity struct {
	ID              string               `bson:"_id"`
	OwnerID         string               `bson:"owner_id"`
	Name            string               `bson:"name"`
	Type            model.SpiritType     `bson:"type"`
	Year            *int32               `bson:"year,omitempty"`
	LocationID      string               `bson:"location_id,omitempty"`
	Photo           string               `bson:"photo,omitempty"`
	Notes           string               `bson:"notes,omitempty"`
	Comments        string               `bson:"comments,omitempty"`
	Rating          *int32               `bson:"rating,omitempty"`
	Favorite        bool                 `bson:"favorite"`
	Origin          model.Origin         `bson:"origin"`
	GiftInfo        *GiftInfoEntity      `bson:"gift_info,omitempty"`
	AcquisitionDate time.Time            `bson:"acquisition_date"`
	// Money is persisted as decimal strings to avoid float drift.
	PurchasePrice    string          `bson:"purchase_price,omitempty"`
	EstimatedValue   string          `bson:"estimated_value,omitempty"`
	Quantity         int64           `bson:"quantity"`
	QuantityOpened   int64           `bson:"quantity_opened"`
	QuantityConsumed int64           `bson:"quantity_consumed"`
	QuantityGifted   int64           `bson:"quantity_gifted"`
	Status           model.Status    `bson:"status"`
	History          []HistoryEntity `bson:"status_history,omitempty"`
	CreatedAt        *time.Time      `bson:"created_at,omitempty"`
	UpdatedAt        *time.Time      `bson:"updated_at,omitempty"`
}

type HistoryEntity struct {
	ID             string          `bson:"id"`
	Timestamp      time.Time       `bson:"ts"`
	NewStatus      model.Status    `bson:"new_status"`
	PreviousStatus *model.Status   `bson:"previous_status,omitempty"`
	Quantity       int64           `bson:"quantity"`
	GiftInfo       *GiftInfoEntity `bson:"gift_info,omitempty"`
	Rating         *int32          `bson:"rating,omitempty"`
	Comment        string          `bson:"comment,omitempty"`
}

type GiftInfoEntity struct {
	From string     `bson:"from,omitempty"`
	To   string     `bson:"to,omitempty"`
	Date *time.Time `bson:"date,omitempty"`
}
