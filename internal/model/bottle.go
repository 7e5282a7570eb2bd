package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Origin string

const (
	OriginPurchase Origin = "purchase"
	OriginGift     Origin = "received_as_gift"
)

type Bottle struct {
	// Globally unique identifier of the bottle.
	ID string
	// Owner the bottle belongs to; ownership itself is managed outside the core.
	OwnerID string
	// Human-readable bottle name.
	Name string
	// Spirit or wine category.
	Type SpiritType
	// Optional vintage year.
	Year *int32
	// Reference to a storage Location by id; plain string, no cascade.
	LocationID string
	// Optional photo URL.
	Photo string
	Notes string
	// Free-text tasting comments.
	Comments string
	// 1–5 star rating.
	Rating *int32
	Favorite bool
	// How the bottle was acquired.
	Origin Origin
	// Gift sender/recipient details, when relevant.
	GiftInfo *GiftInfo
	// Set once at creation, immutable afterwards.
	AcquisitionDate time.Time
	// Optional purchase price, non-negative.
	PurchasePrice *decimal.Decimal
	// Optional estimated current value, non-negative.
	EstimatedValue *decimal.Decimal
	// Per-stage unit counters.
	Quantities Quantities
	// Canonical status derived from Quantities. Never set directly;
	// every mutation path recomputes it through the lifecycle package.
	Status Status
	// Append-only lifecycle log, insertion order.
	History []StatusHistoryEntry
	// Timestamp when the bottle was created.
	CreatedAt *time.Time
	// Timestamp when the bottle was last updated.
	UpdatedAt *time.Time
}

// Clone returns a deep copy; the service hands copies to callers so the
// cached snapshot stays private.
func (b *Bottle) Clone() *Bottle {
	if b == nil {
		return nil
	}
	out := *b
	if b.Year != nil {
		y := *b.Year
		out.Year = &y
	}
	if b.Rating != nil {
		r := *b.Rating
		out.Rating = &r
	}
	if b.GiftInfo != nil {
		gi := *b.GiftInfo
		out.GiftInfo = &gi
	}
	if b.PurchasePrice != nil {
		p := *b.PurchasePrice
		out.PurchasePrice = &p
	}
	if b.EstimatedValue != nil {
		v := *b.EstimatedValue
		out.EstimatedValue = &v
	}
	if b.History != nil {
		out.History = append([]StatusHistoryEntry(nil), b.History...)
	}
	return &out
}

// BottleFilter narrows a listing. Empty fields match everything.
type BottleFilter struct {
	Statuses      []Status
	Types         []SpiritType
	LocationIDs   []string
	FavoritesOnly bool
	// Case-insensitive substring match on the name.
	NameQuery string
}

func (f BottleFilter) Empty() bool {
	return len(f.Statuses) == 0 &&
		len(f.Types) == 0 &&
		len(f.LocationIDs) == 0 &&
		!f.FavoritesOnly &&
		f.NameQuery == ""
}

// Location is a storage place bottles reference by id.
type Location struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt *time.Time
}

// FieldPatch carries direct field edits that never touch counters,
// status or history. Nil pointers leave the field unchanged.
type FieldPatch struct {
	Name           *string
	Type           *SpiritType
	Year           *int32
	LocationID     *string
	Photo          *string
	Notes          *string
	Comments       *string
	Rating         *int32
	PurchasePrice  *decimal.Decimal
	EstimatedValue *decimal.Decimal
}

func (p FieldPatch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Year == nil &&
		p.LocationID == nil && p.Photo == nil && p.Notes == nil &&
		p.Comments == nil && p.Rating == nil &&
		p.PurchasePrice == nil && p.EstimatedValue == nil
}
