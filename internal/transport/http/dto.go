package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alcotheque/cellar/internal/model"
	"github.com/alcotheque/cellar/internal/recognition"
	bottlesvc "github.com/alcotheque/cellar/internal/service/bottle"
)

type suggestionPayload struct {
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	Year           *int32           `json:"year,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
}

func (s suggestionPayload) toSuggestion() recognition.Suggestion {
	return recognition.Suggestion{
		Name:           s.Name,
		Type:           model.SpiritType(s.Type),
		Year:           s.Year,
		EstimatedValue: s.EstimatedValue,
	}
}

type createBottleRequest struct {
	// Suggestion is an optional label-recognition pre-fill; it only
	// fills fields the caller left empty.
	Suggestion *suggestionPayload `json:"suggestion,omitempty"`

	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Quantity        int64            `json:"quantity"`
	Year            *int32           `json:"year,omitempty"`
	LocationID      string           `json:"location_id,omitempty"`
	Photo           string           `json:"photo,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Comments        string           `json:"comments,omitempty"`
	Rating          *int32           `json:"rating,omitempty"`
	Origin          string           `json:"origin,omitempty"`
	GiftFrom        string           `json:"gift_from,omitempty"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price,omitempty"`
	EstimatedValue  *decimal.Decimal `json:"estimated_value,omitempty"`
}

func (r createBottleRequest) toInput(ownerID string) bottlesvc.NewBottle {
	in := bottlesvc.NewBottle{
		OwnerID:        ownerID,
		Name:           r.Name,
		Type:           model.SpiritType(r.Type),
		Quantity:       r.Quantity,
		Year:           r.Year,
		LocationID:     r.LocationID,
		Photo:          r.Photo,
		Notes:          r.Notes,
		Comments:       r.Comments,
		Rating:         r.Rating,
		Origin:         model.Origin(r.Origin),
		GiftFrom:       r.GiftFrom,
		PurchasePrice:  r.PurchasePrice,
		EstimatedValue: r.EstimatedValue,
	}
	if in.Origin == "" {
		in.Origin = model.OriginPurchase
	}
	if r.AcquisitionDate != nil {
		in.AcquisitionDate = *r.AcquisitionDate
	}
	return in
}

type patchBottleRequest struct {
	Name           *string          `json:"name,omitempty"`
	Type           *string          `json:"type,omitempty"`
	Year           *int32           `json:"year,omitempty"`
	LocationID     *string          `json:"location_id,omitempty"`
	Photo          *string          `json:"photo,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Comments       *string          `json:"comments,omitempty"`
	Rating         *int32           `json:"rating,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
}

func (r patchBottleRequest) toPatch() model.FieldPatch {
	p := model.FieldPatch{
		Name:           r.Name,
		Year:           r.Year,
		LocationID:     r.LocationID,
		Photo:          r.Photo,
		Notes:          r.Notes,
		Comments:       r.Comments,
		Rating:         r.Rating,
		PurchasePrice:  r.PurchasePrice,
		EstimatedValue: r.EstimatedValue,
	}
	if r.Type != nil {
		t := model.SpiritType(*r.Type)
		p.Type = &t
	}
	return p
}

type transitionRequest struct {
	To            string `json:"to"`
	From          string `json:"from,omitempty"`
	Quantity      int64  `json:"quantity"`
	GiftRecipient string `json:"gift_recipient,omitempty"`
	Rating        *int32 `json:"rating,omitempty"`
	Comment       string `json:"comment,omitempty"`
}

func (r transitionRequest) toInput() bottlesvc.TransitionInput {
	in := bottlesvc.TransitionInput{
		To:            model.Stage(r.To),
		Quantity:      r.Quantity,
		GiftRecipient: r.GiftRecipient,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
	if r.From != "" {
		from := model.Stage(r.From)
		in.From = &from
	}
	return in
}

type quantitiesPayload struct {
	InStock  int64 `json:"in_stock"`
	Opened   int64 `json:"opened"`
	Consumed int64 `json:"consumed"`
	Gifted   int64 `json:"gifted"`
}

type giftInfoPayload struct {
	From string     `json:"from,omitempty"`
	To   string     `json:"to,omitempty"`
	Date *time.Time `json:"date,omitempty"`
}

type historyEntryResponse struct {
	ID             string           `json:"id"`
	Timestamp      time.Time        `json:"timestamp"`
	NewStatus      string           `json:"new_status"`
	PreviousStatus *string          `json:"previous_status,omitempty"`
	Quantity       int64            `json:"quantity"`
	GiftInfo       *giftInfoPayload `json:"gift_info,omitempty"`
	Rating         *int32           `json:"rating,omitempty"`
	Comment        string           `json:"comment,omitempty"`
}

type bottleResponse struct {
	ID              string                 `json:"id"`
	OwnerID         string                 `json:"owner_id"`
	Name            string                 `json:"name"`
	Type            string                 `json:"type"`
	Year            *int32                 `json:"year,omitempty"`
	LocationID      string                 `json:"location_id,omitempty"`
	Photo           string                 `json:"photo,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Comments        string                 `json:"comments,omitempty"`
	Rating          *int32                 `json:"rating,omitempty"`
	Favorite        bool                   `json:"favorite"`
	Origin          string                 `json:"origin"`
	GiftInfo        *giftInfoPayload       `json:"gift_info,omitempty"`
	AcquisitionDate time.Time              `json:"acquisition_date"`
	PurchasePrice   *decimal.Decimal       `json:"purchase_price,omitempty"`
	EstimatedValue  *decimal.Decimal       `json:"estimated_value,omitempty"`
	Quantities      quantitiesPayload      `json:"quantities"`
	Status          string                 `json:"status"`
	History         []historyEntryResponse `json:"history"`
	CreatedAt       *time.Time             `json:"created_at,omitempty"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
}

func bottleFromModel(b *model.Bottle) bottleResponse {
	return bottleResponse{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		Type:            string(b.Type),
		Year:            b.Year,
		LocationID:      b.LocationID,
		Photo:           b.Photo,
		Notes:           b.Notes,
		Comments:        b.Comments,
		Rating:          b.Rating,
		Favorite:        b.Favorite,
		Origin:          string(b.Origin),
		GiftInfo:        giftInfoFromModel(b.GiftInfo),
		AcquisitionDate: b.AcquisitionDate,
		PurchasePrice:   b.PurchasePrice,
		EstimatedValue:  b.EstimatedValue,
		Quantities: quantitiesPayload{
			InStock:  b.Quantities.InStock,
			Opened:   b.Quantities.Opened,
			Consumed: b.Quantities.Consumed,
			Gifted:   b.Quantities.Gifted,
		},
		Status:    string(b.Status),
		History:   historyFromModel(b.History),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func bottlesFromModel(bottles []*model.Bottle) []bottleResponse {
	out := make([]bottleResponse, 0, len(bottles))
	for _, b := range bottles {
		out = append(out, bottleFromModel(b))
	}
	return out
}

func historyFromModel(entries []model.StatusHistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		r := historyEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			NewStatus: string(e.NewStatus),
			Quantity:  e.Quantity,
			GiftInfo:  giftInfoFromModel(e.GiftInfo),
			Rating:    e.Rating,
			Comment:   e.Comment,
		}
		if e.PreviousStatus != nil {
			prev := string(*e.PreviousStatus)
			r.PreviousStatus = &prev
		}
		out = append(out, r)
	}
	return out
}

func giftInfoFromModel(g *model.GiftInfo) *giftInfoPayload {
	if g == nil {
		return nil
	}
	return &giftInfoPayload{From: g.From, To: g.To, Date: g.Date}
}

type createLocationRequest struct {
	Name string `json:"name"`
}

type locationResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func locationFromModel(l *model.Location) locationResponse {
	return locationResponse{
		ID:        l.ID,
		OwnerID:   l.OwnerID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

type statsResponse struct {
	Bottles        int              `json:"bottles"`
	UnitsByStage   map[string]int64 `json:"units_by_stage"`
	TotalUnits     int64            `json:"total_units"`
	ByType         map[string]int   `json:"by_type"`
	ByLocation     map[string]int   `json:"by_location"`
	Favorites      int              `json:"favorites"`
	PurchaseTotal  decimal.Decimal  `json:"purchase_total"`
	EstimatedTotal decimal.Decimal  `json:"estimated_total"`
	Gain           decimal.Decimal  `json:"gain"`
}

// filterFromQuery maps list query parameters onto the domain filter.
// Repeated values arrive comma-separated, "?status=opened,consumed".
func filterFromQuery(r *http.Request) model.BottleFilter {
	q := r.URL.Query()

	var f model.BottleFilter
	for _, s := range splitParam(q.Get("status")) {
		f.Statuses = append(f.Statuses, model.Stage(s))
	}
	for _, t := range splitParam(q.Get("type")) {
		f.Types = append(f.Types, model.SpiritType(t))
	}
	f.LocationIDs = splitParam(q.Get("location_id"))
	f.FavoritesOnly = q.Get("favorites") == "true"
	f.NameQuery = strings.TrimSpace(q.Get("q"))
	return f
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
