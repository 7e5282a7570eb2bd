package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/alcotheque/cellar/internal/lifecycle"
	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
)

type BottleRepository interface {
	Get(ctx context.Context, id string) (*model.Bottle, error)
	List(ctx context.Context, ownerID string) ([]*model.Bottle, error)
	Owners(ctx context.Context) ([]string, error)
	Create(ctx context.Context, b *model.Bottle) error
	ApplyUpdate(ctx context.Context, id string, upd *lifecycle.Update) error
	UpdateFields(ctx context.Context, id string, patch model.FieldPatch) error
	UpdateStatus(ctx context.Context, id string, status model.Status) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
	Delete(ctx context.Context, id string) error
}

// NewBottle is the creation input. Quantity seeds the in-stock counter;
// lifecycle state is built here, never supplied by the caller.
type NewBottle struct {
	OwnerID         string
	Name            string
	Type            model.SpiritType
	Quantity        int64
	Year            *int32
	LocationID      string
	Photo           string
	Notes           string
	Comments        string
	Rating          *int32
	Origin          model.Origin
	GiftFrom        string
	AcquisitionDate time.Time
	PurchasePrice   *decimal.Decimal
	EstimatedValue  *decimal.Decimal
}

// TransitionInput is what the UI shell submits for one lifecycle move.
type TransitionInput struct {
	To            model.Stage
	From          *model.Stage
	Quantity      int64
	GiftRecipient string
	Rating        *int32
	Comment       string
}

type service struct {
	repo          BottleRepository
	readDBTimeout time.Duration

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string

	// Committed-state mirror. Writes land in the store first, then here
	// (write-then-reflect), so a failed write never dirties the cache.
	mu    sync.RWMutex
	cache map[string]*model.Bottle
}

func NewBottleService(repo BottleRepository, readDBTimeout time.Duration) *service {
	return &service{
		repo:          repo,
		readDBTimeout: readDBTimeout,
		now:           time.Now,
		newID:         uuid.NewString,
		cache:         make(map[string]*model.Bottle),
	}
}

func (s *service) Create(ctx context.Context, in NewBottle) (*model.Bottle, error) {
	const op = "bottle.service.Create"
	log := logger.With(logger.String("owner_id", in.OwnerID))

	if err := validateNewBottle(in); err != nil {
		log.Error(ctx, "validation: new bottle", logger.ErrorF(err))
		return nil, err
	}

	now := s.now().UTC()
	acquisition := in.AcquisitionDate
	if acquisition.IsZero() {
		acquisition = now
	}

	quantities, status, history := lifecycle.Seed(in.Quantity, s.newID(), now)

	b := &model.Bottle{
		ID:              s.newID(),
		OwnerID:         in.OwnerID,
		Name:            strings.TrimSpace(in.Name),
		Type:            in.Type,
		Year:            in.Year,
		LocationID:      in.LocationID,
		Photo:           in.Photo,
		Notes:           in.Notes,
		Comments:        in.Comments,
		Rating:          in.Rating,
		Origin:          in.Origin,
		AcquisitionDate: acquisition,
		PurchasePrice:   in.PurchasePrice,
		EstimatedValue:  in.EstimatedValue,
		Quantities:      quantities,
		Status:          status,
		History:         history,
		CreatedAt:       lo.ToPtr(now),
		UpdatedAt:       lo.ToPtr(now),
	}
	if in.Origin == model.OriginGift && strings.TrimSpace(in.GiftFrom) != "" {
		b.GiftInfo = &model.GiftInfo{From: strings.TrimSpace(in.GiftFrom), Date: &acquisition}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		log.Error(ctx, "repository create bottle", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.remember(b)
	return b.Clone(), nil
}

func (s *service) Bottle(ctx context.Context, id string) (*model.Bottle, error) {
	const op = "bottle.service.Bottle"
	log := logger.With(logger.String("bottle_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty bottle id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	if b := s.cached(id); b != nil {
		return b, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrBottleNotFound) {
			log.Error(ctx, "repository get bottle", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.remember(b)
	return b.Clone(), nil
}

func (s *service) ListBottles(ctx context.Context, ownerID string, filter model.BottleFilter) ([]*model.Bottle, error) {
	const op = "bottle.service.ListBottles"
	log := logger.With(logger.String("owner_id", ownerID))

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	all, err := s.repo.List(ctx, ownerID)
	if err != nil {
		log.Error(ctx, "repository list bottles", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, b := range all {
		s.remember(b)
	}

	if filter.Empty() {
		return cloneAll(all), nil
	}

	out := make([]*model.Bottle, 0, len(all))
	for _, b := range all {
		if matchBottle(b, filter) {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// Transition runs one lifecycle move end to end: load the snapshot,
// compute the merged update, commit it as a single write, then reflect
// it into the cache. On any failure nothing is mutated anywhere.
func (s *service) Transition(ctx context.Context, id string, in TransitionInput) (*model.Bottle, error) {
	const op = "bottle.service.Transition"
	log := logger.With(
		logger.String("bottle_id", id),
		logger.String("to_stage", string(in.To)),
		logger.Int64("quantity", in.Quantity),
	)

	b, err := s.Bottle(ctx, id)
	if err != nil {
		return nil, err
	}

	upd, err := lifecycle.Execute(b, lifecycle.Request{
		To:            in.To,
		From:          in.From,
		Quantity:      in.Quantity,
		GiftRecipient: in.GiftRecipient,
		Rating:        in.Rating,
		Comment:       in.Comment,
		EntryID:       s.newID(),
		OccurredAt:    s.now().UTC(),
	})
	if err != nil {
		// Validation failures are user-facing; pass them through as-is.
		return nil, err
	}

	if err := s.repo.ApplyUpdate(ctx, id, upd); err != nil {
		log.Error(ctx, "repository apply lifecycle update", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b.Quantities = upd.Quantities
	b.Status = upd.Status
	b.History = upd.History
	b.UpdatedAt = lo.ToPtr(s.now().UTC())
	s.remember(b)

	log.Info(ctx, "lifecycle transition committed",
		logger.String("status", string(upd.Status)))
	return b.Clone(), nil
}

func (s *service) EditFields(ctx context.Context, id string, patch model.FieldPatch) (*model.Bottle, error) {
	const op = "bottle.service.EditFields"
	log := logger.With(logger.String("bottle_id", id))

	b, err := s.Bottle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validatePatch(patch); err != nil {
		log.Error(ctx, "validation: field patch", logger.ErrorF(err))
		return nil, err
	}

	if err := s.repo.UpdateFields(ctx, id, patch); err != nil {
		log.Error(ctx, "repository update fields", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	applyPatch(b, patch)
	b.UpdatedAt = lo.ToPtr(s.now().UTC())
	s.remember(b)
	return b.Clone(), nil
}

func (s *service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	const op = "bottle.service.ToggleFavorite"
	log := logger.With(logger.String("bottle_id", id))

	b, err := s.Bottle(ctx, id)
	if err != nil {
		return false, err
	}

	next := !b.Favorite
	if err := s.repo.SetFavorite(ctx, id, next); err != nil {
		log.Error(ctx, "repository set favorite", logger.ErrorF(err))
		return b.Favorite, fmt.Errorf("%s: %w", op, err)
	}

	b.Favorite = next
	s.remember(b)
	return next, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "bottle.service.Delete"
	log := logger.With(logger.String("bottle_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrBottleNotFound) {
			log.Error(ctx, "repository delete bottle", logger.ErrorF(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.forget(id)
	return nil
}

// History returns the display view of a bottle's log: deduplicated
// (legacy duplicates included) and newest first.
func (s *service) History(ctx context.Context, id string) ([]model.StatusHistoryEntry, error) {
	b, err := s.Bottle(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.SortedForDisplay(b.History), nil
}

func (s *service) cached(id string) *model.Bottle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[id].Clone()
}

func (s *service) remember(b *model.Bottle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[b.ID] = b.Clone()
}

func (s *service) forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, id)
}

func validateNewBottle(in NewBottle) error {
	switch {
	case strings.TrimSpace(in.OwnerID) == "":
		return errors.Join(model.ErrInvalidArgument, errors.New("owner id must be non-empty"))
	case strings.TrimSpace(in.Name) == "":
		return errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	case !in.Type.Valid():
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown spirit type %q", in.Type))
	case in.Quantity < 0:
		return errors.Join(model.ErrInvalidArgument, errors.New("quantity must not be negative"))
	case in.Origin != model.OriginPurchase && in.Origin != model.OriginGift:
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown origin %q", in.Origin))
	case in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5):
		return errors.Join(model.ErrInvalidArgument, errors.New("rating must be between 1 and 5"))
	}
	if err := validateMoney(in.PurchasePrice, "purchase price"); err != nil {
		return err
	}
	return validateMoney(in.EstimatedValue, "estimated value")
}

func validatePatch(p model.FieldPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	}
	if p.Type != nil && !p.Type.Valid() {
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown spirit type %q", *p.Type))
	}
	if p.Rating != nil && (*p.Rating < 1 || *p.Rating > 5) {
		return errors.Join(model.ErrInvalidArgument, errors.New("rating must be between 1 and 5"))
	}
	if err := validateMoney(p.PurchasePrice, "purchase price"); err != nil {
		return err
	}
	return validateMoney(p.EstimatedValue, "estimated value")
}

func validateMoney(d *decimal.Decimal, field string) error {
	if d != nil && d.IsNegative() {
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("%s must not be negative", field))
	}
	return nil
}

func applyPatch(b *model.Bottle, p model.FieldPatch) {
	if p.Name != nil {
		b.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Year != nil {
		b.Year = p.Year
	}
	if p.LocationID != nil {
		b.LocationID = *p.LocationID
	}
	if p.Photo != nil {
		b.Photo = *p.Photo
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.Comments != nil {
		b.Comments = *p.Comments
	}
	if p.Rating != nil {
		b.Rating = p.Rating
	}
	if p.PurchasePrice != nil {
		b.PurchasePrice = p.PurchasePrice
	}
	if p.EstimatedValue != nil {
		b.EstimatedValue = p.EstimatedValue
	}
}

func matchBottle(b *model.Bottle, f model.BottleFilter) bool {
	if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, b.Status) {
		return false
	}
	if len(f.Types) > 0 && !lo.Contains(f.Types, b.Type) {
		return false
	}
	if len(f.LocationIDs) > 0 && !lo.Contains(f.LocationIDs, b.LocationID) {
		return false
	}
	if f.FavoritesOnly && !b.Favorite {
		return false
	}
	if f.NameQuery != "" &&
		!strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.NameQuery)) {
		return false
	}
	return true
}

func cloneAll(bottles []*model.Bottle) []*model.Bottle {
	out := make([]*model.Bottle, 0, len(bottles))
	for _, b := range bottles {
		out = append(out, b.Clone())
	}
	return out
}
