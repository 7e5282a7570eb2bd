package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
)

type LocationRepository interface {
	List(ctx context.Context, ownerID string) ([]*model.Location, error)
	Create(ctx context.Context, loc *model.Location) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          LocationRepository
	readDBTimeout time.Duration

	now   func() time.Time
	newID func() string
}

func NewLocationService(repo LocationRepository, readDBTimeout time.Duration) *service {
	return &service{
		repo:          repo,
		readDBTimeout: readDBTimeout,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

func (s *service) List(ctx context.Context, ownerID string) ([]*model.Location, error) {
	const op = "location.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, ownerID)
	if err != nil {
		logger.Error(ctx, "repository list locations", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, ownerID, name string) (*model.Location, error) {
	const op = "location.service.Create"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	}

	loc := &model.Location{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: lo.ToPtr(s.now().UTC()),
	}
	if err := s.repo.Create(ctx, loc); err != nil {
		logger.Error(ctx, "repository create location", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return loc, nil
}

// Delete removes a location; bottles referencing it keep their string
// reference and simply point at nothing, matching the store's behavior.
func (s *service) Delete(ctx context.Context, id string) error {
	const op = "location.service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrLocationNotFound) {
			logger.Error(ctx, "repository delete location", logger.ErrorF(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
