package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
)

type LocationEntity struct {
	ID        string     `bson:"_id"`
	OwnerID   string     `bson:"owner_id"`
	Name      string     `bson:"name"`
	CreatedAt *time.Time `bson:"created_at,omitempty"`
}

type repository struct {
	coll *mongo.Collection
}

func NewLocationRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context, ownerID string) ([]*model.Location, error) {
	const op = "repository.location.List"

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Location, 0)
	for cur.Next(ctx) {
		var ent LocationEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, &model.Location{
			ID:        ent.ID,
			OwnerID:   ent.OwnerID,
			Name:      ent.Name,
			CreatedAt: ent.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return out, nil
}

func (r *repository) Create(ctx context.Context, loc *model.Location) error {
	const op = "repository.location.Create"

	if loc == nil || loc.ID == "" {
		return fmt.Errorf("%s: %w: location id is empty", op, model.ErrInvalidArgument)
	}
	if loc.CreatedAt == nil || loc.CreatedAt.IsZero() {
		loc.CreatedAt = lo.ToPtr(time.Now())
	}

	ent := LocationEntity{
		ID:        loc.ID,
		OwnerID:   loc.OwnerID,
		Name:      loc.Name,
		CreatedAt: loc.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return wrapErr(op, err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.location.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrLocationNotFound
	}

	return nil
}

func wrapErr(op string, err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistenceUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
