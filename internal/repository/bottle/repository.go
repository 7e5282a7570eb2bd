package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alcotheque/cellar/internal/lifecycle"
	"github.com/alcotheque/cellar/internal/logger"
	"github.com/alcotheque/cellar/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewBottleRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Get(ctx context.Context, id string) (*model.Bottle, error) {
	const op = "repository.bottle.Get"

	var ent BottleEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBottleNotFound
		}
		return nil, wrapErr(op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, ownerID string) ([]*model.Bottle, error) {
	const op = "repository.bottle.List"

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

	out := make([]*model.Bottle, 0)
	for cur.Next(ctx) {
		var ent BottleEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr(op, err)
	}

	return out, nil
}

// Owners lists every distinct owner id present in the collection. The
// periodic sweep iterates this set.
func (r *repository) Owners(ctx context.Context) ([]string, error) {
	const op = "repository.bottle.Owners"

	var owners []string
	if err := r.coll.Distinct(ctx, "owner_id", bson.M{}).Decode(&owners); err != nil {
		return nil, wrapErr(op, err)
	}

	return owners, nil
}

func (r *repository) Create(ctx context.Context, b *model.Bottle) error {
	const op = "repository.bottle.Create"

	if b == nil || b.ID == "" {
		return fmt.Errorf("%s: %w: bottle id is empty", op, model.ErrInvalidArgument)
	}
	if b.CreatedAt == nil || b.CreatedAt.IsZero() {
		b.CreatedAt = lo.ToPtr(time.Now())
	}

	ent := EntityFromModel(b)
	if err := validatePayload(ent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.coll.InsertOne(ctx, ent); err != nil {
		return wrapErr(op, err)
	}

	return nil
}

// ApplyUpdate commits one lifecycle transition as a single partial $set:
// changed counters, status and history together, nothing else.
func (r *repository) ApplyUpdate(ctx context.Context, id string, upd *lifecycle.Update) error {
	const op = "repository.bottle.ApplyUpdate"

	if upd == nil {
		return fmt.Errorf("%s: %w: nil update", op, model.ErrInvalidArgument)
	}

	return r.set(ctx, op, id, BuildLifecycleSet(upd, time.Now()))
}

// UpdateFields commits direct field edits. Counters, status and history
// are unreachable from a FieldPatch by construction.
func (r *repository) UpdateFields(ctx context.Context, id string, patch model.FieldPatch) error {
	const op = "repository.bottle.UpdateFields"

	if patch.Empty() {
		return nil
	}

	return r.set(ctx, op, id, BuildFieldSet(patch, time.Now()))
}

// UpdateStatus is the sweep's status-only repair write.
func (r *repository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	const op = "repository.bottle.UpdateStatus"

	return r.set(ctx, op, id, bson.M{"status": status, "updated_at": time.Now()})
}

func (r *repository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	const op = "repository.bottle.SetFavorite"

	return r.set(ctx, op, id, bson.M{"favorite": favorite, "updated_at": time.Now()})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.bottle.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrBottleNotFound
	}

	return nil
}

func (r *repository) set(ctx context.Context, op, id string, set bson.M) error {
	if err := validatePayload(set); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapErr(op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrBottleNotFound
	}

	return nil
}

// validatePayload round-trips the payload through bson before the write,
// so unsupported structures fail locally as ErrSerialization instead of
// half-landing in the store.
func validatePayload(doc any) error {
	if _, err := bson.Marshal(doc); err != nil {
		return fmt.Errorf("%w: %w", model.ErrSerialization, err)
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
