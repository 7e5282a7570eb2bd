package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/alcotheque/cellar/internal/closer"
	"github.com/alcotheque/cellar/internal/config"
	bottlerepo "github.com/alcotheque/cellar/internal/repository/bottle"
	locationrepo "github.com/alcotheque/cellar/internal/repository/location"
	bottlesvc "github.com/alcotheque/cellar/internal/service/bottle"
	locationsvc "github.com/alcotheque/cellar/internal/service/location"
	thttp "github.com/alcotheque/cellar/internal/transport/http"
)

// BottleService is everything the shell needs from the bottle domain:
// the HTTP surface plus the periodic repair pass.
type BottleService interface {
	thttp.BottleService
	Sweep(ctx context.Context, ownerID string) (int, error)
	SweepAll(ctx context.Context) (int, error)
}

type di struct {
	mongo         *mongo.Client
	bottlesColl   *mongo.Collection
	locationsColl *mongo.Collection

	bottleRepository   bottlesvc.BottleRepository
	locationRepository locationsvc.LocationRepository

	bottleService   BottleService
	locationService thttp.LocationService

	handler *thttp.Handler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) BottlesCollection(ctx context.Context) *mongo.Collection {
	if d.bottlesColl == nil {
		d.bottlesColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.BottlesCollection())

		if err := ensureBottleIndexes(ctx, d.bottlesColl); err != nil {
			panic(fmt.Sprintf("failed to ensure bottle indexes: %v\n", err))
		}
	}

	return d.bottlesColl
}

func (d *di) LocationsCollection(ctx context.Context) *mongo.Collection {
	if d.locationsColl == nil {
		d.locationsColl = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.LocationsCollection())

		if err := ensureLocationIndexes(ctx, d.locationsColl); err != nil {
			panic(fmt.Sprintf("failed to ensure location indexes: %v\n", err))
		}
	}

	return d.locationsColl
}

func (d *di) BottleRepository(ctx context.Context) bottlesvc.BottleRepository {
	if d.bottleRepository == nil {
		d.bottleRepository = bottlerepo.NewBottleRepository(d.BottlesCollection(ctx))
	}

	return d.bottleRepository
}

func (d *di) LocationRepository(ctx context.Context) locationsvc.LocationRepository {
	if d.locationRepository == nil {
		d.locationRepository = locationrepo.NewLocationRepository(d.LocationsCollection(ctx))
	}

	return d.locationRepository
}

func (d *di) BottleService(ctx context.Context) BottleService {
	if d.bottleService == nil {
		d.bottleService = bottlesvc.NewBottleService(
			d.BottleRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.bottleService
}

func (d *di) LocationService(ctx context.Context) thttp.LocationService {
	if d.locationService == nil {
		d.locationService = locationsvc.NewLocationService(
			d.LocationRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.locationService
}

func (d *di) Handler(ctx context.Context) *thttp.Handler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(d.BottleService(ctx), d.LocationService(ctx))
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = thttp.NewRouter(d.Handler(ctx))
	}

	return d.router
}

func ensureBottleIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "location_id", Value: 1}}},
	}, options.CreateIndexes())

	return err
}

func ensureLocationIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
