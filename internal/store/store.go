package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the resource repositories.
const (
	CollectionPortfolio = "portfolio"
	CollectionSettings  = "settings"
	CollectionReviews   = "reviews"
	CollectionSkills    = "skills"
)

// Store owns the Mongo client and hands out collection handles.
// There is no caching layer in front of it: every repository call
// round-trips to the database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

type Options struct {
	URI       string
	Name      string
	ConnectTO time.Duration
	PingTO    time.Duration
}

func Open(ctx context.Context, opt Options) (*Store, error) {
	if opt.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	// Fail fast
	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &Store{client: client, db: client.Database(opt.Name)}, nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) {
	if s != nil && s.client != nil {
		_ = s.client.Disconnect(ctx)
	}
}
