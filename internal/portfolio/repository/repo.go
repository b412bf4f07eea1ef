package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bmgportfolio/backend/internal/portfolio/domain"
	"github.com/bmgportfolio/backend/internal/store"
)

// typeTag keys the singleton document inside its collection.
const typeTag = "data"

// Repo persists the portfolio document as a single record keyed by a
// fixed type tag. Every edit is a load/modify/save of the whole
// document; the last save wins on concurrent writes.
type Repo struct {
	col *mongo.Collection
}

func New(s *store.Store) *Repo {
	return &Repo{col: s.Collection(store.CollectionPortfolio)}
}

type storedData struct {
	Type string      `bson:"_type"`
	Data domain.Data `bson:",inline"`
}

// Load returns the stored document shallow-merged over the defaults:
// a category present in storage fully overrides the default one,
// missing categories fall back to empty lists.
func (r *Repo) Load(ctx context.Context) (domain.Data, error) {
	data := domain.Defaults()

	err := r.col.FindOne(ctx, bson.M{"_type": typeTag}).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Defaults(), nil
		}
		return domain.Data{}, fmt.Errorf("load portfolio: %w", err)
	}

	data.Normalize()
	return data, nil
}

// Save upserts the whole document, replacing it wholesale.
func (r *Repo) Save(ctx context.Context, data domain.Data) error {
	doc := storedData{Type: typeTag, Data: data}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_type": typeTag},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	return nil
}
