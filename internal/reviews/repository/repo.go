package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bmgportfolio/backend/internal/reviews/domain"
	"github.com/bmgportfolio/backend/internal/store"
)

// Repo stores reviews as a flat array collection. ReplaceAll is the
// only mutation primitive: single-item edits at the API layer are
// load/modify/replace cycles over the whole list.
type Repo struct {
	col *mongo.Collection
}

func New(s *store.Store) *Repo {
	return &Repo{col: s.Collection(store.CollectionReviews)}
}

// List returns every review in stored (insertion) order.
func (r *Repo) List(ctx context.Context) ([]domain.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]domain.Review, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

// ReplaceAll deletes every stored review and inserts the given ones in
// order. The delete+insert pair is not atomic as a whole; a failure in
// between can leave the collection truncated.
func (r *Repo) ReplaceAll(ctx context.Context, reviews []domain.Review) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("replace reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil
	}

	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("replace reviews: %w", err)
	}
	return nil
}
