package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bmgportfolio/backend/internal/skills/domain"
	"github.com/bmgportfolio/backend/internal/store"
)

// Repo stores skills as a flat array collection, replaced wholesale on
// every mutation.
type Repo struct {
	col *mongo.Collection
}

func New(s *store.Store) *Repo {
	return &Repo{col: s.Collection(store.CollectionSkills)}
}

// List returns every skill in stored (insertion) order.
func (r *Repo) List(ctx context.Context) ([]domain.Skill, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	out := make([]domain.Skill, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return out, nil
}

// ReplaceAll deletes every stored skill and inserts the given ones in
// order.
func (r *Repo) ReplaceAll(ctx context.Context, skills []domain.Skill) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("replace skills: %w", err)
	}
	if len(skills) == 0 {
		return nil
	}

	docs := make([]interface{}, len(skills))
	for i := range skills {
		docs[i] = skills[i]
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("replace skills: %w", err)
	}
	return nil
}
