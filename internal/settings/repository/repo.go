package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bmgportfolio/backend/internal/settings/domain"
	"github.com/bmgportfolio/backend/internal/store"
)

const typeTag = "data"

// Repo persists the settings singleton keyed by a fixed type tag.
type Repo struct {
	col *mongo.Collection
}

func New(s *store.Store) *Repo {
	return &Repo{col: s.Collection(store.CollectionSettings)}
}

// storedSettings distinguishes absent sections (nil) from present ones
// so the merge stays shallow: a section present in storage replaces
// the default section wholesale, it is not merged field by field.
type storedSettings struct {
	Site           *domain.SiteSettings    `bson:"site"`
	Hero           *domain.HeroSettings    `bson:"hero"`
	About          *domain.AboutSettings   `bson:"about"`
	Contact        *domain.ContactSettings `bson:"contact"`
	Collaborations []domain.Collaboration  `bson:"collaborations"`
}

// Load returns the stored document shallow-merged over the defaults.
func (r *Repo) Load(ctx context.Context) (domain.Settings, error) {
	var doc storedSettings

	err := r.col.FindOne(ctx, bson.M{"_type": typeTag}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Defaults(), nil
		}
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	return merge(doc), nil
}

func merge(doc storedSettings) domain.Settings {
	s := domain.Defaults()
	if doc.Site != nil {
		s.Site = *doc.Site
	}
	if doc.Hero != nil {
		s.Hero = *doc.Hero
	}
	if doc.About != nil {
		s.About = *doc.About
	}
	if doc.Contact != nil {
		s.Contact = *doc.Contact
	}
	if doc.Collaborations != nil {
		s.Collaborations = doc.Collaborations
	}
	return s
}

type settingsDoc struct {
	Type     string          `bson:"_type"`
	Settings domain.Settings `bson:",inline"`
}

// Save upserts the document, replacing it wholesale.
func (r *Repo) Save(ctx context.Context, s domain.Settings) error {
	if s.Collaborations == nil {
		s.Collaborations = []domain.Collaboration{}
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_type": typeTag},
		bson.M{"$set": settingsDoc{Type: typeTag, Settings: s}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
