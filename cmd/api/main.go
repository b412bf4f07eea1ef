package main

import (
	"context"
	"log"

	"github.com/bmgportfolio/backend/config"
	"github.com/bmgportfolio/backend/internal/auth"
	"github.com/bmgportfolio/backend/internal/backup"
	"github.com/bmgportfolio/backend/internal/bootstrap"
	portfoliorepo "github.com/bmgportfolio/backend/internal/portfolio/repository"
	reviewsrepo "github.com/bmgportfolio/backend/internal/reviews/repository"
	settingsrepo "github.com/bmgportfolio/backend/internal/settings/repository"
	skillsrepo "github.com/bmgportfolio/backend/internal/skills/repository"
	"github.com/bmgportfolio/backend/internal/store"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{
		URI:  cfg.Database.URI,
		Name: cfg.Database.Name,
	})
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close(context.Background())

	guard := auth.NewGuard(cfg.Admin.Password, cfg.Admin.SessionSecret, cfg.IsProduction())

	scheduler := backup.NewScheduler(cfg.Backup.Schedule, cfg.Backup.Dir, backupSources(st))
	if err := scheduler.Start(); err != nil {
		log.Printf("backup disabled: %v", err)
	}
	defer scheduler.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Store:          st,
		Guard:          guard,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}

func backupSources(st *store.Store) []backup.Source {
	portfolio := portfoliorepo.New(st)
	settings := settingsrepo.New(st)
	reviews := reviewsrepo.New(st)
	skills := skillsrepo.New(st)

	return []backup.Source{
		{Name: store.CollectionPortfolio, Fetch: func(ctx context.Context) (any, error) { return portfolio.Load(ctx) }},
		{Name: store.CollectionSettings, Fetch: func(ctx context.Context) (any, error) { return settings.Load(ctx) }},
		{Name: store.CollectionReviews, Fetch: func(ctx context.Context) (any, error) { return reviews.List(ctx) }},
		{Name: store.CollectionSkills, Fetch: func(ctx context.Context) (any, error) { return skills.List(ctx) }},
	}
}
