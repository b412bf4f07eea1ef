package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/bmgportfolio/backend/internal/api/http"
	"github.com/bmgportfolio/backend/internal/auth"
	authhttp "github.com/bmgportfolio/backend/internal/auth/http"
	collabhttp "github.com/bmgportfolio/backend/internal/collaborations/http"
	portfoliohttp "github.com/bmgportfolio/backend/internal/portfolio/http"
	portfoliorepo "github.com/bmgportfolio/backend/internal/portfolio/repository"
	reviewshttp "github.com/bmgportfolio/backend/internal/reviews/http"
	reviewsrepo "github.com/bmgportfolio/backend/internal/reviews/repository"
	settingshttp "github.com/bmgportfolio/backend/internal/settings/http"
	settingsrepo "github.com/bmgportfolio/backend/internal/settings/repository"
	skillshttp "github.com/bmgportfolio/backend/internal/skills/http"
	skillsrepo "github.com/bmgportfolio/backend/internal/skills/repository"
	"github.com/bmgportfolio/backend/internal/store"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Store          *store.Store
	Guard          *auth.Guard
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// The admin UI lives on another origin and authenticates with the
	// session cookie, so credentials must be allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	admin := dep.Guard.RequireAdmin()

	authhttp.Register(api.Group("/auth"), dep.Guard)

	settingsRepo := settingsrepo.New(dep.Store)

	portfoliohttp.Register(api.Group("/portfolio"), portfoliorepo.New(dep.Store), admin)
	reviewshttp.Register(api.Group("/reviews"), reviewsrepo.New(dep.Store), admin)
	skillshttp.Register(api.Group("/skills"), skillsrepo.New(dep.Store), admin)
	settingshttp.Register(api.Group("/settings"), settingsRepo, admin)
	collabhttp.Register(api.Group("/collaborations"), settingsRepo, admin)

	return r
}
