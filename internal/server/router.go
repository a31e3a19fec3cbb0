// Package server assembles the drift application serving the collage routes.
package server

import (
	"net/http"

	"github.com/dimitrije/collage-api/internal/handlers"
	logmw "github.com/dimitrije/collage-api/internal/middleware"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"go.uber.org/zap"
)

type Options struct {
	Release     bool
	CORSOrigins []string
	Logger      *zap.Logger
}

// NewRouter registers every public route. The page and url segments are
// optional, so each of those routes is registered with and without them.
// The url is a wildcard because a decoded target usually contains slashes.
func NewRouter(collages *handlers.CollageHandler, checks *handlers.CheckHandler, opts Options) http.Handler {
	app := drift.New()

	if opts.Release {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())
	if opts.Logger != nil {
		app.Use(logmw.RequestLogger(opts.Logger))
	}

	app.Get("/", handlers.Root)
	app.Get("/health", handlers.Health)

	app.Get("/list", collages.List)
	app.Get("/list/:page", collages.List)
	app.Get("/get/:id", collages.Get)
	app.Post("/save", collages.Save)

	app.Get("/check", checks.Check)
	app.Get("/check/*url", checks.Check)

	return app
}
