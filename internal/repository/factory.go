package repository

import (
	"context"
	"fmt"

	"github.com/dimitrije/collage-api/internal/config"
	"github.com/dimitrije/collage-api/internal/database"
	"github.com/dimitrije/collage-api/internal/repository/memory"
	"github.com/dimitrije/collage-api/internal/repository/mongodb"
	"github.com/dimitrije/collage-api/internal/repository/postgres"
)

// CloseFunc releases the connections held by an opened backend.
type CloseFunc func(ctx context.Context) error

// Open connects to the backend named by cfg.Backend.
//
// Supported backends:
//
//	"memory"   - in-process, ephemeral (default)
//	"postgres" - posts table in DATABASE_URL, bootstrapped on open
//	"mongo"    - posts collection in MONGO_DATABASE
func Open(ctx context.Context, cfg config.StoreConfig) (PostRepository, CloseFunc, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		return memory.NewPostRepo(), func(context.Context) error { return nil }, nil

	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.DatabaseURL, int32(cfg.PoolSize))
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewPostRepo(db), func(context.Context) error {
			db.Close()
			return nil
		}, nil

	case config.BackendMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo.URI(), cfg.Mongo.Database, uint64(cfg.PoolSize))
		if err != nil {
			return nil, nil, fmt.Errorf("open mongo: %w", err)
		}
		return mongodb.NewPostRepo(client.Posts()), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}
