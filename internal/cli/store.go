package cli

import (
	"context"
	"fmt"

	"github.com/vaughan-dsouza/goposts/internal/config"
	"github.com/vaughan-dsouza/goposts/internal/db"
	"github.com/vaughan-dsouza/goposts/internal/repository"
)

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg config.StoreConfig) (repository.PostRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.PoolOptions{
			MaxOpen:     cfg.MaxOpen,
			MaxIdle:     cfg.MaxIdle,
			MaxLifetime: cfg.MaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresPostRepository(conn), func() { _ = conn.Close() }, nil

	case config.DriverMongo:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewMongoPostRepository(client.Database(cfg.MongoDatabase))
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.DriverMemory:
		return repository.NewMemoryPostRepository(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
