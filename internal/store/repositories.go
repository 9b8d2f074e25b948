package store

import (
	"context"

	"recipekeep/internal/config"
	"recipekeep/internal/logger"
)

// Repositories bundles the server-side persistence collaborators.
type Repositories struct {
	RecipeRepository RecipeRepository
}

// NewRepositories connects to PostgreSQL, runs migrations, and wires the
// recipe repository. Called once at server start.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Repositories{
		RecipeRepository: NewRecipeRepository(db, log),
	}, nil
}

// ClientRepositories bundles the client-local persistence collaborators.
type ClientRepositories struct {
	PendingUploads PendingUploadRepository
}

// NewClientRepositories opens the client-local SQLite database and wires the
// pending-upload repository.
func NewClientRepositories(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientRepositories, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &ClientRepositories{
		PendingUploads: NewPendingUploadRepository(db, log),
	}, nil
}
