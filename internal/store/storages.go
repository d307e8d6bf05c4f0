// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer of the application:
// a shared database connection, embedded schema migrations, and the
// repositories for users, sessions, and recipes.
//
// Two backends are supported through the same SQL surface: PostgreSQL (pgx)
// for production and SQLite for local development. Driver-specific error
// recognition is isolated behind [ErrorClassificator].
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
// All repositories share a single database connection.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	RecipeRepository  RecipeRepository
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and constructs all repositories.
//
// The backend is selected by cfg.DB.Driver; an empty driver defaults to
// PostgreSQL.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		RecipeRepository:  NewRecipeRepository(db, log),
	}, nil
}
