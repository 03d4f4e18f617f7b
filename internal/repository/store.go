// Package repository selects the storage backend for the chat repositories.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"webcraft/internal/config"
	"webcraft/internal/domain/repositories"
	chatRepo "webcraft/internal/domain/repositories/chat"
	"webcraft/internal/repository/postgres"
	"webcraft/internal/repository/sqlite"
)

// Store bundles the repositories of one backend
type Store struct {
	Backend       string
	Conversations chatRepo.ConversationRepository
	Messages      chatRepo.MessageRepository
	Files         chatRepo.ProjectFileRepository
	Tx            repositories.TransactionManager

	close func()
}

// Close releases the underlying connections
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to Postgres when DATABASE_URL is a postgres URL and to a
// SQLite file otherwise, then creates the schema
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.UsePostgres() {
		return openPostgres(ctx, cfg, logger)
	}
	return openSQLite(ctx, cfg.DatabaseURL, logger)
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	if err := postgres.Migrate(ctx, repoConfig); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	logger.Info("database connected", "backend", "postgres", "table_prefix", cfg.TablePrefix)

	return &Store{
		Backend:       "postgres",
		Conversations: postgres.NewConversationRepository(repoConfig),
		Messages:      postgres.NewMessageRepository(repoConfig),
		Files:         postgres.NewProjectFileRepository(repoConfig),
		Tx:            postgres.NewTransactionManager(repoConfig),
		close:         pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	logger.Info("database connected", "backend", "sqlite", "path", path)

	repoConfig := &sqlite.RepositoryConfig{DB: db, Logger: logger}
	return &Store{
		Backend:       "sqlite",
		Conversations: sqlite.NewConversationRepository(repoConfig),
		Messages:      sqlite.NewMessageRepository(repoConfig),
		Files:         sqlite.NewProjectFileRepository(repoConfig),
		Tx:            sqlite.NewTransactionManager(repoConfig),
		close:         func() { _ = db.Close() },
	}, nil
}
