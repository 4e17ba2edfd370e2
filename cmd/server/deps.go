package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-alignment/internal/config"
	"github.com/KirkDiggler/rpg-alignment/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-alignment/internal/redis"
	alignmentrepo "github.com/KirkDiggler/rpg-alignment/internal/repositories/alignment"
	characterrepo "github.com/KirkDiggler/rpg-alignment/internal/repositories/character"

	alignmentsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/alignment"
	gridsvc "github.com/KirkDiggler/rpg-alignment/internal/orchestrators/grid"
)

// services is everything the transports need
type services struct {
	alignment alignmentsvc.Service
	grid      gridsvc.Service
	close     func()
}

// buildServices opens the configured storage backend and wires the orchestrators
func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	var (
		characters characterrepo.Repository
		alignments alignmentrepo.Repository
		closers    []func() error
	)

	switch cfg.StorageBackend() {
	case config.StorageSQLite:
		charRepo, err := characterrepo.NewSQLite(ctx, &characterrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("failed to open character storage: %w", err)
		}
		closers = append(closers, charRepo.Close)

		ledgerRepo, err := alignmentrepo.NewSQLite(ctx, &alignmentrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			_ = charRepo.Close()
			return nil, fmt.Errorf("failed to open alignment storage: %w", err)
		}
		closers = append(closers, ledgerRepo.Close)

		characters, alignments = charRepo, ledgerRepo
		slog.InfoContext(ctx, "Using SQLite storage", "path", cfg.SQLitePath)

	default:
		client, err := redisclient.Connect(ctx, &redisclient.Options{
			Endpoints: cfg.RedisAddrs,
			UseTLS:    cfg.RedisTLS,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, client.Close)

		charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create character repository: %w", err)
		}
		ledgerRepo, err := alignmentrepo.NewRedis(&alignmentrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create alignment repository: %w", err)
		}

		characters, alignments = charRepo, ledgerRepo
		slog.InfoContext(ctx, "Using Redis storage", "addrs", cfg.RedisAddrs)
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				slog.Warn("Failed to close storage", "error", err)
			}
		}
	}

	alignmentService, err := alignmentsvc.NewOrchestrator(&alignmentsvc.Config{
		CharacterRepo: characters,
		AlignmentRepo: alignments,
		IDGenerator:   idgen.NewCharacterIDs(),
		Default:       cfg.Default(),
		SyncTraits:    cfg.SyncTraits,
	})
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to create alignment service: %w", err)
	}

	gridService, err := gridsvc.NewOrchestrator(&gridsvc.Config{
		AlignmentService: alignmentService,
		Default:          cfg.GridDefault(),
	})
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to create grid service: %w", err)
	}

	return &services{
		alignment: alignmentService,
		grid:      gridService,
		close:     closeAll,
	}, nil
}
