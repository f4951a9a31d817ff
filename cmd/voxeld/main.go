package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/voxel-engine/internal/engine/config"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/material"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/observer"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world"
	"github.com/OCharnyshevich/voxel-engine/internal/engine/world/gen"
)

func main() {
	cfg := config.Default()

	flag.IntVar(&cfg.Port, "port", cfg.Port, "observer endpoint port")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world generation seed")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "generator type: terrain or flat")
	flag.StringVar(&cfg.NoiseBackend, "noise", cfg.NoiseBackend, "noise backend: simplex or opensimplex")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "populate radius in chunks")
	flag.StringVar(&cfg.MaterialsPath, "materials", cfg.MaterialsPath, "materials JSON file (empty = built-in)")
	configPath := flag.String("config", "engine.yaml", "config file path")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	registry := material.Default()
	if cfg.MaterialsPath != "" {
		registry, err = material.Load(cfg.MaterialsPath)
		if err != nil {
			log.Error("load materials", "path", cfg.MaterialsPath, "error", err)
			os.Exit(1)
		}
	}

	generator, err := gen.NewGenerator(cfg.Generator, cfg.NoiseBackend, cfg.Seed)
	if err != nil {
		log.Error("build generator", "error", err)
		os.Exit(1)
	}

	w := world.New(cfg.Seed)
	start := time.Now()
	if err := gen.Populate(w, generator, cfg.Radius); err != nil {
		log.Error("populate world", "error", err)
		os.Exit(1)
	}
	spawnY := gen.SpawnHeight(generator)
	w.SetPlayerPosition(mgl64.Vec3{0.5, float64(spawnY), 0.5})

	log.Info("world ready",
		"id", w.ID(),
		"seed", cfg.Seed,
		"generator", cfg.Generator,
		"noise", cfg.NoiseBackend,
		"chunks", w.ChunkCount(),
		"spawnY", spawnY,
		"took", time.Since(start),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", cfg.Port),
		Handler: observer.NewServer(w, registry, log).Routes(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("observer listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("observer server", "error", err)
		os.Exit(1)
	}
	log.Info("shut down")
}
