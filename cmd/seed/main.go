// Seed imports the legacy property catalog into the store. Safe to run
// repeatedly: existing titles are skipped and duplicates are cleaned up.
package main

import (
	"context"
	"os"

	"ramahomes/config"
	"ramahomes/internal/database"
	"ramahomes/internal/repository"
	"ramahomes/internal/seed"
	"ramahomes/internal/service"
	"ramahomes/pkg/cloudinary"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}
	admin, err := database.EnsureDefaultAdmin(db, &cfg.Admin)
	if err != nil {
		logrus.Fatalf("admin bootstrap: %v", err)
	}

	cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		logrus.Fatalf("cloudinary: %v", err)
	}

	assetDir := os.Getenv("SEED_ASSET_DIR")
	if assetDir == "" {
		assetDir = "assets/legacy"
	}

	mediaSvc := service.NewMediaService(cloud, cfg.Cloudinary.Folder)
	orchestrator := seed.NewOrchestrator(repository.NewPropertyRepository(db), mediaSvc, assetDir)

	summary, err := orchestrator.Run(context.Background(), admin.ID)
	if err != nil {
		logrus.Fatalf("seed: %v", err)
	}
	logrus.Infof("seed finished: added=%d skipped=%d failed=%d total=%d duplicates_removed=%d",
		summary.Added, summary.Skipped, summary.Failed, summary.Total, summary.DuplicatesRemoved)
}
