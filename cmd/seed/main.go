package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/config"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
	"github.com/joho/godotenv"
)

const demoTokenTTL = 7 * 24 * time.Hour

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo store, product and campaign and prints a dev token for their owner.
// Usage: go run ./cmd/seed
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("OPTIVANA - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbs, err := config.InitDB(cfg, log)
	if err != nil {
		fmt.Printf("❌ Database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer dbs.Close(log)
	if err := repository.Migrate(dbs.Gorm); err != nil {
		fmt.Printf("❌ Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✓ Connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ownerID := uuid.New()
	suffix := ownerID.String()[:8]

	store := &models.Store{
		Name:   "Demo Store",
		Domain: fmt.Sprintf("demo-%s.optivana.local", suffix),
		UserID: ownerID,
		Status: models.StoreStatusDraft,
		Mode:   models.StoreModeAutonomous,
		Settings: models.StoreSettings{
			Theme: "minimal",
		},
	}
	if err := repository.NewStoreRepository(dbs.Gorm).Create(ctx, store); err != nil {
		fmt.Printf("❌ Failed to create store: %v\n", err)
		os.Exit(1)
	}

	product := &models.Product{
		Title:       "Posture Corrector Pro",
		Description: "Adjustable posture brace for all-day wear",
		Price:       29.99,
		Images:      models.StringList{"https://images.optivana.local/posture-corrector.jpg"},
		Category:    "health",
		Source: models.ProductSource{
			Platform:   "seed",
			ExternalID: "posture-" + suffix,
		},
	}
	if err := repository.NewProductRepository(dbs.Gorm).Create(ctx, product); err != nil {
		fmt.Printf("❌ Failed to create product: %v\n", err)
		os.Exit(1)
	}

	if _, err := repository.NewStoreRepository(dbs.Gorm).SetProducts(ctx, store.ID, models.IDList{product.ID}); err != nil {
		fmt.Printf("❌ Failed to attach product: %v\n", err)
		os.Exit(1)
	}

	campaign := &models.Campaign{
		Name:      product.Title + " - " + string(models.PlatformTikTok),
		StoreID:   store.ID,
		ProductID: product.ID,
		Platform:  models.PlatformTikTok,
		Status:    models.CampaignStatusDraft,
		Budget:    models.Budget{Daily: 50, Total: 500},
		Targeting: models.Targeting{
			AudienceType: "broad",
			Demographics: models.Demographics{
				AgeRange: models.AgeRange{Min: 18, Max: 45},
				Gender:   "all",
			},
		},
		Variants: models.VariantList{
			{ID: "v1", Name: "Hook A", Status: models.VariantStatusDraft, CreativeType: models.CreativeVideo, CreativeURL: "https://images.optivana.local/hook-a.mp4"},
			{ID: "v2", Name: "Hook B", Status: models.VariantStatusDraft, CreativeType: models.CreativeImage, CreativeURL: "https://images.optivana.local/hook-b.jpg"},
		},
	}
	if err := repository.NewCampaignRepository(dbs.Gorm).Create(ctx, campaign); err != nil {
		fmt.Printf("❌ Failed to create campaign: %v\n", err)
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(cfg.JWTSecret, ownerID, "demo@optivana.local", "Demo Owner", demoTokenTTL)
	if err != nil {
		fmt.Printf("❌ Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("✓ Demo data created")
	fmt.Printf("  Owner:    %s\n", ownerID)
	fmt.Printf("  Store:    %s (%s)\n", store.ID, store.Domain)
	fmt.Printf("  Product:  %s\n", product.ID)
	fmt.Printf("  Campaign: %s\n", campaign.ID)
	fmt.Println()
	fmt.Println("Bearer token (valid 7 days):")
	fmt.Println(token)
}
