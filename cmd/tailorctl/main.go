// tailorctl is the shop's operational CLI. It talks to the same database
// as the server and covers the tasks that do not belong in the HTTP API:
// bootstrapping the first admin account and seeding a fresh installation
// with a starter catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/config"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/logger"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/persistence"
)

func main() {
	root := &cobra.Command{
		Use:           "tailorctl",
		Short:         "Operational CLI for the tailoring shop backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCreateAdminCmd())
	root.AddCommand(newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openDatabase loads configuration and connects, returning a close func
func openDatabase(log *zap.Logger) (*persistence.Database, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}, nil
}

func newLogger() (*zap.Logger, error) {
	return logger.New(&logger.Config{
		Level:  "info",
		Format: "console",
		Output: "stdout",
	})
}

func newCreateAdminCmd() *cobra.Command {
	var (
		username string
		email    string
		password string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  "Creates an admin account. Use this to bootstrap a fresh installation before the first login.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, closeDB, err := openDatabase(log)
			if err != nil {
				return err
			}
			defer closeDB()

			ctx := context.Background()
			users := persistence.NewGormUserRepository(db.DB)

			exists, err := users.ExistsByUsername(ctx, username)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("username %q is already taken", username)
			}

			admin, err := identity.NewUser(username, email, password, fullName, identity.RoleAdmin)
			if err != nil {
				return err
			}
			if err := users.Save(ctx, admin); err != nil {
				return err
			}

			log.Info("Admin account created",
				zap.String("username", admin.Username),
				zap.String("user_id", admin.ID.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Login username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&fullName, "name", "", "Full name (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a starter catalog",
		Long: "Populates an empty database with common garment types, fabrics and accessories " +
			"so a new shop can start taking orders immediately. Existing entries are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, closeDB, err := openDatabase(log)
			if err != nil {
				return err
			}
			defer closeDB()

			return runSeed(context.Background(), db, log)
		},
	}
	return cmd
}

type seedGarment struct {
	name         string
	description  string
	category     catalog.GarmentCategory
	fabricMeters decimal.Decimal
	basePrice    decimal.Decimal
}

func runSeed(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	fabrics := persistence.NewGormFabricRepository(db.DB)
	accessories := persistence.NewGormAccessoryRepository(db.DB)
	garmentTypes := persistence.NewGormGarmentTypeRepository(db.DB)

	seedFabrics := []struct {
		name, color   string
		meters, price decimal.Decimal
	}{
		{"Linen", "White", decimal.NewFromInt(50), decimal.NewFromInt(250)},
		{"Cotton twill", "Khaki", decimal.NewFromInt(60), decimal.NewFromInt(180)},
		{"Wool blend", "Charcoal", decimal.NewFromInt(30), decimal.NewFromInt(420)},
	}
	for _, f := range seedFabrics {
		fabric, err := inventory.NewFabric(f.name, f.color, f.meters, f.price)
		if err != nil {
			return err
		}
		if err := fabrics.Save(ctx, fabric); err != nil {
			return err
		}
		log.Info("Seeded fabric", zap.String("name", f.name), zap.String("color", f.color))
	}

	seedAccessories := []struct {
		name  string
		unit  inventory.AccessoryUnit
		qty   decimal.Decimal
		price decimal.Decimal
	}{
		{"Shell buttons", inventory.AccessoryUnitPieces, decimal.NewFromInt(500), decimal.NewFromInt(5)},
		{"Zipper 20cm", inventory.AccessoryUnitPieces, decimal.NewFromInt(200), decimal.NewFromInt(15)},
		{"Sewing thread", inventory.AccessoryUnitRolls, decimal.NewFromInt(80), decimal.NewFromInt(35)},
	}
	for _, a := range seedAccessories {
		accessory, err := inventory.NewAccessory(a.name, a.unit, a.qty, a.price)
		if err != nil {
			return err
		}
		if err := accessories.Save(ctx, accessory); err != nil {
			return err
		}
		log.Info("Seeded accessory", zap.String("name", a.name))
	}

	seedGarments := []seedGarment{
		{"Barong Tagalog", "Formal embroidered shirt", catalog.GarmentCategoryUpper, decimal.NewFromFloat(2.5), decimal.NewFromInt(1500)},
		{"Polo shirt", "Collared short-sleeve shirt", catalog.GarmentCategoryUpper, decimal.NewFromFloat(1.5), decimal.NewFromInt(600)},
		{"Slacks", "Straight-cut trousers", catalog.GarmentCategoryLower, decimal.NewFromInt(2), decimal.NewFromInt(800)},
		{"School uniform set", "Blouse and skirt or shirt and trousers", catalog.GarmentCategoryBoth, decimal.NewFromFloat(3.5), decimal.NewFromInt(1200)},
	}
	for _, g := range seedGarments {
		exists, err := garmentTypes.ExistsByName(ctx, g.name)
		if err != nil {
			return err
		}
		if exists {
			log.Info("Garment type already present, skipping", zap.String("name", g.name))
			continue
		}

		garmentType, err := catalog.NewGarmentType(g.name, g.description, g.category, g.fabricMeters, g.basePrice)
		if err != nil {
			return err
		}
		if err := garmentTypes.Save(ctx, garmentType); err != nil {
			return err
		}
		log.Info("Seeded garment type", zap.String("name", g.name))
	}

	log.Info("Seeding complete")
	return nil
}
