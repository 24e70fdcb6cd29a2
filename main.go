package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hospital-tui/internal/config"
	"hospital-tui/internal/logger"
	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
	"hospital-tui/internal/tui"
)

func main() {
	// Load environment variables; a missing .env just means the process environment is used
	envErr := godotenv.Load()

	if err := newRootCmd(envErr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	stores *store.Stores
	close  func()
}

func setup(envErr error) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	if envErr != nil {
		zl.Debug("no .env file loaded", zap.Error(envErr))
	}

	stores, closeDB, err := openStores(cfg, zl)
	if err != nil {
		_ = zl.Sync()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    zl,
		stores: stores,
		close: func() {
			closeDB()
			_ = zl.Sync()
		},
	}, nil
}

// openStores connects the configured backend. The memory backend keeps
// data for the lifetime of the process only.
func openStores(cfg *config.Config, zl *zap.Logger) (*store.Stores, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		zl.Info("using in-memory storage")
		return store.NewMemoryStores(), func() {}, nil
	}

	db, err := models.InitDB(models.DatabaseConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}
	zl.Info("database connected",
		zap.String("driver", cfg.Database.Driver),
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name))

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return store.NewGormStores(db, zl), closeDB, nil
}

func newRootCmd(envErr error) *cobra.Command {
	root := &cobra.Command{
		Use:           "hospital-tui",
		Short:         "Terminal front desk for patients, staff, records, invoices and shifts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(envErr)
			if err != nil {
				log.Printf("%v", err)
				return err
			}
			defer a.close()

			if a.cfg.SeedDemo {
				if err := seed(cmd.Context(), a); err != nil {
					log.Printf("%v", err)
					return err
				}
			}

			a.log.Info("starting terminal ui", zap.String("env", a.cfg.Environment))
			err = tui.Run(cmd.Context(), a.stores, tui.Options{
				Logger:        a.log,
				NoticeTimeout: a.cfg.NoticeTimeout,
				TickInterval:  a.cfg.TickInterval,
			})
			if err != nil {
				a.log.Error("terminal ui stopped", zap.Error(err))
				log.Printf("terminal ui stopped: %v", err)
			}
			return err
		},
	}
	root.AddCommand(newSeedCmd(envErr))
	return root
}

func newSeedCmd(envErr error) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo patients, staff, records and invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(envErr)
			if err != nil {
				log.Printf("%v", err)
				return err
			}
			defer a.close()

			if err := seed(cmd.Context(), a); err != nil {
				log.Printf("%v", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data inserted")
			return nil
		},
	}
}

func seed(ctx context.Context, a *app) error {
	sum, err := store.Seed(ctx, a.stores)
	if err != nil {
		return fmt.Errorf("error seeding demo data: %w", err)
	}
	a.log.Info("demo data seeded",
		zap.Int("patients", sum.Patients),
		zap.Int("staff", sum.Staff),
		zap.Int("records", sum.Records),
		zap.Int("invoices", sum.Invoices))
	return nil
}
