package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxnote/study-api/internal/database"
	"github.com/voxnote/study-api/internal/models"
	"github.com/voxnote/study-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the VoxNote Study API.

Migrations are schema-driven: the models define the schema and GORM
AutoMigrate brings the database up to date.

Available subcommands:
  up      - Apply all pending migrations
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This command will bring the database schema up to date with the
current model definitions.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This command reports whether the expected tables exist and whether the
database is reachable.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Applying migrations to %s\n", cfg.Database.Path)

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer db.Close()

	fmt.Println("Database schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Printf("Database: %s\n", cfg.Database.Path)

	if err := db.HealthCheck(); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	if db.DB.Migrator().HasTable(&models.TranscriptRecord{}) {
		fmt.Println("transcript_records: present")
	} else {
		fmt.Println("transcript_records: missing (run 'migrate up')")
	}

	return nil
}
