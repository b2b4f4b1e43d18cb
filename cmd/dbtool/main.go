// Command dbtool: migrate, recreate & seed tabel aplikasi.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"officer_duty_backend/internals/configs"
	database "officer_duty_backend/internals/databases"
	"officer_duty_backend/internals/seeds"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Database tooling for the officer duty backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
		},
	}
	root.AddCommand(newMigrateCmd(), newRecreateCmd(), newSeedCmd())
	return root
}

func openDB() (*gorm.DB, error) {
	return database.Open(database.ConfigFromEnv())
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "AutoMigrate all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			return database.Migrate(db)
		},
	}
}

func newRecreateCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "recreate",
		Short: "Create the database if missing, drop every table and migrate again",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("recreate menghapus semua data; jalankan ulang dengan --yes")
			}
			cfg := database.ConfigFromEnv()
			if err := database.EnsureDatabase(cfg); err != nil {
				return err
			}
			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			if err := database.Recreate(db); err != nil {
				return err
			}
			log.Println("✅ Recreate selesai.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm dropping all tables")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed principals from a JSON file (existing usernames are skipped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			return seeds.RunAllSeeds(db, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", seeds.DefaultUsersFile, "path to the users JSON file")
	return cmd
}
