package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/translationdesk/platform-go/config"
	"github.com/translationdesk/platform-go/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	config.LoadConfig()
	db.Init()
	log.Println("migrate: ok")
	return nil
}
