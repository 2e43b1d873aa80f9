package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/translationdesk/platform-go/config"
	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/repositories"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/websocket"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Load rejection categories and standard replies from a YAML seed file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	config.LoadConfig()
	db.Init()

	path := config.SeedConfigPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("seed: no file given and SEED_CONFIG_PATH unset")
	}

	svc := services.NewStandardReplyService(services.Deps{
		Repos: repositories.New(),
		Hub:   websocket.NewHub(),
	})
	if err := svc.SeedFromYAML(path); err != nil {
		return err
	}
	log.Println("seed: ok")
	return nil
}
