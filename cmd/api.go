package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/translationdesk/platform-go/archive"
	"github.com/translationdesk/platform-go/config"
	"github.com/translationdesk/platform-go/db"
	"github.com/translationdesk/platform-go/handlers"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/middleware"
	"github.com/translationdesk/platform-go/repositories"
	"github.com/translationdesk/platform-go/routes"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/translator"
	"github.com/translationdesk/platform-go/websocket"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API server",
	RunE:  runAPI,
}

func runAPI(cmd *cobra.Command, args []string) error {
	config.LoadConfig()
	if err := config.LoadSLA(config.SLAConfigPath); err != nil {
		log.Printf("sla config: %v, using defaults", err)
	}
	middleware.Init()
	db.Init()

	archiver, err := archive.NewClient(
		config.MinioEndpoint,
		config.MinioAccessKey,
		config.MinioSecretKey,
		config.MinioBucket,
		config.MinioUseSSL,
	)
	if err != nil {
		return err
	}

	producer := kafka.NewProducer(config.KafkaBrokers, config.KafkaTopic)
	defer producer.Close()

	hub := websocket.NewHub()

	svc := services.New(services.Deps{
		Repos:      repositories.New(),
		Hub:        hub,
		Producer:   producer,
		Translator: translator.NewClient(config.TranslatorURL, time.Duration(config.TranslatorTimeout)*time.Second),
		Archiver:   archiver,
	})

	router := routes.NewRouter(handlers.New(svc, hub))
	log.Printf("listening on :%s", config.ServerPort)
	return router.Run(":" + config.ServerPort)
}
