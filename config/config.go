package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	TranslatorURL     string
	TranslatorTimeout int

	KafkaBrokers []string
	KafkaTopic   string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SLAConfigPath  string
	SeedConfigPath string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "translationdesk")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "translationdesk")
	ServerPort = getEnv("SERVER_PORT", "8080")

	TranslatorURL = getEnv("TRANSLATOR_URL", "http://localhost:9090")
	TranslatorTimeout, _ = strconv.Atoi(getEnv("TRANSLATOR_TIMEOUT_SECONDS", "15"))

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		KafkaBrokers = strings.Split(brokers, ",")
	}
	KafkaTopic = getEnv("KAFKA_TOPIC", "ticket-events")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "ticket-archive")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SLAConfigPath = getEnv("SLA_CONFIG_PATH", "")
	SeedConfigPath = getEnv("SEED_CONFIG_PATH", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
