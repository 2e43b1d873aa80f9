package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/translationdesk/platform-go/db"
)

// SetupPostgresForIntegration returns a migrated gorm handle backed either by
// the database named in TEST_DB_DSN or by a throwaway postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB := openAndMigrate(dsn)
		return gormDB, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "platform",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/platform?sslmode=disable", host, port.Port())
	waitForPostgres(dsn)

	gormDB := openAndMigrate(dsn)
	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}

// waitForPostgres pings the server until it accepts connections. The container
// log line fires before the post-initdb restart, so the first connect can fail.
func waitForPostgres(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var conn *sql.DB
		conn, err = sql.Open("postgres", dsn)
		if err == nil {
			err = conn.Ping()
			_ = conn.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

func openAndMigrate(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	return gormDB
}
