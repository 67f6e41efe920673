package integration

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskvault/taskvault-api/internal/database"
)

const defaultPostgresTestImage = "docker.io/postgres:16-alpine"

// newPostgresDB starts a throwaway Postgres container and returns a
// migrated connection. Skips when the docker host is unavailable so the
// suite can still run in minimal environments.
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("docker-backed tests disabled via SKIP_DOCKER_TESTS")
	}

	ctx := context.Background()
	image := os.Getenv("POSTGRES_TEST_IMAGE")
	if strings.TrimSpace(image) == "" {
		image = defaultPostgresTestImage
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: image,
			Env: map[string]string{
				"POSTGRES_USER":     "taskvault",
				"POSTGRES_PASSWORD": "taskvault",
				"POSTGRES_DB":       "taskvault_test",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("start postgres test container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("resolve postgres host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("resolve postgres port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://taskvault:taskvault@%s/taskvault_test?sslmode=disable",
		net.JoinHostPort(host, mappedPort.Port()))

	var db *gorm.DB
	deadline := time.Now().Add(30 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("connect to postgres: %v", err)
		}
		time.Sleep(250 * time.Millisecond)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
