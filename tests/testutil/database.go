package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/collage-api/internal/database"
	"github.com/dimitrije/collage-api/internal/repository/mongodb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB wraps a test database connection with cleanup helpers
type TestDB struct {
	DB        *database.DB
	Container testcontainers.Container
}

// SetupTestDB creates a PostgreSQL testcontainer and returns a connected, migrated TestDB
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "collage_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/collage_test?sslmode=disable", host, port.Port())

	db, err := database.New(ctx, dsn, 5)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		DB:        db,
		Container: container,
	}
}

// CleanTables truncates the posts table to reset state between tests
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()
	if _, err := tdb.DB.Pool.Exec(context.Background(), "TRUNCATE TABLE posts"); err != nil {
		t.Fatalf("failed to truncate table posts: %v", err)
	}
}

// TestMongo wraps a connected client against a disposable MongoDB container
type TestMongo struct {
	Client    *mongodb.Client
	Container testcontainers.Container
}

// SetupTestMongo creates a MongoDB testcontainer and returns a connected client
func SetupTestMongo(t *testing.T) *TestMongo {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForLog("Waiting for connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start mongo container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := mongodb.Connect(ctx, uri, "collage_test", 5)
	if err != nil {
		t.Fatalf("failed to connect to test mongo: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close(ctx)
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestMongo{Client: client, Container: container}
}

// CleanPosts drops every document in the posts collection
func (tm *TestMongo) CleanPosts(t *testing.T) {
	t.Helper()
	if err := tm.Client.Posts().Drop(context.Background()); err != nil {
		t.Fatalf("failed to drop posts: %v", err)
	}
}
