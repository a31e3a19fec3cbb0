package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dimitrije/collage-api/internal/config"
	"github.com/dimitrije/collage-api/internal/repository"
	"github.com/dimitrije/collage-api/internal/services"
	"github.com/dimitrije/collage-api/internal/validation"
	"github.com/dimitrije/collage-api/pkg/dto"
)

var errEphemeralStore = errors.New("refusing to seed the memory backend: its data is gone when this command exits; set STORE_BACKEND to postgres or mongo")

type saver interface {
	Save(ctx context.Context, req *dto.SaveCollageRequest) (*dto.SaveResponse, error)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: seed-collages <file.json>")
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var payloads []json.RawMessage
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return fmt.Errorf("seed file must be a JSON array of save payloads: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := checkBackend(cfg.Store); err != nil {
		return err
	}

	posts, closeStore, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = closeStore(ctx) }()

	saved, err := seed(ctx, services.NewCollageService(posts), payloads, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully seeded %d of %d collages into %s\n", saved, len(payloads), cfg.Store.Backend)
	return nil
}

func checkBackend(cfg config.StoreConfig) error {
	if cfg.Backend == "" || cfg.Backend == config.BackendMemory {
		return errEphemeralStore
	}
	return nil
}

// seed saves every valid payload and skips invalid ones. It stops at the
// first store failure and reports how many were saved before it.
func seed(ctx context.Context, svc saver, payloads []json.RawMessage, out io.Writer) (int, error) {
	saved := 0
	for i, payload := range payloads {
		req, err := validation.DecodeSave(payload)
		if err != nil {
			fmt.Fprintf(out, "Skipping entry %d: %v\n", i, err)
			continue
		}
		res, err := svc.Save(ctx, req)
		if err != nil {
			return saved, fmt.Errorf("save entry %d: %w", i, err)
		}
		if res.ID == "" {
			return saved, fmt.Errorf("save entry %d: store returned no id", i)
		}
		fmt.Fprintf(out, "Saved entry %d as %s\n", i, res.ID)
		saved++
	}
	return saved, nil
}
