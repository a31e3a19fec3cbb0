package handlers

import (
	"context"

	"github.com/dimitrije/collage-api/internal/framecheck"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/pkg/dto"
)

// CollageServiceInterface defines the methods used by handlers from CollageService
type CollageServiceInterface interface {
	List(ctx context.Context, page int) (*dto.ListResponse, error)
	Get(ctx context.Context, id string) (*models.Collage, error)
	Save(ctx context.Context, req *dto.SaveCollageRequest) (*dto.SaveResponse, error)
}

// FrameCheckerInterface defines the methods used by handlers from framecheck.Checker
type FrameCheckerInterface interface {
	Check(ctx context.Context, target string) (*framecheck.Result, error)
}
