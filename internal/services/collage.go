package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dimitrije/collage-api/internal/errs"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/internal/repository"
	"github.com/dimitrije/collage-api/pkg/dto"
)

const (
	PageSize = 12

	// MaxPage is the last page whose skip offset fits in an int64.
	MaxPage int64 = math.MaxInt64/PageSize - 1

	DefaultTitle  = "Untitled"
	DefaultAuthor = "Anonymous"

	StatusOK    = "ok"
	StatusError = "error"
)

type CollageService struct {
	posts repository.PostRepository
	now   func() time.Time
}

func NewCollageService(posts repository.PostRepository) *CollageService {
	return &CollageService{posts: posts, now: time.Now}
}

// List returns one page of summaries. Count and page are read with two
// separate store calls and may observe different snapshots.
func (s *CollageService) List(ctx context.Context, page int) (*dto.ListResponse, error) {
	count, err := s.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	posts, err := s.posts.List(ctx, int64(page)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Summary{}
	}

	return &dto.ListResponse{
		Count:   count,
		HasPrev: hasPrev(page),
		HasNext: count-int64(page+1)*PageSize > 0,
		Posts:   posts,
	}, nil
}

// hasPrev keeps the feed's long-standing rule that only pages 2 and up
// report a previous page; page 1 reports false.
// TODO: switch to page > 0 once the client pager is confirmed to expect it.
func hasPrev(page int) bool {
	return page >= 2
}

func (s *CollageService) Get(ctx context.Context, id string) (*models.Collage, error) {
	if id == "" {
		return nil, errs.ErrInvalidID
	}
	c, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post %q: %w", id, err)
	}
	return c, nil
}

// Save normalizes a validated request and inserts it as a new document.
func (s *CollageService) Save(ctx context.Context, req *dto.SaveCollageRequest) (*dto.SaveResponse, error) {
	c := Normalize(req, s.now())

	id, err := s.posts.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	if id == "" {
		return &dto.SaveResponse{Status: StatusError, Code: 400}, nil
	}
	return &dto.SaveResponse{Status: StatusOK, Code: 200, ID: id}, nil
}
