// Package memory keeps collage posts in process memory. Data is lost on
// restart. Safe for concurrent use.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/dimitrije/collage-api/internal/errs"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/google/uuid"
)

type PostRepo struct {
	mu    sync.RWMutex
	posts []models.Collage // insertion order
}

func NewPostRepo() *PostRepo {
	return &PostRepo{}
}

// deepCopy round-trips c through JSON so stored documents never share slices
// with callers.
func deepCopy(c models.Collage) models.Collage {
	b, _ := json.Marshal(c)
	var dst models.Collage
	_ = json.Unmarshal(b, &dst)
	dst.CreatedAt = c.CreatedAt
	return dst
}

func (r *PostRepo) Insert(_ context.Context, c *models.Collage) (string, error) {
	doc := deepCopy(*c)
	doc.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, doc)
	return doc.ID, nil
}

func (r *PostRepo) List(_ context.Context, skip, limit int64) ([]models.Summary, error) {
	r.mu.RLock()
	sorted := make([]models.Collage, len(r.posts))
	copy(sorted, r.posts)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	posts := []models.Summary{}
	if skip < 0 || limit <= 0 {
		return posts, nil
	}
	for i := skip; i < int64(len(sorted)) && int64(len(posts)) < limit; i++ {
		c := sorted[i]
		posts = append(posts, models.Summary{
			ID:        c.ID,
			Thumbnail: c.Thumbnail,
			Author:    c.Author,
			Title:     c.Title,
		})
	}
	return posts, nil
}

func (r *PostRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

func (r *PostRepo) FindByID(_ context.Context, id string) (*models.Collage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.posts {
		if c.ID == id {
			doc := deepCopy(c)
			return &doc, nil
		}
	}
	return nil, errs.ErrNotFound
}
