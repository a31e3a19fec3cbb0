package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/internal/repository"
)

// SaveOption configures a save payload
type SaveOption func(map[string]interface{})

// SavePayload builds a schema-valid POST /save body with one item
func SavePayload(opts ...SaveOption) map[string]interface{} {
	payload := map[string]interface{}{
		"title":  nil,
		"author": nil,
		"items":  []interface{}{Item("a.png")},
	}
	for _, opt := range opts {
		opt(payload)
	}
	return payload
}

// Item builds one schema-valid item pointing at url
func Item(url string) map[string]interface{} {
	return map[string]interface{}{
		"width": 10, "height": 10, "x": 0, "y": 0,
		"clip":  []interface{}{},
		"angle": 0,
		"childWidth": 5, "childHeight": 5, "childX": 0, "childY": 0,
		"url":   url,
		"state": "editing",
	}
}

// GeometryItem builds an item with distinct non-zero geometry and two clip
// points, for checking that every field survives a store round trip
func GeometryItem(url string) map[string]interface{} {
	return map[string]interface{}{
		"width": 320.5, "height": 240.25, "x": 12, "y": -7.5,
		"clip":  []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
		"angle": 33.3,
		"childWidth": 400, "childHeight": 300.75, "childX": -40, "childY": 15.5,
		"url":   url,
		"state": "resizing",
	}
}

// GeometryItemModel is the stored form of GeometryItem
func GeometryItemModel(url string) models.Item {
	return models.Item{
		Width: 320.5, Height: 240.25, X: 12, Y: -7.5,
		Clip:  [][]float64{{1, 2}, {3, 4}},
		Angle: 33.3,
		ChildWidth: 400, ChildHeight: 300.75, ChildX: -40, ChildY: 15.5,
		URL: url,
	}
}

// WithField sets an arbitrary top-level payload key
func WithField(key string, value interface{}) SaveOption {
	return func(p map[string]interface{}) {
		p[key] = value
	}
}

// WithTitle sets the payload title
func WithTitle(title string) SaveOption {
	return func(p map[string]interface{}) {
		p["title"] = title
	}
}

// WithAuthor sets the payload author
func WithAuthor(author string) SaveOption {
	return func(p map[string]interface{}) {
		p["author"] = author
	}
}

// WithItems replaces the payload items
func WithItems(items ...interface{}) SaveOption {
	return func(p map[string]interface{}) {
		p["items"] = items
	}
}

// Fixtures inserts collages straight into a repository
type Fixtures struct {
	repo    repository.PostRepository
	counter int
	base    time.Time
}

// NewFixtures creates a new fixtures factory
func NewFixtures(repo repository.PostRepository) *Fixtures {
	return &Fixtures{repo: repo, base: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// CreateCollage inserts a collage whose created_at grows with every call
func (f *Fixtures) CreateCollage(t *testing.T, opts ...CollageOption) *models.Collage {
	t.Helper()
	f.counter++

	c := &models.Collage{
		Title:     fmt.Sprintf("Collage %d", f.counter),
		Author:    "Anonymous",
		CreatedAt: f.base.Add(time.Duration(f.counter) * time.Minute),
		Items: []models.Item{{
			Width: 10, Height: 10, Clip: [][]float64{},
			ChildWidth: 5, ChildHeight: 5,
			URL: fmt.Sprintf("img-%d.png", f.counter),
		}},
	}
	for _, opt := range opts {
		opt(c)
	}

	id, err := f.repo.Insert(context.Background(), c)
	if err != nil {
		t.Fatalf("failed to create collage: %v", err)
	}
	c.ID = id
	return c
}

// CollageOption configures a test collage
type CollageOption func(*models.Collage)

// WithCollageAuthor sets the collage author
func WithCollageAuthor(author string) CollageOption {
	return func(c *models.Collage) {
		c.Author = author
	}
}

// WithCreatedAt sets the collage creation time
func WithCreatedAt(at time.Time) CollageOption {
	return func(c *models.Collage) {
		c.CreatedAt = at
	}
}
