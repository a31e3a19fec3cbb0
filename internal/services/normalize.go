package services

import (
	"time"

	"github.com/dimitrije/collage-api/internal/models"
	"github.com/dimitrije/collage-api/pkg/dto"
)

// Normalize turns a validated save request into the document to persist:
// title and author get defaults when empty, created_at is the server time,
// thumbnail is cleared and item state is dropped.
func Normalize(req *dto.SaveCollageRequest, now time.Time) *models.Collage {
	items := make([]models.Item, 0, len(req.Items))
	for _, it := range req.Items {
		clip := make([][]float64, 0, len(it.Clip))
		for _, pt := range it.Clip {
			pair := make([]float64, len(pt))
			for i, v := range pt {
				pair[i] = deref(v)
			}
			clip = append(clip, pair)
		}
		items = append(items, models.Item{
			Width:       deref(it.Width),
			Height:      deref(it.Height),
			X:           deref(it.X),
			Y:           deref(it.Y),
			Clip:        clip,
			Angle:       deref(it.Angle),
			ChildWidth:  deref(it.ChildWidth),
			ChildHeight: deref(it.ChildHeight),
			ChildX:      deref(it.ChildX),
			ChildY:      deref(it.ChildY),
			URL:         deref(it.URL),
		})
	}

	return &models.Collage{
		Title:     orDefault(req.Title, DefaultTitle),
		Author:    orDefault(req.Author, DefaultAuthor),
		CreatedAt: now,
		Thumbnail: nil,
		Items:     items,
	}
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
