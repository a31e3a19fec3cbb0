// Package postgres stores collage posts in PostgreSQL with items in a JSONB column.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dimitrije/collage-api/internal/database"
	"github.com/dimitrije/collage-api/internal/errs"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostRepo struct {
	db *database.DB
}

func NewPostRepo(db *database.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Insert(ctx context.Context, c *models.Collage) (string, error) {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}

	var id uuid.UUID
	err = r.db.Pool.QueryRow(ctx, `
		INSERT INTO posts (title, author, thumbnail, items, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, c.Title, c.Author, c.Thumbnail, json.RawMessage(items), c.CreatedAt).Scan(&id)
	if err != nil {
		return "", err
	}
	if id == uuid.Nil {
		return "", nil
	}
	return id.String(), nil
}

func (r *PostRepo) List(ctx context.Context, skip, limit int64) ([]models.Summary, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, thumbnail, author, title
		FROM posts
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.Summary, 0, limit)
	for rows.Next() {
		var (
			id uuid.UUID
			s  models.Summary
		)
		if err := rows.Scan(&id, &s.Thumbnail, &s.Author, &s.Title); err != nil {
			return nil, err
		}
		s.ID = id.String()
		posts = append(posts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*models.Collage, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, errs.ErrInvalidID
	}

	var (
		c     models.Collage
		items []byte
	)
	err = r.db.Pool.QueryRow(ctx, `
		SELECT id, title, author, created_at, thumbnail, items
		FROM posts WHERE id = $1
	`, postID).Scan(&postID, &c.Title, &c.Author, &c.CreatedAt, &c.Thumbnail, &items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &c.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	c.ID = postID.String()
	return &c, nil
}
