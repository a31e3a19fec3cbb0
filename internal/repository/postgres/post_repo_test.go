package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dimitrije/collage-api/internal/database"
	"github.com/dimitrije/collage-api/internal/errs"
	"github.com/dimitrije/collage-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostRepo(t *testing.T) (*PostRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostRepo(&database.DB{Pool: mock}), mock
}

func sampleCollage(now time.Time) *models.Collage {
	return &models.Collage{
		Title:     "Beach",
		Author:    "Alice",
		CreatedAt: now,
		Items: []models.Item{
			{Width: 10, Height: 20, Clip: [][]float64{{0, 0}, {1, 1}}, ChildWidth: 5, ChildHeight: 5, URL: "a.png"},
			{Width: 3, Height: 4, Clip: [][]float64{}, URL: "b.png"},
		},
	}
}

func TestPostRepo_Insert(t *testing.T) {
	repo, mock := setupPostRepo(t)
	now := time.Now()
	c := sampleCollage(now)
	postID := uuid.New()

	items, err := json.Marshal(c.Items)
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Beach", "Alice", (*string)(nil), json.RawMessage(items), now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(postID))

	id, err := repo.Insert(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, postID.String(), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_Insert_Error(t *testing.T) {
	repo, mock := setupPostRepo(t)

	mock.ExpectQuery(`INSERT INTO posts`).
		WillReturnError(errors.New("connection refused"))

	id, err := repo.Insert(context.Background(), sampleCollage(time.Now()))

	assert.Error(t, err)
	assert.Empty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_List(t *testing.T) {
	repo, mock := setupPostRepo(t)
	first, second := uuid.New(), uuid.New()
	thumb := "thumb.png"

	rows := pgxmock.NewRows([]string{"id", "thumbnail", "author", "title"}).
		AddRow(first, &thumb, "Alice", "Newest").
		AddRow(second, (*string)(nil), "Bob", "Older")

	mock.ExpectQuery(`SELECT id, thumbnail, author, title\s+FROM posts\s+ORDER BY created_at DESC\s+OFFSET \$1 LIMIT \$2`).
		WithArgs(int64(12), int64(12)).
		WillReturnRows(rows)

	posts, err := repo.List(context.Background(), 12, 12)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first.String(), posts[0].ID)
	assert.Equal(t, "Newest", posts[0].Title)
	require.NotNil(t, posts[0].Thumbnail)
	assert.Equal(t, "thumb.png", *posts[0].Thumbnail)
	assert.Nil(t, posts[1].Thumbnail)
	assert.Equal(t, "Bob", posts[1].Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_List_Empty(t *testing.T) {
	repo, mock := setupPostRepo(t)

	mock.ExpectQuery(`SELECT id, thumbnail, author, title`).
		WithArgs(int64(0), int64(12)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "thumbnail", "author", "title"}))

	posts, err := repo.List(context.Background(), 0, 12)

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_Count(t *testing.T) {
	repo, mock := setupPostRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(13)))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(13), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_FindByID(t *testing.T) {
	repo, mock := setupPostRepo(t)
	postID := uuid.New()
	now := time.Now()
	items := []byte(`[{"width":10,"height":20,"x":1,"y":2,"clip":[[0,0],[1,1]],"angle":45,"childWidth":5,"childHeight":6,"childX":7,"childY":8,"url":"a.png"},{"width":1,"height":1,"x":0,"y":0,"clip":[],"angle":0,"childWidth":1,"childHeight":1,"childX":0,"childY":0,"url":"b.png"}]`)

	rows := pgxmock.NewRows([]string{"id", "title", "author", "created_at", "thumbnail", "items"}).
		AddRow(postID, "Beach", "Alice", now, (*string)(nil), items)

	mock.ExpectQuery(`SELECT .+ FROM posts WHERE id`).
		WithArgs(postID).
		WillReturnRows(rows)

	c, err := repo.FindByID(context.Background(), postID.String())

	require.NoError(t, err)
	assert.Equal(t, postID.String(), c.ID)
	assert.Equal(t, "Beach", c.Title)
	assert.Nil(t, c.Thumbnail)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "a.png", c.Items[0].URL)
	assert.Equal(t, 45.0, c.Items[0].Angle)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}}, c.Items[0].Clip)
	assert.Equal(t, "b.png", c.Items[1].URL)
	assert.NotNil(t, c.Items[1].Clip)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_FindByID_NotFound(t *testing.T) {
	repo, mock := setupPostRepo(t)
	postID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM posts WHERE id`).
		WithArgs(postID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), postID.String())

	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepo_FindByID_InvalidID(t *testing.T) {
	repo, mock := setupPostRepo(t)

	_, err := repo.FindByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, errs.ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
