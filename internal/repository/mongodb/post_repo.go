package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/dimitrije/collage-api/internal/errs"
	"github.com/dimitrije/collage-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"created_at"`
	Thumbnail *string            `bson:"thumbnail"`
	Items     []models.Item      `bson:"items"`
}

type summaryDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Thumbnail *string            `bson:"thumbnail"`
	Author    string             `bson:"author"`
	Title     string             `bson:"title"`
}

var summaryProjection = bson.D{
	{Key: "thumbnail", Value: 1},
	{Key: "author", Value: 1},
	{Key: "title", Value: 1},
}

type PostRepo struct {
	coll *mongo.Collection
}

func NewPostRepo(coll *mongo.Collection) *PostRepo {
	return &PostRepo{coll: coll}
}

func (r *PostRepo) Insert(ctx context.Context, c *models.Collage) (string, error) {
	res, err := r.coll.InsertOne(ctx, postDocument{
		Title:     c.Title,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
		Thumbnail: c.Thumbnail,
		Items:     c.Items,
	})
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", nil
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *PostRepo) List(ctx context.Context, skip, limit int64) ([]models.Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(summaryProjection)

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []summaryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	posts := make([]models.Summary, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, models.Summary{
			ID:        d.ID.Hex(),
			Thumbnail: d.Thumbnail,
			Author:    d.Author,
			Title:     d.Title,
		})
	}
	return posts, nil
}

func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*models.Collage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrInvalidID
	}

	var doc postDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &models.Collage{
		ID:        doc.ID.Hex(),
		Title:     doc.Title,
		Author:    doc.Author,
		CreatedAt: doc.CreatedAt,
		Thumbnail: doc.Thumbnail,
		Items:     doc.Items,
	}, nil
}
