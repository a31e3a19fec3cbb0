// Package mongodb stores collage posts in a MongoDB collection.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postsCollection = "posts"

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client with at most poolSize pooled connections and pings
// the primary before returning.
func Connect(ctx context.Context, uri, database string, poolSize uint64) (*Client, error) {
	opts := options.Client().ApplyURI(uri)
	if poolSize > 0 {
		opts.SetMaxPoolSize(poolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Client{client: client, db: client.Database(database)}, nil
}

func (c *Client) Posts() *mongo.Collection {
	return c.db.Collection(postsCollection)
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
