package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client to url and returns the named database once the server answers a ping.
func Connect(ctx context.Context, url, dbName string) (*mongo.Database, error) {
	const connectTimeout = time.Second * 5

	opts := options.Client().
		ApplyURI(url).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetBSONOptions(&options.BSONOptions{
			// Nested item objects decode as maps, so they render as JSON objects.
			DefaultDocumentM: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	const timeout = 500 * time.Millisecond

	for range 10 {
		err = client.Ping(ctx, readpref.Primary())
		if err == nil {
			return client.Database(dbName), nil
		}

		time.Sleep(timeout)
	}

	_ = client.Disconnect(ctx)

	return nil, fmt.Errorf("ping: %w", err)
}

func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
