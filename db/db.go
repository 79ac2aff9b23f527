package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database is the explicitly constructed handle to the document store.
// Engines receive the collections they need at construction time; there is
// no package-level singleton.
type Database struct {
	Client *mongo.Client

	Categories   *mongo.Collection
	MenuItems    *mongo.Collection
	Carts        *mongo.Collection
	Orders       *mongo.Collection
	UserProfiles *mongo.Collection
}

func Connect(uri, name string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	mdb := client.Database(name)
	return &Database{
		Client:       client,
		Categories:   mdb.Collection("categories"),
		MenuItems:    mdb.Collection("menu_items"),
		Carts:        mdb.Collection("carts"),
		Orders:       mdb.Collection("orders"),
		UserProfiles: mdb.Collection("user_profiles"),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
