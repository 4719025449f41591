package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per key, using the key as _id.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoBackend(client *mongo.Client, database, collection string) *MongoBackend {
	return &MongoBackend{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

func DialMongo(ctx context.Context, uri, database, collection string) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("kvstore: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("kvstore: mongo ping: %w", err)
	}
	return NewMongoBackend(client, database, collection), nil
}

func (m *MongoBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var e mongoEntry
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(e.Value), nil
}

func (m *MongoBackend) Apply(ctx context.Context, plan *committer.Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	now := time.Now().UTC()
	models := make([]mongo.WriteModel, 0, len(plan.Writes()))
	for _, w := range plan.Writes() {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": w.Key}).
			SetUpdate(bson.M{"$set": bson.M{"value": string(w.Value), "updatedAt": now}}).
			SetUpsert(true))
	}
	_, err := m.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	return err
}

func (m *MongoBackend) Close() error {
	return m.client.Disconnect(context.Background())
}
