package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/mermaid/pkg/errors"
)

const (
	defaultDatabase   = "mermaid"
	defaultCollection = "diagrams"
	connectTimeout    = 10 * time.Second
)

// MongoStore is a MongoDB-backed Store for durable deployments.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and uses the given database
// (default "mermaid"). The connection is verified with a ping before the
// store is returned.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongodb")
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(defaultCollection),
	}, nil
}

// Put inserts or replaces a diagram by ID.
func (s *MongoStore) Put(ctx context.Context, d *Diagram) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "store diagram %s", d.ID)
	}
	return nil
}

// Get retrieves a diagram by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Diagram, error) {
	var d Diagram
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeDiagramNotFound, "diagram %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load diagram %s", id)
	}
	return &d, nil
}

// List returns all stored diagrams, most recently updated first.
func (s *MongoStore) List(ctx context.Context) ([]*Diagram, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list diagrams")
	}

	var diagrams []*Diagram
	if err := cursor.All(ctx, &diagrams); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode diagrams")
	}
	return diagrams, nil
}

// Delete removes a diagram by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete diagram %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeDiagramNotFound, "diagram %s not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
