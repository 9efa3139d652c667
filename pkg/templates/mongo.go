package templates

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/printgrid/pkg/errors"
)

// MongoConfig configures the mongo-backed template store.
type MongoConfig struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "printgrid"
	Collection string // defaults to "templates"
}

// MongoStore keeps templates in a mongo collection, keyed by template id
// as the document _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to mongo and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "printgrid"
	}
	if cfg.Collection == "" {
		cfg.Collection = "templates"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongo at %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongo at %s", cfg.URI)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Load reads all template documents.
func (s *MongoStore) Load(ctx context.Context) ([]Stored, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load templates")
	}
	defer cur.Close(ctx)

	var out []Stored
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode templates")
	}
	return out, nil
}

// Save upserts the template document by id.
func (s *MongoStore) Save(ctx context.Context, t Stored) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: t.ID}},
		t,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save template %s", t.ID)
	}
	return nil
}

// Delete removes the template document. Missing documents are not an error.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete template %s", id)
	}
	return nil
}

// Close disconnects from mongo.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
