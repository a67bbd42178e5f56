package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aquawatch/aquawatch/internal/record"
)

// MongoStore is a document-store implementation of Store bound to one
// collection. Ordering relies on a createdAt descending sort applied at
// query time; single-document operations are atomic on the server side.
type MongoStore[T any, PT interface {
	*T
	Entity
}] struct {
	coll *mongo.Collection
}

// NewMongoStore creates a MongoStore over the named collection of db.
func NewMongoStore[T any, PT interface {
	*T
	Entity
}](db *mongo.Database, collection string) *MongoStore[T, PT] {
	return &MongoStore[T, PT]{coll: db.Collection(collection)}
}

// List returns the full collection, newest created first.
func (s *MongoStore[T, PT]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.coll.Name(), err)
	}
	defer cur.Close(ctx)

	recs := make([]T, 0)
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.coll.Name(), err)
	}
	return recs, nil
}

// Insert persists rec with a freshly generated ObjectID-derived id.
func (s *MongoStore[T, PT]) Insert(ctx context.Context, rec T) (T, error) {
	PT(&rec).SetID(primitive.NewObjectID().Hex())

	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		var zero T
		return zero, fmt.Errorf("insert %s: %w", s.coll.Name(), err)
	}
	return rec, nil
}

// UpdateStatus mutates only status and updatedAt via a single atomic $set.
func (s *MongoStore[T, PT]) UpdateStatus(ctx context.Context, id string, status record.Status) (T, error) {
	var updated T

	res := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := res.Decode(&updated); err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("update %s: %w", s.coll.Name(), err)
	}
	return updated, nil
}

// Delete removes the record with the given id.
func (s *MongoStore[T, PT]) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies connectivity to the backing deployment.
func (s *MongoStore[T, PT]) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}

// Ensure MongoStore implements Store.
var _ ReportStore = (*MongoStore[record.Report, *record.Report])(nil)
