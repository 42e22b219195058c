package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pharmacy-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned for ids that are not valid ObjectIDs.
var ErrInvalidID = errors.New("invalid record id")

// Repository provides CRUD over one collection of T. PT is *T and carries
// the id and timestamp accessors.
type Repository[T any, PT interface {
	*T
	models.Document
}] struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewRepository[T any, PT interface {
	*T
	models.Document
}](db *mongo.Database, collection string) *Repository[T, PT] {
	return &Repository[T, PT]{
		coll: db.Collection(collection),
		now:  time.Now,
	}
}

// List returns up to limit records, newest first.
func (r *Repository[T, PT]) List(ctx context.Context, limit, skip int64) ([]T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return out, nil
}

// Get loads the record with the given hex id.
func (r *Repository[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.coll.Name(), id, err)
	}
	return &doc, nil
}

// Create inserts doc, assigning a fresh id and timestamps.
func (r *Repository[T, PT]) Create(ctx context.Context, doc *T) error {
	now := r.now()
	PT(doc).SetID(primitive.NewObjectID())
	PT(doc).Stamp(now, now)

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create %s: %w", r.coll.Name(), err)
	}
	return nil
}

// Update replaces the record with the given id, keeping its creation time.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, doc *T) error {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	PT(doc).SetID(PT(existing).GetID())
	PT(doc).Stamp(PT(existing).Created(), r.now())

	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: PT(doc).GetID()}}, doc)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", r.coll.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record with the given id.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
