package parts

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "parts"

// Storage defines the persistence operations the part handlers need.
type Storage interface {
	List(ctx context.Context) ([]Part, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Part, error)
	Create(ctx context.Context, part *Part) error
	Update(ctx context.Context, part *Part) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// MongoStorage implements Storage over the parts collection.
type MongoStorage struct {
	col *mongo.Collection
}

func NewStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (s *MongoStorage) List(ctx context.Context) ([]Part, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	var result []Part
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode parts: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*Part, error) {
	var part Part
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&part); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}
	return &part, nil
}

func (s *MongoStorage) Create(ctx context.Context, part *Part) error {
	result, err := s.col.InsertOne(ctx, part)
	if err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		part.ID = id
	}
	return nil
}

func (s *MongoStorage) Update(ctx context.Context, part *Part) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": part.ID}, part)
	if err != nil {
		return fmt.Errorf("failed to update part: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
