package manufacturers

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "manufacturers"

// Storage defines the persistence operations the manufacturer handlers need.
type Storage interface {
	List(ctx context.Context) ([]Manufacturer, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Manufacturer, error)
	Create(ctx context.Context, manufacturer *Manufacturer) error
	Update(ctx context.Context, manufacturer *Manufacturer) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// MongoStorage implements Storage over the manufacturers collection.
type MongoStorage struct {
	col *mongo.Collection
}

func NewStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (s *MongoStorage) List(ctx context.Context) ([]Manufacturer, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}

	var result []Manufacturer
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode manufacturers: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*Manufacturer, error) {
	var manufacturer Manufacturer
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&manufacturer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find manufacturer: %w", err)
	}
	return &manufacturer, nil
}

func (s *MongoStorage) Create(ctx context.Context, manufacturer *Manufacturer) error {
	result, err := s.col.InsertOne(ctx, manufacturer)
	if err != nil {
		return fmt.Errorf("failed to create manufacturer: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		manufacturer.ID = id
	}
	return nil
}

func (s *MongoStorage) Update(ctx context.Context, manufacturer *Manufacturer) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": manufacturer.ID}, manufacturer)
	if err != nil {
		return fmt.Errorf("failed to update manufacturer: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete manufacturer: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
