package categories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "categories"

// Storage defines the persistence operations the category handlers need.
type Storage interface {
	List(ctx context.Context) ([]Category, error)
	ListByParent(ctx context.Context, parentID string) ([]Category, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// MongoStorage implements Storage over the categories collection.
type MongoStorage struct {
	col *mongo.Collection
}

func NewStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (s *MongoStorage) List(ctx context.Context) ([]Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var result []Category
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) ListByParent(ctx context.Context, parentID string) ([]Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{"parent": parentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	var result []Category
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode subcategories: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*Category, error) {
	var category Category
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (s *MongoStorage) Create(ctx context.Context, category *Category) error {
	result, err := s.col.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		category.ID = id
	}
	return nil
}

func (s *MongoStorage) Update(ctx context.Context, category *Category) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
