package partpackages

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "packages"

// Storage defines the persistence operations the package handlers need.
type Storage interface {
	List(ctx context.Context) ([]PartPackage, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*PartPackage, error)
	FindByName(ctx context.Context, name string) (*PartPackage, error)
	Create(ctx context.Context, pkg *PartPackage) error
	Update(ctx context.Context, pkg *PartPackage) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// MongoStorage implements Storage over the packages collection.
type MongoStorage struct {
	col *mongo.Collection
}

func NewStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (s *MongoStorage) List(ctx context.Context) ([]PartPackage, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	var result []PartPackage
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*PartPackage, error) {
	var pkg PartPackage
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	return &pkg, nil
}

func (s *MongoStorage) FindByName(ctx context.Context, name string) (*PartPackage, error) {
	var pkg PartPackage
	if err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package by name: %w", err)
	}
	return &pkg, nil
}

func (s *MongoStorage) Create(ctx context.Context, pkg *PartPackage) error {
	result, err := s.col.InsertOne(ctx, pkg)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		pkg.ID = id
	}
	return nil
}

func (s *MongoStorage) Update(ctx context.Context, pkg *PartPackage) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": pkg.ID}, pkg)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
