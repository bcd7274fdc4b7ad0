package users

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "users"

// Storage defines the persistence operations the user handlers and the auth
// service need. Implemented by MongoStorage; tests substitute in-memory fakes.
type Storage interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdateRights(ctx context.Context, id bson.ObjectID, rights Rights) error
	Delete(ctx context.Context, id bson.ObjectID) error

	// Session ledger mutations. All three use atomic update operators so
	// concurrent logins cannot lose tokens to read-modify-write races.
	PushToken(ctx context.Context, id bson.ObjectID, tokenID string) error
	PullToken(ctx context.Context, id bson.ObjectID, tokenID string) error
	ClearTokens(ctx context.Context, id bson.ObjectID) error
}

// MongoStorage implements Storage over the users collection.
type MongoStorage struct {
	col *mongo.Collection
}

// NewStorage creates a MongoStorage bound to the users collection.
func NewStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{col: db.Collection(collectionName)}
}

func (s *MongoStorage) List(ctx context.Context) ([]User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var result []User
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return result, nil
}

func (s *MongoStorage) FindByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	var user User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

func (s *MongoStorage) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (s *MongoStorage) Create(ctx context.Context, user *User) error {
	if user.ValidTokens == nil {
		user.ValidTokens = []string{}
	}

	result, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (s *MongoStorage) Update(ctx context.Context, user *User) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) UpdateRights(ctx context.Context, id bson.ObjectID, rights Rights) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"rights": rights}})
	if err != nil {
		return fmt.Errorf("failed to update user rights: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) PushToken(ctx context.Context, id bson.ObjectID, tokenID string) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"validTokens": tokenID}})
	if err != nil {
		return fmt.Errorf("failed to append session token: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) PullToken(ctx context.Context, id bson.ObjectID, tokenID string) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"validTokens": tokenID}})
	if err != nil {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) ClearTokens(ctx context.Context, id bson.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"validTokens": []string{}}})
	if err != nil {
		return fmt.Errorf("failed to clear session tokens: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
