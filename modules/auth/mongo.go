package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	usersCollection  = "users"
	adminsCollection = "admins"
)

// mongoStorage implements Storage over the same account collections the
// registration workflow writes to.
type mongoStorage struct {
	db *mongo.Database
}

// NewMongoStorage creates the Mongo-backed auth storage.
func NewMongoStorage(db *mongo.Database) Storage {
	return &mongoStorage{db: db}
}

func identityFilter(username, email string) bson.D {
	return bson.D{
		{Key: "username", Value: username},
		{Key: "email", Value: email},
	}
}

func (s *mongoStorage) FindUser(ctx context.Context, username, email string) (*UserAccount, error) {
	var user UserAccount
	err := s.db.Collection(usersCollection).FindOne(ctx, identityFilter(username, email)).Decode(&user)
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (s *mongoStorage) FindAdmin(ctx context.Context, username, email string) (*AdminAccount, error) {
	var admin AdminAccount
	err := s.db.Collection(adminsCollection).FindOne(ctx, identityFilter(username, email)).Decode(&admin)
	switch {
	case err == nil:
		return &admin, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("find admin: %w", err)
	}
}
