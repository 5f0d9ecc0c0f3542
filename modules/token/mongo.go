package token

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	tokenLogsCollection = "token_logs"
	usersCollection     = "users"
)

// mongoStorage implements Storage over the token_logs collection, with
// user lookups against the users collection written by registration.
type mongoStorage struct {
	db *mongo.Database
}

// NewMongoStorage creates the Mongo-backed ledger storage.
func NewMongoStorage(db *mongo.Database) Storage {
	return &mongoStorage{db: db}
}

func (s *mongoStorage) InsertEntry(ctx context.Context, e *Entry) error {
	_, err := s.db.Collection(tokenLogsCollection).InsertOne(ctx, e)
	return err
}

func (s *mongoStorage) MarkDeleted(ctx context.Context, entryID string) error {
	res, err := s.db.Collection(tokenLogsCollection).UpdateOne(ctx,
		bson.D{{Key: "id", Value: entryID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: StatusDeleted}}}},
	)
	if err != nil {
		return fmt.Errorf("mark entry deleted: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStorage) ListEntries(ctx context.Context) ([]Entry, error) {
	cursor, err := s.db.Collection(tokenLogsCollection).Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

func (s *mongoStorage) FindAccount(ctx context.Context, userID string) (*Account, error) {
	var account Account
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "id", Value: userID}}).Decode(&account)
	switch {
	case err == nil:
		return &account, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}
