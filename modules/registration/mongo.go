package registration

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection names in the document store.
const (
	usersCollection         = "users"
	adminsCollection        = "admins"
	pendingUsersCollection  = "pending_registrations"
	pendingAdminsCollection = "pending_admin_registrations"
)

// mongoStorage implements Storage on top of a Mongo database.
type mongoStorage struct {
	db *mongo.Database
}

// NewMongoStorage creates the Mongo-backed registration storage.
func NewMongoStorage(db *mongo.Database) Storage {
	return &mongoStorage{db: db}
}

// usernameOrEmail is the OR-of-exact-match filter uniqueness checks use.
func usernameOrEmail(username, email string) bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "email", Value: email}},
	}}}
}

func (s *mongoStorage) exists(ctx context.Context, collection string, filter bson.D) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, filter).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("find in %s: %w", collection, err)
	}
}

func (s *mongoStorage) UserExists(ctx context.Context, username, email string) (bool, error) {
	return s.exists(ctx, usersCollection, usernameOrEmail(username, email))
}

func (s *mongoStorage) PendingUserExists(ctx context.Context, username, email string) (bool, error) {
	return s.exists(ctx, pendingUsersCollection, usernameOrEmail(username, email))
}

func (s *mongoStorage) InsertPendingUser(ctx context.Context, p *PendingUser) error {
	_, err := s.db.Collection(pendingUsersCollection).InsertOne(ctx, p)
	return err
}

func (s *mongoStorage) FindPendingUser(ctx context.Context, id string) (*PendingUser, error) {
	var pending PendingUser
	err := s.db.Collection(pendingUsersCollection).FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&pending)
	switch {
	case err == nil:
		return &pending, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("find pending user: %w", err)
	}
}

func (s *mongoStorage) ListPendingUsers(ctx context.Context) ([]PendingUser, error) {
	cursor, err := s.db.Collection(pendingUsersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	var pending []PendingUser
	if err := cursor.All(ctx, &pending); err != nil {
		return nil, fmt.Errorf("decode pending users: %w", err)
	}
	return pending, nil
}

func (s *mongoStorage) InsertUser(ctx context.Context, u *User) error {
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, u)
	return err
}

func (s *mongoStorage) DeletePendingUser(ctx context.Context, id string) error {
	res, err := s.db.Collection(pendingUsersCollection).DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete pending user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStorage) ListUsers(ctx context.Context) ([]User, error) {
	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *mongoStorage) AdminExists(ctx context.Context, username, email string) (bool, error) {
	return s.exists(ctx, adminsCollection, usernameOrEmail(username, email))
}

func (s *mongoStorage) PendingAdminExists(ctx context.Context, username, email string) (bool, error) {
	return s.exists(ctx, pendingAdminsCollection, usernameOrEmail(username, email))
}

func (s *mongoStorage) InsertPendingAdmin(ctx context.Context, p *PendingAdmin) error {
	_, err := s.db.Collection(pendingAdminsCollection).InsertOne(ctx, p)
	return err
}

func (s *mongoStorage) FindPendingAdmin(ctx context.Context, id string) (*PendingAdmin, error) {
	var pending PendingAdmin
	err := s.db.Collection(pendingAdminsCollection).FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&pending)
	switch {
	case err == nil:
		return &pending, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("find pending admin: %w", err)
	}
}

func (s *mongoStorage) ListPendingAdmins(ctx context.Context) ([]PendingAdmin, error) {
	cursor, err := s.db.Collection(pendingAdminsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list pending admins: %w", err)
	}
	var pending []PendingAdmin
	if err := cursor.All(ctx, &pending); err != nil {
		return nil, fmt.Errorf("decode pending admins: %w", err)
	}
	return pending, nil
}

func (s *mongoStorage) InsertAdmin(ctx context.Context, a *Admin) error {
	_, err := s.db.Collection(adminsCollection).InsertOne(ctx, a)
	return err
}

func (s *mongoStorage) DeletePendingAdmin(ctx context.Context, id string) error {
	res, err := s.db.Collection(pendingAdminsCollection).DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete pending admin: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStorage) CountAdmins(ctx context.Context) (int64, error) {
	count, err := s.db.Collection(adminsCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}
