package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminastudio/backoffice/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Email               string             `bson:"email"`
	Name                string             `bson:"name,omitempty"`
	PasswordHash        string             `bson:"password_hash,omitempty"`
	Role                string             `bson:"role,omitempty"`
	IsGuest             bool               `bson:"is_guest,omitempty"`
	ResetToken          string             `bson:"reset_token,omitempty"`
	ResetTokenExpiresAt int64              `bson:"reset_token_expires_at,omitempty"`
	CreatedAt           int64              `bson:"created_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		IsGuest:      user.IsGuest,
		CreatedAt:    user.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id means the bearer references nothing, not a fault.
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *MongoUserRepository) SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"reset_token":            token,
		"reset_token_expires_at": expiresAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) CompletePasswordReset(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set":   bson.M{"password_hash": passwordHash},
		"$unset": bson.M{"reset_token": "", "reset_token_expires_at": ""},
	})
	if err != nil {
		return fmt.Errorf("complete password reset: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:                  mu.ID.Hex(),
		Email:               mu.Email,
		Name:                mu.Name,
		PasswordHash:        mu.PasswordHash,
		Role:                mu.Role,
		IsGuest:             mu.IsGuest,
		ResetToken:          mu.ResetToken,
		ResetTokenExpiresAt: unixToTime(mu.ResetTokenExpiresAt),
		CreatedAt:           unixToTime(mu.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
