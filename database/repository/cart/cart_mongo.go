package cartRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicehub/database"
	"servicehub/database/repository"
	"servicehub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new instance of CartRepository using MongoDB.
func NewMongoCartRepo() CartRepository {
	coll := database.DB().Collection("carts")
	repo := &MongoCartRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCartRepo) GetByUserID(userID string) (*models.Cart, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cart models.Cart
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

func (r *MongoCartRepo) AddItem(userID string, item models.CartItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$push":        bson.M{"items": item},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"id": uuid.New().String(), "userId": userID, "createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update, opts); err != nil {
		return fmt.Errorf("failed to add cart item for user %s: %w", userID, err)
	}
	return nil
}

func (r *MongoCartRepo) RemoveItem(userID, itemID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"items": bson.M{"id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove cart item for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("cart for user %s: %w", userID, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoCartRepo) Clear(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("cart for user %s: %w", userID, repository.ErrNotFound)
	}
	return nil
}
