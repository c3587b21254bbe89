package orderRepo

import (
	"context"
	"fmt"
	"time"

	"servicehub/database"
	"servicehub/database/repository"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.DB().Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "orders.cartId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order document: %w", err)
	}
	return nil
}

func (r *MongoOrderRepo) GetByUserID(userID string) ([]models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders for user %s: %w", userID, err)
	}
	return orders, nil
}

func (r *MongoOrderRepo) update(filter, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order document: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in order store: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *MongoOrderRepo) SetLineStatusByCartID(cartID, status string) error {
	return r.update(
		bson.M{"orders.cartId": cartID},
		bson.M{"$set": bson.M{"orders.$.status": status}},
	)
}

func (r *MongoOrderRepo) SetLineStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error {
	filter := bson.M{
		"userId": userID,
		"orders": bson.M{"$elemMatch": bson.M{
			"providerEmail": providerEmail,
			"scheduleTime":  scheduleTime,
		}},
	}
	return r.update(filter, bson.M{"$set": bson.M{"orders.$.status": status}})
}

func (r *MongoOrderRepo) SetPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	return r.update(
		bson.M{"orders.cartId": cartID},
		bson.M{"$set": bson.M{
			"paymentStatus": paymentStatus,
			"transactionId": transactionID,
		}},
	)
}

func (r *MongoOrderRepo) UpsertLineReview(userID, providerEmail string, scheduleTime time.Time, review models.Review) error {
	filter := bson.M{
		"userId": userID,
		"orders": bson.M{"$elemMatch": bson.M{
			"providerEmail": providerEmail,
			"scheduleTime":  scheduleTime,
		}},
	}
	pull := bson.M{"$pull": bson.M{"orders.$.reviews": bson.M{
		"userId":       review.UserID,
		"scheduleTime": review.ScheduleTime,
	}}}
	if err := r.update(filter, pull); err != nil {
		return err
	}
	return r.update(filter, bson.M{"$push": bson.M{"orders.$.reviews": review}})
}
