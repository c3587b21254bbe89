package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicehub/database"
	"servicehub/database/repository"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.DB().Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "orderId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "scheduleTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) GetByOrderID(orderID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment record for order %s: %w", orderID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch payment record for order %s: %w", orderID, err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) GetByUserSchedulePrice(userID string, scheduleTime time.Time, price float64) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId":       userID,
		"scheduleTime": scheduleTime,
		"price":        price,
	}
	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment record: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch payment record: %w", err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) MarkPaid(orderID, transactionID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentPaid,
		"transactionId": transactionID,
		"updatedAt":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var previous models.Payment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"orderId": orderID}, update, opts).Decode(&previous)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment record for order %s: %w", orderID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to mark payment paid for order %s: %w", orderID, err)
	}
	return &previous, nil
}
