package adminRepo

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

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of AdminRepository using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	coll := database.DB().Collection("admins")
	repo := &MongoAdminRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "orders.cartId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) decodeOne(filter bson.M) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("admin: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) GetSingleton() (*models.Admin, error) {
	return r.decodeOne(bson.M{})
}

func (r *MongoAdminRepo) GetByID(id string) (*models.Admin, error) {
	return r.decodeOne(bson.M{"id": id})
}

func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	return r.decodeOne(bson.M{"email": email})
}

func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) GetOrders(adminID string) ([]models.AdminOrder, error) {
	admin, err := r.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin.Orders == nil {
		return []models.AdminOrder{}, nil
	}
	return admin.Orders, nil
}

func (r *MongoAdminRepo) AppendOrders(adminID string, orders []models.AdminOrder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"orders": bson.M{"$each": orders}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": adminID}, update)
	if err != nil {
		return fmt.Errorf("failed to append orders for admin %s: %w", adminID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s: %w", adminID, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoAdminRepo) setOrderField(filter, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update admin order unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in admin store: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *MongoAdminRepo) SetOrderStatusByCartID(cartID, status string) error {
	return r.setOrderField(
		bson.M{"orders.cartId": cartID},
		bson.M{"orders.$.status": status},
	)
}

func (r *MongoAdminRepo) SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error {
	filter := bson.M{
		"orders": bson.M{"$elemMatch": bson.M{
			"providerEmail": providerEmail,
			"scheduleTime":  scheduleTime,
		}},
	}
	return r.setOrderField(filter, bson.M{"orders.$.status": status})
}

func (r *MongoAdminRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	return r.setOrderField(
		bson.M{"orders.cartId": cartID},
		bson.M{
			"orders.$.paymentStatus": paymentStatus,
			"orders.$.transactionId": transactionID,
		},
	)
}

func (r *MongoAdminRepo) UpsertOrderReview(reviewerID, providerEmail string, scheduleTime time.Time, review models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"orders": bson.M{"$elemMatch": bson.M{
			"user.userId":   reviewerID,
			"providerEmail": providerEmail,
			"scheduleTime":  scheduleTime,
		}},
	}
	pull := bson.M{"$pull": bson.M{"orders.$.reviews": bson.M{
		"userId":       review.UserID,
		"scheduleTime": review.ScheduleTime,
	}}}
	res, err := r.coll.UpdateOne(ctx, filter, pull)
	if err != nil {
		return fmt.Errorf("failed to clear previous review in admin store: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in admin store: %w", repository.ErrNotFound)
	}

	push := bson.M{"$push": bson.M{"orders.$.reviews": review}}
	if _, err := r.coll.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("failed to push review in admin store: %w", err)
	}
	return nil
}
