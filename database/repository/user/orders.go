package userRepo

import (
	"fmt"
	"time"

	"servicehub/database/repository"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoUserRepo) GetOrders(userID string) ([]models.UserOrder, error) {
	user, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Orders == nil {
		return []models.UserOrder{}, nil
	}
	return user.Orders, nil
}

func (r *MongoUserRepo) GetOrderByUnitID(userID, unitID string) (*models.UserOrder, error) {
	user, err := r.GetByID(userID)
	if err != nil {
		return nil, err
	}
	for i := range user.Orders {
		if user.Orders[i].ID == unitID {
			return &user.Orders[i], nil
		}
	}
	return nil, fmt.Errorf("order unit %s for user %s: %w", unitID, userID, repository.ErrNotFound)
}

func (r *MongoUserRepo) AppendOrders(userID string, orders []models.UserOrder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"orders": bson.M{"$each": orders}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to append orders for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user with id %s: %w", userID, repository.ErrNotFound)
	}
	return nil
}

// setOrderField applies a positional $set against the first order unit
// matching the filter.
func (r *MongoUserRepo) setOrderField(filter, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user order unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in user store: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepo) SetOrderStatusByCartID(userID, cartID, status string) error {
	return r.setOrderField(
		bson.M{"id": userID, "orders.cartId": cartID},
		bson.M{"orders.$.status": status},
	)
}

func (r *MongoUserRepo) SetOrderStatusByUnitID(userID, unitID, status string) error {
	return r.setOrderField(
		bson.M{"id": userID, "orders.id": unitID},
		bson.M{"orders.$.status": status},
	)
}

func (r *MongoUserRepo) SetOrderStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error {
	filter := bson.M{
		"id": userID,
		"orders": bson.M{"$elemMatch": bson.M{
			"providerEmail": providerEmail,
			"scheduleTime":  scheduleTime,
		}},
	}
	return r.setOrderField(filter, bson.M{"orders.$.status": status})
}

func (r *MongoUserRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	return r.setOrderField(
		bson.M{"orders.cartId": cartID},
		bson.M{
			"orders.$.paymentStatus": paymentStatus,
			"orders.$.transactionId": transactionID,
		},
	)
}

func (r *MongoUserRepo) UpsertOrderReview(userID, unitID string, review models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Drop any previous review by the same reviewer for the same schedule
	// time, then push the fresh one.
	pull := bson.M{"$pull": bson.M{"orders.$.reviews": bson.M{
		"userId":       review.UserID,
		"scheduleTime": review.ScheduleTime,
	}}}
	filter := bson.M{"id": userID, "orders.id": unitID}
	res, err := r.coll.UpdateOne(ctx, filter, pull)
	if err != nil {
		return fmt.Errorf("failed to clear previous review in user store: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in user store: %w", repository.ErrNotFound)
	}

	push := bson.M{"$push": bson.M{"orders.$.reviews": review}}
	if _, err := r.coll.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("failed to push review in user store: %w", err)
	}
	return nil
}
