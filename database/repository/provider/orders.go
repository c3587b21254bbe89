package providerRepo

import (
	"errors"
	"fmt"
	"time"

	"servicehub/database/repository"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoProviderRepo) GetOrders(providerID string) ([]models.ProviderOrder, error) {
	provider, err := r.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider.Orders == nil {
		return []models.ProviderOrder{}, nil
	}
	return provider.Orders, nil
}

// findOrder locates the provider holding a matching order unit and returns
// that unit together with the owning provider.
func (r *MongoProviderRepo) findOrder(filter bson.M, match func(o *models.ProviderOrder) bool) (*models.ProviderOrder, *models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, fmt.Errorf("order unit in provider store: %w", repository.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to fetch provider order unit: %w", err)
	}
	for i := range provider.Orders {
		if match(&provider.Orders[i]) {
			return &provider.Orders[i], &provider, nil
		}
	}
	return nil, nil, fmt.Errorf("order unit in provider store: %w", repository.ErrNotFound)
}

func (r *MongoProviderRepo) GetOrderByCartID(cartID string) (*models.ProviderOrder, string, error) {
	unit, provider, err := r.findOrder(
		bson.M{"orders.cartId": cartID},
		func(o *models.ProviderOrder) bool { return o.CartID == cartID },
	)
	if err != nil {
		return nil, "", err
	}
	return unit, provider.Email, nil
}

func (r *MongoProviderRepo) GetOrderBySchedule(providerEmail string, scheduleTime time.Time) (*models.ProviderOrder, error) {
	unit, _, err := r.findOrder(
		bson.M{"email": providerEmail, "orders.scheduleTime": scheduleTime},
		func(o *models.ProviderOrder) bool { return o.ScheduleTime.Equal(scheduleTime) },
	)
	return unit, err
}

func (r *MongoProviderRepo) AppendOrder(providerID string, order models.ProviderOrder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"orders": order}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("failed to append order for provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s: %w", providerID, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoProviderRepo) setOrderField(filter, set bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update provider order unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in provider store: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *MongoProviderRepo) SetOrderStatusByCartID(cartID, status string) error {
	return r.setOrderField(
		bson.M{"orders.cartId": cartID},
		bson.M{"orders.$.status": status},
	)
}

func (r *MongoProviderRepo) SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error {
	return r.setOrderField(
		bson.M{"email": providerEmail, "orders.scheduleTime": scheduleTime},
		bson.M{"orders.$.status": status},
	)
}

func (r *MongoProviderRepo) SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error {
	return r.setOrderField(
		bson.M{"orders.cartId": cartID},
		bson.M{
			"orders.$.paymentStatus": paymentStatus,
			"orders.$.transactionId": transactionID,
		},
	)
}

func (r *MongoProviderRepo) UpsertOrderReview(providerEmail, reviewerID string, scheduleTime time.Time, review models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"email": providerEmail,
		"orders": bson.M{"$elemMatch": bson.M{
			"userId":       reviewerID,
			"scheduleTime": scheduleTime,
		}},
	}
	pull := bson.M{"$pull": bson.M{"orders.$.reviews": bson.M{
		"userId":       review.UserID,
		"scheduleTime": review.ScheduleTime,
	}}}
	res, err := r.coll.UpdateOne(ctx, filter, pull)
	if err != nil {
		return fmt.Errorf("failed to clear previous review in provider store: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order unit in provider store: %w", repository.ErrNotFound)
	}

	push := bson.M{"$push": bson.M{"orders.$.reviews": review}}
	if _, err := r.coll.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("failed to push review in provider store: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) UpdateRating(providerID string, average float64, count int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"totalRating.average": average,
		"totalRating.count":   count,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s: %w", providerID, repository.ErrNotFound)
	}
	return nil
}
